package serverpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// SMissileReplication spawns a missile with its full cast info.
type SMissileReplication struct {
	Position       packet.Vector3
	CasterPosition packet.Vector3
	Direction      packet.Vector3
	Velocity       packet.Vector3
	StartPoint     packet.Vector3
	EndPoint       packet.Vector3
	UnitPosition   packet.Vector3
	Speed          float32
	LifePercentage float32
	Bounced        uint8
	CastInfo       packet.CastInfo
}

// Opcode returns the packet id.
func (*SMissileReplication) Opcode() uint8 { return OpcodeMissileReplication }

// Encode writes the payload.
func (p *SMissileReplication) Encode(w *packet.Writer) error {
	for _, v := range []*packet.Vector3{
		&p.Position, &p.CasterPosition, &p.Direction, &p.Velocity,
		&p.StartPoint, &p.EndPoint, &p.UnitPosition,
	} {
		if err := v.Encode(w); err != nil {
			return err
		}
	}
	w.WriteFloat32(p.Speed)
	w.WriteFloat32(p.LifePercentage)
	w.WriteUint8(p.Bounced)
	return p.CastInfo.Encode(w)
}

// Decode reads the payload.
func (p *SMissileReplication) Decode(r *packet.Reader) error {
	for _, v := range []*packet.Vector3{
		&p.Position, &p.CasterPosition, &p.Direction, &p.Velocity,
		&p.StartPoint, &p.EndPoint, &p.UnitPosition,
	} {
		if err := v.Decode(r); err != nil {
			return err
		}
	}
	var err error
	if p.Speed, err = r.ReadFloat32(); err != nil {
		return err
	}
	if p.LifePercentage, err = r.ReadFloat32(); err != nil {
		return err
	}
	if p.Bounced, err = r.ReadUint8(); err != nil {
		return err
	}
	return p.CastInfo.Decode(r)
}

// SLineMissileHitList reports the units hit by a line missile.
type SLineMissileHitList struct {
	TargetNetIDs []uint32 // u16-prefixed
}

// Opcode returns the packet id.
func (*SLineMissileHitList) Opcode() uint8 { return OpcodeLineMissileHitList }

// Encode writes the payload.
func (p *SLineMissileHitList) Encode(w *packet.Writer) error {
	if err := w.WriteVecLenU16(len(p.TargetNetIDs)); err != nil {
		return err
	}
	for _, id := range p.TargetNetIDs {
		w.WriteUint32(id)
	}
	return nil
}

// Decode reads the payload.
func (p *SLineMissileHitList) Decode(r *packet.Reader) error {
	count, err := r.ReadUint16()
	if err != nil {
		return err
	}
	p.TargetNetIDs = make([]uint32, count)
	for i := range p.TargetNetIDs {
		if p.TargetNetIDs[i], err = r.ReadUint32(); err != nil {
			return err
		}
	}
	return nil
}

// SDestroyClientMissile removes the sender missile.
type SDestroyClientMissile struct{}

// Opcode returns the packet id.
func (*SDestroyClientMissile) Opcode() uint8 { return OpcodeDestroyClientMissile }

// Encode writes the payload.
func (*SDestroyClientMissile) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*SDestroyClientMissile) Decode(*packet.Reader) error { return nil }

// SFxKill stops an effect.
type SFxKill struct {
	NetID uint32
}

// Opcode returns the packet id.
func (*SFxKill) Opcode() uint8 { return OpcodeFxKill }

// Encode writes the payload.
func (p *SFxKill) Encode(w *packet.Writer) error {
	w.WriteUint32(p.NetID)
	return nil
}

// Decode reads the payload.
func (p *SFxKill) Decode(r *packet.Reader) error {
	var err error
	p.NetID, err = r.ReadUint32()
	return err
}

// SFxCreateGroup spawns effect groups.
type SFxCreateGroup struct {
	Entries []packet.FxCreateGroupEntry // u8-prefixed
}

// Opcode returns the packet id.
func (*SFxCreateGroup) Opcode() uint8 { return OpcodeFxCreateGroup }

// Encode writes the payload.
func (p *SFxCreateGroup) Encode(w *packet.Writer) error {
	if err := w.WriteVecLenU8(len(p.Entries)); err != nil {
		return err
	}
	for i := range p.Entries {
		if err := p.Entries[i].Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads the payload.
func (p *SFxCreateGroup) Decode(r *packet.Reader) error {
	count, err := r.ReadUint8()
	if err != nil {
		return err
	}
	p.Entries = make([]packet.FxCreateGroupEntry, count)
	for i := range p.Entries {
		if err = p.Entries[i].Decode(r); err != nil {
			return err
		}
	}
	return nil
}
