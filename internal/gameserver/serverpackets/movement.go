package serverpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// SWaypointGroup relays movement paths for a set of units.
type SWaypointGroup struct {
	SyncID    int32
	Movements []packet.MovementDataNormal // u16-prefixed
}

// Opcode returns the packet id.
func (*SWaypointGroup) Opcode() uint8 { return OpcodeWaypointGroup }

// Encode writes the payload.
func (p *SWaypointGroup) Encode(w *packet.Writer) error {
	w.WriteInt32(p.SyncID)
	if err := w.WriteVecLenU16(len(p.Movements)); err != nil {
		return err
	}
	for i := range p.Movements {
		if err := p.Movements[i].Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads the payload.
func (p *SWaypointGroup) Decode(r *packet.Reader) error {
	var err error
	if p.SyncID, err = r.ReadInt32(); err != nil {
		return err
	}
	count, err := r.ReadUint16()
	if err != nil {
		return err
	}
	p.Movements = make([]packet.MovementDataNormal, count)
	for i := range p.Movements {
		if err = p.Movements[i].Decode(r); err != nil {
			return err
		}
	}
	return nil
}

// SWaypointGroupWithSpeed relays speed-modified paths.
type SWaypointGroupWithSpeed struct {
	SyncID    int32
	Movements []packet.MovementDataWithSpeed // u16-prefixed
}

// Opcode returns the packet id.
func (*SWaypointGroupWithSpeed) Opcode() uint8 { return OpcodeWaypointGroupWithSpeed }

// Encode writes the payload.
func (p *SWaypointGroupWithSpeed) Encode(w *packet.Writer) error {
	w.WriteInt32(p.SyncID)
	if err := w.WriteVecLenU16(len(p.Movements)); err != nil {
		return err
	}
	for i := range p.Movements {
		if err := p.Movements[i].Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads the payload.
func (p *SWaypointGroupWithSpeed) Decode(r *packet.Reader) error {
	var err error
	if p.SyncID, err = r.ReadInt32(); err != nil {
		return err
	}
	count, err := r.ReadUint16()
	if err != nil {
		return err
	}
	p.Movements = make([]packet.MovementDataWithSpeed, count)
	for i := range p.Movements {
		if err = p.Movements[i].Decode(r); err != nil {
			return err
		}
	}
	return nil
}

// SWaypointList carries raw waypoints to the end of the frame.
type SWaypointList struct {
	SyncID  int32
	Entries []packet.Vector2 // greedy, no prefix
}

// Opcode returns the packet id.
func (*SWaypointList) Opcode() uint8 { return OpcodeWaypointList }

// Encode writes the payload.
func (p *SWaypointList) Encode(w *packet.Writer) error {
	w.WriteInt32(p.SyncID)
	for i := range p.Entries {
		if err := p.Entries[i].Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads the payload, consuming entries until the stream ends.
func (p *SWaypointList) Decode(r *packet.Reader) error {
	var err error
	if p.SyncID, err = r.ReadInt32(); err != nil {
		return err
	}
	p.Entries = nil
	for r.Remaining() > 0 {
		var v packet.Vector2
		if err = v.Decode(r); err != nil {
			return err
		}
		p.Entries = append(p.Entries, v)
	}
	return nil
}

// SWaypointAcc acknowledges a movement sync.
type SWaypointAcc struct {
	SyncID        int32
	TeleportCount uint8
}

// Opcode returns the packet id.
func (*SWaypointAcc) Opcode() uint8 { return OpcodeWaypointAcc }

// Encode writes the payload.
func (p *SWaypointAcc) Encode(w *packet.Writer) error {
	w.WriteInt32(p.SyncID)
	w.WriteUint8(p.TeleportCount)
	return nil
}

// Decode reads the payload.
func (p *SWaypointAcc) Decode(r *packet.Reader) error {
	var err error
	if p.SyncID, err = r.ReadInt32(); err != nil {
		return err
	}
	p.TeleportCount, err = r.ReadUint8()
	return err
}

// SFaceDirection turns a unit toward a direction.
type SFaceDirection struct {
	Direction packet.Vector3
}

// Opcode returns the packet id.
func (*SFaceDirection) Opcode() uint8 { return OpcodeFaceDirection }

// Encode writes the payload.
func (p *SFaceDirection) Encode(w *packet.Writer) error {
	return p.Direction.Encode(w)
}

// Decode reads the payload.
func (p *SFaceDirection) Decode(r *packet.Reader) error {
	return p.Direction.Decode(r)
}
