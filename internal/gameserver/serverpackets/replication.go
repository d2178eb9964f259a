package serverpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// SOnReplication pushes stat replication blocks.
type SOnReplication struct {
	SyncID          int32
	ReplicationData []packet.ReplicationData // u8-prefixed
}

// Opcode returns the packet id.
func (*SOnReplication) Opcode() uint8 { return OpcodeOnReplication }

// Encode writes the payload.
func (p *SOnReplication) Encode(w *packet.Writer) error {
	w.WriteInt32(p.SyncID)
	if err := w.WriteVecLenU8(len(p.ReplicationData)); err != nil {
		return err
	}
	for i := range p.ReplicationData {
		if err := p.ReplicationData[i].Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads the payload.
func (p *SOnReplication) Decode(r *packet.Reader) error {
	var err error
	if p.SyncID, err = r.ReadInt32(); err != nil {
		return err
	}
	count, err := r.ReadUint8()
	if err != nil {
		return err
	}
	p.ReplicationData = make([]packet.ReplicationData, count)
	for i := range p.ReplicationData {
		if err = p.ReplicationData[i].Decode(r); err != nil {
			return err
		}
	}
	return nil
}

// SOnReplicationAcc acknowledges a replication sync.
type SOnReplicationAcc struct {
	SyncID int32
}

// Opcode returns the packet id.
func (*SOnReplicationAcc) Opcode() uint8 { return OpcodeOnReplicationAcc }

// Encode writes the payload.
func (p *SOnReplicationAcc) Encode(w *packet.Writer) error {
	w.WriteInt32(p.SyncID)
	return nil
}

// Decode reads the payload.
func (p *SOnReplicationAcc) Decode(r *packet.Reader) error {
	var err error
	p.SyncID, err = r.ReadInt32()
	return err
}

// SToolTipVars pushes tooltip value overrides.
type SToolTipVars struct {
	TooltipVars []packet.TooltipVars // u16-prefixed
}

// Opcode returns the packet id.
func (*SToolTipVars) Opcode() uint8 { return OpcodeToolTipVars }

// Encode writes the payload.
func (p *SToolTipVars) Encode(w *packet.Writer) error {
	if err := w.WriteVecLenU16(len(p.TooltipVars)); err != nil {
		return err
	}
	for i := range p.TooltipVars {
		if err := p.TooltipVars[i].Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads the payload.
func (p *SToolTipVars) Decode(r *packet.Reader) error {
	count, err := r.ReadUint16()
	if err != nil {
		return err
	}
	p.TooltipVars = make([]packet.TooltipVars, count)
	for i := range p.TooltipVars {
		if err = p.TooltipVars[i].Decode(r); err != nil {
			return err
		}
	}
	return nil
}

// SWriteNavFlags pushes nav flag circles.
type SWriteNavFlags struct {
	SyncID         int32
	NavFlagCircles []packet.NavFlagCircle // u16-prefixed
}

// Opcode returns the packet id.
func (*SWriteNavFlags) Opcode() uint8 { return OpcodeWriteNavFlags }

// Encode writes the payload.
func (p *SWriteNavFlags) Encode(w *packet.Writer) error {
	w.WriteInt32(p.SyncID)
	if err := w.WriteVecLenU16(len(p.NavFlagCircles)); err != nil {
		return err
	}
	for i := range p.NavFlagCircles {
		if err := p.NavFlagCircles[i].Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads the payload.
func (p *SWriteNavFlags) Decode(r *packet.Reader) error {
	var err error
	if p.SyncID, err = r.ReadInt32(); err != nil {
		return err
	}
	count, err := r.ReadUint16()
	if err != nil {
		return err
	}
	p.NavFlagCircles = make([]packet.NavFlagCircle, count)
	for i := range p.NavFlagCircles {
		if err = p.NavFlagCircles[i].Decode(r); err != nil {
			return err
		}
	}
	return nil
}

// SUpdateLevelProp updates a level prop.
type SUpdateLevelProp struct {
	UpdateData packet.UpdateLevelPropData
}

// Opcode returns the packet id.
func (*SUpdateLevelProp) Opcode() uint8 { return OpcodeUpdateLevelProp }

// Encode writes the payload.
func (p *SUpdateLevelProp) Encode(w *packet.Writer) error {
	return p.UpdateData.Encode(w)
}

// Decode reads the payload.
func (p *SUpdateLevelProp) Decode(r *packet.Reader) error {
	return p.UpdateData.Decode(r)
}
