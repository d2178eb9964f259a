package serverpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// SNpcBuffAdd adds one buff to the sender unit.
type SNpcBuffAdd struct {
	BuffSlot     uint8
	BuffType     uint8
	Count        uint8
	IsHidden     bool
	BuffNameHash uint32
	RunningTime  float32
	Duration     float32
	CasterNetID  uint32
}

// Opcode returns the packet id.
func (*SNpcBuffAdd) Opcode() uint8 { return OpcodeNpcBuffAdd }

// Encode writes the payload.
func (p *SNpcBuffAdd) Encode(w *packet.Writer) error {
	w.WriteUint8(p.BuffSlot)
	w.WriteUint8(p.BuffType)
	w.WriteUint8(p.Count)
	w.WriteBool(p.IsHidden)
	w.WriteUint32(p.BuffNameHash)
	w.WriteFloat32(p.RunningTime)
	w.WriteFloat32(p.Duration)
	w.WriteUint32(p.CasterNetID)
	return nil
}

// Decode reads the payload.
func (p *SNpcBuffAdd) Decode(r *packet.Reader) error {
	var err error
	if p.BuffSlot, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.BuffType, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.Count, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.IsHidden, err = r.ReadBool(); err != nil {
		return err
	}
	if p.BuffNameHash, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.RunningTime, err = r.ReadFloat32(); err != nil {
		return err
	}
	if p.Duration, err = r.ReadFloat32(); err != nil {
		return err
	}
	p.CasterNetID, err = r.ReadUint32()
	return err
}

// SNpcBuffRemove removes one buff.
type SNpcBuffRemove struct {
	BuffSlot     uint8
	BuffNameHash uint32
}

// Opcode returns the packet id.
func (*SNpcBuffRemove) Opcode() uint8 { return OpcodeNpcBuffRemove }

// Encode writes the payload.
func (p *SNpcBuffRemove) Encode(w *packet.Writer) error {
	w.WriteUint8(p.BuffSlot)
	w.WriteUint32(p.BuffNameHash)
	return nil
}

// Decode reads the payload.
func (p *SNpcBuffRemove) Decode(r *packet.Reader) error {
	var err error
	if p.BuffSlot, err = r.ReadUint8(); err != nil {
		return err
	}
	p.BuffNameHash, err = r.ReadUint32()
	return err
}

// SNpcBuffUpdateCount updates a buff stack count.
type SNpcBuffUpdateCount struct {
	BuffSlot    uint8
	Count       uint8
	Duration    float32
	RunningTime float32
	CasterNetID uint32
}

// Opcode returns the packet id.
func (*SNpcBuffUpdateCount) Opcode() uint8 { return OpcodeNpcBuffUpdateCount }

// Encode writes the payload.
func (p *SNpcBuffUpdateCount) Encode(w *packet.Writer) error {
	w.WriteUint8(p.BuffSlot)
	w.WriteUint8(p.Count)
	w.WriteFloat32(p.Duration)
	w.WriteFloat32(p.RunningTime)
	w.WriteUint32(p.CasterNetID)
	return nil
}

// Decode reads the payload.
func (p *SNpcBuffUpdateCount) Decode(r *packet.Reader) error {
	var err error
	if p.BuffSlot, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.Count, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.Duration, err = r.ReadFloat32(); err != nil {
		return err
	}
	if p.RunningTime, err = r.ReadFloat32(); err != nil {
		return err
	}
	p.CasterNetID, err = r.ReadUint32()
	return err
}

// SNpcBuffAddGroup adds a buff across a unit group.
type SNpcBuffAddGroup struct {
	BuffType     uint8
	BuffNameHash uint32
	RunningTime  float32
	Duration     float32
	Entries      []packet.BuffAddGroupEntry // u8-prefixed
}

// Opcode returns the packet id.
func (*SNpcBuffAddGroup) Opcode() uint8 { return OpcodeNpcBuffAddGroup }

// Encode writes the payload.
func (p *SNpcBuffAddGroup) Encode(w *packet.Writer) error {
	w.WriteUint8(p.BuffType)
	w.WriteUint32(p.BuffNameHash)
	w.WriteFloat32(p.RunningTime)
	w.WriteFloat32(p.Duration)
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
func (p *SNpcBuffAddGroup) Decode(r *packet.Reader) error {
	var err error
	if p.BuffType, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.BuffNameHash, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.RunningTime, err = r.ReadFloat32(); err != nil {
		return err
	}
	if p.Duration, err = r.ReadFloat32(); err != nil {
		return err
	}
	count, err := r.ReadUint8()
	if err != nil {
		return err
	}
	p.Entries = make([]packet.BuffAddGroupEntry, count)
	for i := range p.Entries {
		if err = p.Entries[i].Decode(r); err != nil {
			return err
		}
	}
	return nil
}

// SNpcBuffRemoveGroup removes a buff across a unit group.
type SNpcBuffRemoveGroup struct {
	BuffNameHash uint32
	Entries      []packet.BuffRemoveGroupEntry // u8-prefixed
}

// Opcode returns the packet id.
func (*SNpcBuffRemoveGroup) Opcode() uint8 { return OpcodeNpcBuffRemoveGroup }

// Encode writes the payload.
func (p *SNpcBuffRemoveGroup) Encode(w *packet.Writer) error {
	w.WriteUint32(p.BuffNameHash)
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
func (p *SNpcBuffRemoveGroup) Decode(r *packet.Reader) error {
	var err error
	if p.BuffNameHash, err = r.ReadUint32(); err != nil {
		return err
	}
	count, err := r.ReadUint8()
	if err != nil {
		return err
	}
	p.Entries = make([]packet.BuffRemoveGroupEntry, count)
	for i := range p.Entries {
		if err = p.Entries[i].Decode(r); err != nil {
			return err
		}
	}
	return nil
}

// SNpcBuffReplaceGroup replaces a buff across a unit group.
type SNpcBuffReplaceGroup struct {
	RunningTime float32
	Duration    float32
	Entries     []packet.BuffReplaceGroupEntry // u8-prefixed
}

// Opcode returns the packet id.
func (*SNpcBuffReplaceGroup) Opcode() uint8 { return OpcodeNpcBuffReplaceGroup }

// Encode writes the payload.
func (p *SNpcBuffReplaceGroup) Encode(w *packet.Writer) error {
	w.WriteFloat32(p.RunningTime)
	w.WriteFloat32(p.Duration)
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
func (p *SNpcBuffReplaceGroup) Decode(r *packet.Reader) error {
	var err error
	if p.RunningTime, err = r.ReadFloat32(); err != nil {
		return err
	}
	if p.Duration, err = r.ReadFloat32(); err != nil {
		return err
	}
	count, err := r.ReadUint8()
	if err != nil {
		return err
	}
	p.Entries = make([]packet.BuffReplaceGroupEntry, count)
	for i := range p.Entries {
		if err = p.Entries[i].Decode(r); err != nil {
			return err
		}
	}
	return nil
}

// SNpcBuffUpdateCountGroup updates stack counts across a unit group.
type SNpcBuffUpdateCountGroup struct {
	Duration    float32
	RunningTime float32
	Entries     []packet.BuffUpdateCountGroupEntry // u8-prefixed
}

// Opcode returns the packet id.
func (*SNpcBuffUpdateCountGroup) Opcode() uint8 { return OpcodeNpcBuffUpdateCountGroup }

// Encode writes the payload.
func (p *SNpcBuffUpdateCountGroup) Encode(w *packet.Writer) error {
	w.WriteFloat32(p.Duration)
	w.WriteFloat32(p.RunningTime)
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
func (p *SNpcBuffUpdateCountGroup) Decode(r *packet.Reader) error {
	var err error
	if p.Duration, err = r.ReadFloat32(); err != nil {
		return err
	}
	if p.RunningTime, err = r.ReadFloat32(); err != nil {
		return err
	}
	count, err := r.ReadUint8()
	if err != nil {
		return err
	}
	p.Entries = make([]packet.BuffUpdateCountGroupEntry, count)
	for i := range p.Entries {
		if err = p.Entries[i].Decode(r); err != nil {
			return err
		}
	}
	return nil
}
