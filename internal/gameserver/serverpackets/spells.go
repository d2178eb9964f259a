package serverpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// SNpcCastSpellReq starts a spell cast.
type SNpcCastSpellReq struct {
	SpellSlot   packet.SpellSlot
	Position    packet.Vector3
	EndPosition packet.Vector3
	TargetNetID uint32
}

// Opcode returns the packet id.
func (*SNpcCastSpellReq) Opcode() uint8 { return OpcodeNpcCastSpellReq }

// Encode writes the payload.
func (p *SNpcCastSpellReq) Encode(w *packet.Writer) error {
	if err := p.SpellSlot.Encode(w); err != nil {
		return err
	}
	if err := p.Position.Encode(w); err != nil {
		return err
	}
	if err := p.EndPosition.Encode(w); err != nil {
		return err
	}
	w.WriteUint32(p.TargetNetID)
	return nil
}

// Decode reads the payload.
func (p *SNpcCastSpellReq) Decode(r *packet.Reader) error {
	if err := p.SpellSlot.Decode(r); err != nil {
		return err
	}
	if err := p.Position.Decode(r); err != nil {
		return err
	}
	if err := p.EndPosition.Decode(r); err != nil {
		return err
	}
	var err error
	p.TargetNetID, err = r.ReadUint32()
	return err
}

// SNpcCastSpellAns confirms a spell cast with its full cast info.
type SNpcCastSpellAns struct {
	CasterPointSyncID int32
	CastInfo          packet.CastInfo
}

// Opcode returns the packet id.
func (*SNpcCastSpellAns) Opcode() uint8 { return OpcodeNpcCastSpellAns }

// Encode writes the payload.
func (p *SNpcCastSpellAns) Encode(w *packet.Writer) error {
	w.WriteInt32(p.CasterPointSyncID)
	return p.CastInfo.Encode(w)
}

// Decode reads the payload.
func (p *SNpcCastSpellAns) Decode(r *packet.Reader) error {
	var err error
	if p.CasterPointSyncID, err = r.ReadInt32(); err != nil {
		return err
	}
	return p.CastInfo.Decode(r)
}

// SSetSpellData binds a spell hash to a slot.
type SSetSpellData struct {
	UnitNetID     uint32
	SpellNameHash uint32
	SpellSlot     uint8
}

// Opcode returns the packet id.
func (*SSetSpellData) Opcode() uint8 { return OpcodeSetSpellData }

// Encode writes the payload.
func (p *SSetSpellData) Encode(w *packet.Writer) error {
	w.WriteUint32(p.UnitNetID)
	w.WriteUint32(p.SpellNameHash)
	w.WriteUint8(p.SpellSlot)
	return nil
}

// Decode reads the payload.
func (p *SSetSpellData) Decode(r *packet.Reader) error {
	var err error
	if p.UnitNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.SpellNameHash, err = r.ReadUint32(); err != nil {
		return err
	}
	p.SpellSlot, err = r.ReadUint8()
	return err
}

// SLevelUpSpell confirms a spell level-up.
type SLevelUpSpell struct {
	SpellSlot uint32
}

// Opcode returns the packet id.
func (*SLevelUpSpell) Opcode() uint8 { return OpcodeLevelUpSpell }

// Encode writes the payload.
func (p *SLevelUpSpell) Encode(w *packet.Writer) error {
	w.WriteUint32(p.SpellSlot)
	return nil
}

// Decode reads the payload.
func (p *SLevelUpSpell) Decode(r *packet.Reader) error {
	var err error
	p.SpellSlot, err = r.ReadUint32()
	return err
}

// SCharSetCooldown starts a cooldown on a slot.
type SCharSetCooldown struct {
	SpellSlot packet.SpellSlot
	Cooldown  float32
}

// Opcode returns the packet id.
func (*SCharSetCooldown) Opcode() uint8 { return OpcodeCharSetCooldown }

// Encode writes the payload.
func (p *SCharSetCooldown) Encode(w *packet.Writer) error {
	if err := p.SpellSlot.Encode(w); err != nil {
		return err
	}
	w.WriteFloat32(p.Cooldown)
	return nil
}

// Decode reads the payload.
func (p *SCharSetCooldown) Decode(r *packet.Reader) error {
	if err := p.SpellSlot.Decode(r); err != nil {
		return err
	}
	var err error
	p.Cooldown, err = r.ReadFloat32()
	return err
}

// SCharCancelTargetingReticle dismisses a targeting reticle.
type SCharCancelTargetingReticle struct {
	SpellSlot packet.SpellSlot
}

// Opcode returns the packet id.
func (*SCharCancelTargetingReticle) Opcode() uint8 { return OpcodeCharCancelTargetingReticle }

// Encode writes the payload.
func (p *SCharCancelTargetingReticle) Encode(w *packet.Writer) error {
	return p.SpellSlot.Encode(w)
}

// Decode reads the payload.
func (p *SCharCancelTargetingReticle) Decode(r *packet.Reader) error {
	return p.SpellSlot.Decode(r)
}

// SChangeSlotSpellType changes a slot's targeting type.
type SChangeSlotSpellType struct {
	SpellSlot     packet.SpellSlot
	TargetingType uint8
}

// Opcode returns the packet id.
func (*SChangeSlotSpellType) Opcode() uint8 { return OpcodeChangeSlotSpellType }

// Encode writes the payload.
func (p *SChangeSlotSpellType) Encode(w *packet.Writer) error {
	if err := p.SpellSlot.Encode(w); err != nil {
		return err
	}
	w.WriteUint8(p.TargetingType)
	return nil
}

// Decode reads the payload.
func (p *SChangeSlotSpellType) Decode(r *packet.Reader) error {
	if err := p.SpellSlot.Decode(r); err != nil {
		return err
	}
	var err error
	p.TargetingType, err = r.ReadUint8()
	return err
}

// SNpcSetAutocast toggles autocast on a slot.
type SNpcSetAutocast struct {
	Slot uint8
}

// Opcode returns the packet id.
func (*SNpcSetAutocast) Opcode() uint8 { return OpcodeNpcSetAutocast }

// Encode writes the payload.
func (p *SNpcSetAutocast) Encode(w *packet.Writer) error {
	w.WriteUint8(p.Slot)
	return nil
}

// Decode reads the payload.
func (p *SNpcSetAutocast) Decode(r *packet.Reader) error {
	var err error
	p.Slot, err = r.ReadUint8()
	return err
}

// SNpcUpgradeSpellAns confirms a spell upgrade.
type SNpcUpgradeSpellAns struct {
	Slot        uint8
	SpellLevel  uint8
	SkillPoints uint8
}

// Opcode returns the packet id.
func (*SNpcUpgradeSpellAns) Opcode() uint8 { return OpcodeNpcUpgradeSpellAns }

// Encode writes the payload.
func (p *SNpcUpgradeSpellAns) Encode(w *packet.Writer) error {
	w.WriteUint8(p.Slot)
	w.WriteUint8(p.SpellLevel)
	w.WriteUint8(p.SkillPoints)
	return nil
}

// Decode reads the payload.
func (p *SNpcUpgradeSpellAns) Decode(r *packet.Reader) error {
	var err error
	if p.Slot, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.SpellLevel, err = r.ReadUint8(); err != nil {
		return err
	}
	p.SkillPoints, err = r.ReadUint8()
	return err
}
