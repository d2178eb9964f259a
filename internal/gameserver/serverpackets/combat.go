package serverpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// SBasicAttack announces an auto-attack.
type SBasicAttack struct {
	BasicAttackData packet.BasicAttackData
}

// Opcode returns the packet id.
func (*SBasicAttack) Opcode() uint8 { return OpcodeBasicAttack }

// Encode writes the payload.
func (p *SBasicAttack) Encode(w *packet.Writer) error {
	return p.BasicAttackData.Encode(w)
}

// Decode reads the payload.
func (p *SBasicAttack) Decode(r *packet.Reader) error {
	return p.BasicAttackData.Decode(r)
}

// SBasicAttackPos announces an auto-attack with a source position.
type SBasicAttackPos struct {
	BasicAttackData packet.BasicAttackData
	Position        packet.Vector2
}

// Opcode returns the packet id.
func (*SBasicAttackPos) Opcode() uint8 { return OpcodeBasicAttackPos }

// Encode writes the payload.
func (p *SBasicAttackPos) Encode(w *packet.Writer) error {
	if err := p.BasicAttackData.Encode(w); err != nil {
		return err
	}
	return p.Position.Encode(w)
}

// Decode reads the payload.
func (p *SBasicAttackPos) Decode(r *packet.Reader) error {
	if err := p.BasicAttackData.Decode(r); err != nil {
		return err
	}
	return p.Position.Decode(r)
}

// SUnitApplyDamage applies damage to a unit.
type SUnitApplyDamage struct {
	DamageResultType uint8
	TargetNetID      uint32
	SourceNetID      uint32
	Damage           float32
}

// Opcode returns the packet id.
func (*SUnitApplyDamage) Opcode() uint8 { return OpcodeUnitApplyDamage }

// Encode writes the payload.
func (p *SUnitApplyDamage) Encode(w *packet.Writer) error {
	w.WriteUint8(p.DamageResultType)
	w.WriteUint32(p.TargetNetID)
	w.WriteUint32(p.SourceNetID)
	w.WriteFloat32(p.Damage)
	return nil
}

// Decode reads the payload.
func (p *SUnitApplyDamage) Decode(r *packet.Reader) error {
	var err error
	if p.DamageResultType, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.TargetNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.SourceNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	p.Damage, err = r.ReadFloat32()
	return err
}

// SUnitApplyHeal applies a heal to a unit.
type SUnitApplyHeal struct {
	MaxHP float32
	Heal  float32
}

// Opcode returns the packet id.
func (*SUnitApplyHeal) Opcode() uint8 { return OpcodeUnitApplyHeal }

// Encode writes the payload.
func (p *SUnitApplyHeal) Encode(w *packet.Writer) error {
	w.WriteFloat32(p.MaxHP)
	w.WriteFloat32(p.Heal)
	return nil
}

// Decode reads the payload.
func (p *SUnitApplyHeal) Decode(r *packet.Reader) error {
	var err error
	if p.MaxHP, err = r.ReadFloat32(); err != nil {
		return err
	}
	p.Heal, err = r.ReadFloat32()
	return err
}

// SModifyShield adjusts a unit's shield.
type SModifyShield struct {
	ShieldProperties packet.ShieldProperties
	Amount           float32
}

// Opcode returns the packet id.
func (*SModifyShield) Opcode() uint8 { return OpcodeModifyShield }

// Encode writes the payload.
func (p *SModifyShield) Encode(w *packet.Writer) error {
	if err := p.ShieldProperties.Encode(w); err != nil {
		return err
	}
	w.WriteFloat32(p.Amount)
	return nil
}

// Decode reads the payload.
func (p *SModifyShield) Decode(r *packet.Reader) error {
	if err := p.ShieldProperties.Decode(r); err != nil {
		return err
	}
	var err error
	p.Amount, err = r.ReadFloat32()
	return err
}

// SNpcDie kills an NPC unit.
type SNpcDie struct {
	DeathData packet.DeathData
}

// Opcode returns the packet id.
func (*SNpcDie) Opcode() uint8 { return OpcodeNpcDie }

// Encode writes the payload.
func (p *SNpcDie) Encode(w *packet.Writer) error {
	return p.DeathData.Encode(w)
}

// Decode reads the payload.
func (p *SNpcDie) Decode(r *packet.Reader) error {
	return p.DeathData.Decode(r)
}

// SNpcHeroDie kills a hero.
type SNpcHeroDie struct {
	DeathData packet.DeathData
}

// Opcode returns the packet id.
func (*SNpcHeroDie) Opcode() uint8 { return OpcodeNpcHeroDie }

// Encode writes the payload.
func (p *SNpcHeroDie) Encode(w *packet.Writer) error {
	return p.DeathData.Encode(w)
}

// Decode reads the payload.
func (p *SNpcHeroDie) Decode(r *packet.Reader) error {
	return p.DeathData.Decode(r)
}

// SNpcForceDeath forces a death with no event data.
type SNpcForceDeath struct{}

// Opcode returns the packet id.
func (*SNpcForceDeath) Opcode() uint8 { return OpcodeNpcForceDeath }

// Encode writes the payload.
func (*SNpcForceDeath) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*SNpcForceDeath) Decode(*packet.Reader) error { return nil }

// SHeroReincarnate respawns a hero at a position.
type SHeroReincarnate struct {
	Position packet.Vector3
}

// Opcode returns the packet id.
func (*SHeroReincarnate) Opcode() uint8 { return OpcodeHeroReincarnate }

// Encode writes the payload.
func (p *SHeroReincarnate) Encode(w *packet.Writer) error {
	return p.Position.Encode(w)
}

// Decode reads the payload.
func (p *SHeroReincarnate) Decode(r *packet.Reader) error {
	return p.Position.Decode(r)
}

// SUnitAddExp grants experience.
type SUnitAddExp struct {
	TargetNetID uint32
	Amount      float32
}

// Opcode returns the packet id.
func (*SUnitAddExp) Opcode() uint8 { return OpcodeUnitAddExp }

// Encode writes the payload.
func (p *SUnitAddExp) Encode(w *packet.Writer) error {
	w.WriteUint32(p.TargetNetID)
	w.WriteFloat32(p.Amount)
	return nil
}

// Decode reads the payload.
func (p *SUnitAddExp) Decode(r *packet.Reader) error {
	var err error
	if p.TargetNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	p.Amount, err = r.ReadFloat32()
	return err
}

// SUnitAddGold grants gold.
type SUnitAddGold struct {
	TargetNetID uint32
	SourceNetID uint32
	GoldAmount  float32
}

// Opcode returns the packet id.
func (*SUnitAddGold) Opcode() uint8 { return OpcodeUnitAddGold }

// Encode writes the payload.
func (p *SUnitAddGold) Encode(w *packet.Writer) error {
	w.WriteUint32(p.TargetNetID)
	w.WriteUint32(p.SourceNetID)
	w.WriteFloat32(p.GoldAmount)
	return nil
}

// Decode reads the payload.
func (p *SUnitAddGold) Decode(r *packet.Reader) error {
	var err error
	if p.TargetNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.SourceNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	p.GoldAmount, err = r.ReadFloat32()
	return err
}

// SGlobalCombatMessage announces a global combat event.
type SGlobalCombatMessage struct {
	MessageType     uint32
	ObjectNameNetID uint32
}

// Opcode returns the packet id.
func (*SGlobalCombatMessage) Opcode() uint8 { return OpcodeGlobalCombatMessage }

// Encode writes the payload.
func (p *SGlobalCombatMessage) Encode(w *packet.Writer) error {
	w.WriteUint32(p.MessageType)
	w.WriteUint32(p.ObjectNameNetID)
	return nil
}

// Decode reads the payload.
func (p *SGlobalCombatMessage) Decode(r *packet.Reader) error {
	var err error
	if p.MessageType, err = r.ReadUint32(); err != nil {
		return err
	}
	p.ObjectNameNetID, err = r.ReadUint32()
	return err
}

// SNpcInstantStopAttack interrupts an attack. Packs into a single byte:
// bit1=keep_animating, bit2=force_spell_cast, bit3=force_stop,
// bit4=avatar_spell, bit5=destroy_missile.
type SNpcInstantStopAttack struct {
	KeepAnimating  bool
	ForceSpellCast bool
	ForceStop      bool
	AvatarSpell    bool
	DestroyMissile bool
}

// Opcode returns the packet id.
func (*SNpcInstantStopAttack) Opcode() uint8 { return OpcodeNpcInstantStopAttack }

// Encode writes the packed byte.
func (p *SNpcInstantStopAttack) Encode(w *packet.Writer) error {
	var b uint8
	if p.KeepAnimating {
		b |= 1 << 1
	}
	if p.ForceSpellCast {
		b |= 1 << 2
	}
	if p.ForceStop {
		b |= 1 << 3
	}
	if p.AvatarSpell {
		b |= 1 << 4
	}
	if p.DestroyMissile {
		b |= 1 << 5
	}
	w.WriteUint8(b)
	return nil
}

// Decode reads the packed byte.
func (p *SNpcInstantStopAttack) Decode(r *packet.Reader) error {
	b, err := r.ReadUint8()
	p.KeepAnimating = b&(1<<1) != 0
	p.ForceSpellCast = b&(1<<2) != 0
	p.ForceStop = b&(1<<3) != 0
	p.AvatarSpell = b&(1<<4) != 0
	p.DestroyMissile = b&(1<<5) != 0
	return err
}

// SNpcDeathEventHistory replays the events leading to a death.
type SNpcDeathEventHistory struct {
	KillerNetID           uint32
	TimeWindow            float32
	KillerEventSourceType uint32
	BufferSize            uint32
	Events                []packet.EventData // u32-prefixed
}

// Opcode returns the packet id.
func (*SNpcDeathEventHistory) Opcode() uint8 { return OpcodeNpcDeathEventHistory }

// Encode writes the payload.
func (p *SNpcDeathEventHistory) Encode(w *packet.Writer) error {
	w.WriteUint32(p.KillerNetID)
	w.WriteFloat32(p.TimeWindow)
	w.WriteUint32(p.KillerEventSourceType)
	w.WriteUint32(p.BufferSize)
	if err := w.WriteVecLenU32(len(p.Events)); err != nil {
		return err
	}
	for i := range p.Events {
		if err := p.Events[i].Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads the payload.
func (p *SNpcDeathEventHistory) Decode(r *packet.Reader) error {
	var err error
	if p.KillerNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.TimeWindow, err = r.ReadFloat32(); err != nil {
		return err
	}
	if p.KillerEventSourceType, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.BufferSize, err = r.ReadUint32(); err != nil {
		return err
	}
	count, err := r.ReadUint32()
	if err != nil {
		return err
	}
	p.Events = make([]packet.EventData, count)
	for i := range p.Events {
		if err = p.Events[i].Decode(r); err != nil {
			return err
		}
	}
	return nil
}
