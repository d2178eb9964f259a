package packet

// Shared composite records embedded in several messages.

// BasicAttackData describes one auto-attack swing.
type BasicAttackData struct {
	TargetNetID   uint32
	ExtraTime     float32 // packed f8 on the wire
	MissileNextID uint32
	AttackSlot    uint8
}

// Encode writes the record.
func (d *BasicAttackData) Encode(w *Writer) error {
	w.WriteUint32(d.TargetNetID)
	w.WriteF8(d.ExtraTime)
	w.WriteUint32(d.MissileNextID)
	w.WriteUint8(d.AttackSlot)
	return nil
}

// Decode reads the record.
func (d *BasicAttackData) Decode(r *Reader) error {
	var err error
	if d.TargetNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if d.ExtraTime, err = r.ReadF8(); err != nil {
		return err
	}
	if d.MissileNextID, err = r.ReadUint32(); err != nil {
		return err
	}
	d.AttackSlot, err = r.ReadUint8()
	return err
}

// ConnectionInfo reports one client's loading progress.
type ConnectionInfo struct {
	ClientID   uint32
	PlayerID   uint64
	Percentage float32
	Eta        float32
	Count      int16
	Ping       uint16 // masked to 15 bits on the wire
	Ready      bool
}

// Encode writes the record.
func (c *ConnectionInfo) Encode(w *Writer) error {
	w.WriteUint32(c.ClientID)
	w.WriteUint64(c.PlayerID)
	w.WriteFloat32(c.Percentage)
	w.WriteFloat32(c.Eta)
	w.WriteInt16(c.Count)
	w.WriteUint16(c.Ping & 0x7FFF)
	w.WriteBool(c.Ready)
	return nil
}

// Decode reads the record.
func (c *ConnectionInfo) Decode(r *Reader) error {
	var err error
	if c.ClientID, err = r.ReadUint32(); err != nil {
		return err
	}
	if c.PlayerID, err = r.ReadUint64(); err != nil {
		return err
	}
	if c.Percentage, err = r.ReadFloat32(); err != nil {
		return err
	}
	if c.Eta, err = r.ReadFloat32(); err != nil {
		return err
	}
	if c.Count, err = r.ReadInt16(); err != nil {
		return err
	}
	if c.Ping, err = r.ReadUint16(); err != nil {
		return err
	}
	c.Ping &= 0x7FFF
	c.Ready, err = r.ReadBool()
	return err
}

// PlayerLoadInfo is one roster entry of the version sync answer.
type PlayerLoadInfo struct {
	PlayerID       uint64
	SummonerLevel  uint16
	SummonerSpell1 uint32
	SummonerSpell2 uint32
	IsBot          bool
	TeamID         uint32
	Pad0           [28]uint8
	Pad1           [28]uint8
	BotDifficulty  int32
	ProfileIconID  int32
}

// Encode writes the record.
func (p *PlayerLoadInfo) Encode(w *Writer) error {
	w.WriteUint64(p.PlayerID)
	w.WriteUint16(p.SummonerLevel)
	w.WriteUint32(p.SummonerSpell1)
	w.WriteUint32(p.SummonerSpell2)
	w.WriteBool(p.IsBot)
	w.WriteUint32(p.TeamID)
	w.WriteBytes(p.Pad0[:])
	w.WriteBytes(p.Pad1[:])
	w.WriteInt32(p.BotDifficulty)
	w.WriteInt32(p.ProfileIconID)
	return nil
}

// Decode reads the record.
func (p *PlayerLoadInfo) Decode(r *Reader) error {
	var err error
	if p.PlayerID, err = r.ReadUint64(); err != nil {
		return err
	}
	if p.SummonerLevel, err = r.ReadUint16(); err != nil {
		return err
	}
	if p.SummonerSpell1, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.SummonerSpell2, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.IsBot, err = r.ReadBool(); err != nil {
		return err
	}
	if p.TeamID, err = r.ReadUint32(); err != nil {
		return err
	}
	for _, buf := range [][]uint8{p.Pad0[:], p.Pad1[:]} {
		b, err := r.ReadBytes(len(buf))
		if err != nil {
			return err
		}
		copy(buf, b)
	}
	if p.BotDifficulty, err = r.ReadInt32(); err != nil {
		return err
	}
	p.ProfileIconID, err = r.ReadInt32()
	return err
}

// ItemData is one inventory slot snapshot.
type ItemData struct {
	Slot         uint8
	ItemsInSlot  uint8
	SpellCharges uint8
	ItemID       uint32
}

// Encode writes the record.
func (d *ItemData) Encode(w *Writer) error {
	w.WriteUint8(d.Slot)
	w.WriteUint8(d.ItemsInSlot)
	w.WriteUint8(d.SpellCharges)
	w.WriteUint32(d.ItemID)
	return nil
}

// Decode reads the record.
func (d *ItemData) Decode(r *Reader) error {
	var err error
	if d.Slot, err = r.ReadUint8(); err != nil {
		return err
	}
	if d.ItemsInSlot, err = r.ReadUint8(); err != nil {
		return err
	}
	if d.SpellCharges, err = r.ReadUint8(); err != nil {
		return err
	}
	d.ItemID, err = r.ReadUint32()
	return err
}

// DeathData describes a unit death.
type DeathData struct {
	KillerNetID     uint32
	DamageType      uint8
	SpellSourceType uint8
	DeathDuration   float32
	BecomeZombie    bool
}

// Encode writes the record.
func (d *DeathData) Encode(w *Writer) error {
	w.WriteUint32(d.KillerNetID)
	w.WriteUint8(d.DamageType)
	w.WriteUint8(d.SpellSourceType)
	w.WriteFloat32(d.DeathDuration)
	w.WriteBool(d.BecomeZombie)
	return nil
}

// Decode reads the record.
func (d *DeathData) Decode(r *Reader) error {
	var err error
	if d.KillerNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if d.DamageType, err = r.ReadUint8(); err != nil {
		return err
	}
	if d.SpellSourceType, err = r.ReadUint8(); err != nil {
		return err
	}
	if d.DeathDuration, err = r.ReadFloat32(); err != nil {
		return err
	}
	d.BecomeZombie, err = r.ReadBool()
	return err
}

// EventData is one entry of a death event history.
type EventData struct {
	TimeStamp   float32
	Count       uint16
	SourceNetID uint32
}

// Encode writes the record.
func (d *EventData) Encode(w *Writer) error {
	w.WriteFloat32(d.TimeStamp)
	w.WriteUint16(d.Count)
	w.WriteUint32(d.SourceNetID)
	return nil
}

// Decode reads the record.
func (d *EventData) Decode(r *Reader) error {
	var err error
	if d.TimeStamp, err = r.ReadFloat32(); err != nil {
		return err
	}
	if d.Count, err = r.ReadUint16(); err != nil {
		return err
	}
	d.SourceNetID, err = r.ReadUint32()
	return err
}

// Talent is one mastery entry of the avatar info.
type Talent struct {
	Hash  uint32
	Level uint8
}

// Encode writes the record.
func (t *Talent) Encode(w *Writer) error {
	w.WriteUint32(t.Hash)
	w.WriteUint8(t.Level)
	return nil
}

// Decode reads the record.
func (t *Talent) Decode(r *Reader) error {
	var err error
	if t.Hash, err = r.ReadUint32(); err != nil {
		return err
	}
	t.Level, err = r.ReadUint8()
	return err
}

// TooltipVars overrides tooltip values for one spell slot.
type TooltipVars struct {
	OwnerNetID uint32
	SlotIndex  uint8
	Values     [3]float32
}

// Encode writes the record.
func (t *TooltipVars) Encode(w *Writer) error {
	w.WriteUint32(t.OwnerNetID)
	w.WriteUint8(t.SlotIndex)
	for _, v := range t.Values {
		w.WriteFloat32(v)
	}
	return nil
}

// Decode reads the record.
func (t *TooltipVars) Decode(r *Reader) error {
	var err error
	if t.OwnerNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if t.SlotIndex, err = r.ReadUint8(); err != nil {
		return err
	}
	for i := range t.Values {
		if t.Values[i], err = r.ReadFloat32(); err != nil {
			return err
		}
	}
	return nil
}

// NavFlagCircle is one circular nav flag region.
type NavFlagCircle struct {
	Position Vector2
	Radius   float32
	Flags    uint32
}

// Encode writes the record.
func (n *NavFlagCircle) Encode(w *Writer) error {
	if err := n.Position.Encode(w); err != nil {
		return err
	}
	w.WriteFloat32(n.Radius)
	w.WriteUint32(n.Flags)
	return nil
}

// Decode reads the record.
func (n *NavFlagCircle) Decode(r *Reader) error {
	if err := n.Position.Decode(r); err != nil {
		return err
	}
	var err error
	if n.Radius, err = r.ReadFloat32(); err != nil {
		return err
	}
	n.Flags, err = r.ReadUint32()
	return err
}

// CastTargetInfo is one target hit by a cast.
type CastTargetInfo struct {
	UnitNetID uint32
	Position  Vector3
	HitResult uint8
}

// Encode writes the record.
func (c *CastTargetInfo) Encode(w *Writer) error {
	w.WriteUint32(c.UnitNetID)
	if err := c.Position.Encode(w); err != nil {
		return err
	}
	w.WriteUint8(c.HitResult)
	return nil
}

// Decode reads the record.
func (c *CastTargetInfo) Decode(r *Reader) error {
	var err error
	if c.UnitNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if err = c.Position.Decode(r); err != nil {
		return err
	}
	c.HitResult, err = r.ReadUint8()
	return err
}

// CastInfo is the full spell cast descriptor carried by missile and
// cast answer messages.
type CastInfo struct {
	SpellHash           uint32
	SpellNetID          uint32
	SpellLevel          uint32
	AttackSpeedModifier uint32
	CasterNetID         uint32
	MissileNetID        uint32
	TargetPosition      Vector3
	TargetPositionEnd   Vector3
	TargetsInfo         []CastTargetInfo // u8-prefixed
	DesignerCastTime    float32
	ExtraCastTime       float32
	DesignerTotalTime   float32
	Cooldown            float32
	StartCastTime       float32
	Flags               CastInfoFlags
	SpellSlot           uint8
	ManaCost            uint8
	CasterPosition      Vector3
}

// Encode writes the record.
func (c *CastInfo) Encode(w *Writer) error {
	w.WriteUint32(c.SpellHash)
	w.WriteUint32(c.SpellNetID)
	w.WriteUint32(c.SpellLevel)
	w.WriteUint32(c.AttackSpeedModifier)
	w.WriteUint32(c.CasterNetID)
	w.WriteUint32(c.MissileNetID)
	if err := c.TargetPosition.Encode(w); err != nil {
		return err
	}
	if err := c.TargetPositionEnd.Encode(w); err != nil {
		return err
	}
	if err := w.WriteVecLenU8(len(c.TargetsInfo)); err != nil {
		return err
	}
	for i := range c.TargetsInfo {
		if err := c.TargetsInfo[i].Encode(w); err != nil {
			return err
		}
	}
	w.WriteFloat32(c.DesignerCastTime)
	w.WriteFloat32(c.ExtraCastTime)
	w.WriteFloat32(c.DesignerTotalTime)
	w.WriteFloat32(c.Cooldown)
	w.WriteFloat32(c.StartCastTime)
	if err := c.Flags.Encode(w); err != nil {
		return err
	}
	w.WriteUint8(c.SpellSlot)
	w.WriteUint8(c.ManaCost)
	return c.CasterPosition.Encode(w)
}

// Decode reads the record.
func (c *CastInfo) Decode(r *Reader) error {
	var err error
	if c.SpellHash, err = r.ReadUint32(); err != nil {
		return err
	}
	if c.SpellNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if c.SpellLevel, err = r.ReadUint32(); err != nil {
		return err
	}
	if c.AttackSpeedModifier, err = r.ReadUint32(); err != nil {
		return err
	}
	if c.CasterNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if c.MissileNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if err = c.TargetPosition.Decode(r); err != nil {
		return err
	}
	if err = c.TargetPositionEnd.Decode(r); err != nil {
		return err
	}
	count, err := r.ReadUint8()
	if err != nil {
		return err
	}
	c.TargetsInfo = make([]CastTargetInfo, count)
	for i := range c.TargetsInfo {
		if err = c.TargetsInfo[i].Decode(r); err != nil {
			return err
		}
	}
	if c.DesignerCastTime, err = r.ReadFloat32(); err != nil {
		return err
	}
	if c.ExtraCastTime, err = r.ReadFloat32(); err != nil {
		return err
	}
	if c.DesignerTotalTime, err = r.ReadFloat32(); err != nil {
		return err
	}
	if c.Cooldown, err = r.ReadFloat32(); err != nil {
		return err
	}
	if c.StartCastTime, err = r.ReadFloat32(); err != nil {
		return err
	}
	if err = c.Flags.Decode(r); err != nil {
		return err
	}
	if c.SpellSlot, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.ManaCost, err = r.ReadUint8(); err != nil {
		return err
	}
	return c.CasterPosition.Decode(r)
}

// Buff group entry records.

// BuffAddGroupEntry is one unit entry of a buff add group.
type BuffAddGroupEntry struct {
	UnitNetID   uint32
	CasterNetID uint32
	BuffSlot    uint8
	Count       uint8
	IsHidden    bool
}

// Encode writes the record.
func (e *BuffAddGroupEntry) Encode(w *Writer) error {
	w.WriteUint32(e.UnitNetID)
	w.WriteUint32(e.CasterNetID)
	w.WriteUint8(e.BuffSlot)
	w.WriteUint8(e.Count)
	w.WriteBool(e.IsHidden)
	return nil
}

// Decode reads the record.
func (e *BuffAddGroupEntry) Decode(r *Reader) error {
	var err error
	if e.UnitNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if e.CasterNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if e.BuffSlot, err = r.ReadUint8(); err != nil {
		return err
	}
	if e.Count, err = r.ReadUint8(); err != nil {
		return err
	}
	e.IsHidden, err = r.ReadBool()
	return err
}

// BuffRemoveGroupEntry is one unit entry of a buff remove group.
type BuffRemoveGroupEntry struct {
	UnitNetID uint32
	BuffSlot  uint8
}

// Encode writes the record.
func (e *BuffRemoveGroupEntry) Encode(w *Writer) error {
	w.WriteUint32(e.UnitNetID)
	w.WriteUint8(e.BuffSlot)
	return nil
}

// Decode reads the record.
func (e *BuffRemoveGroupEntry) Decode(r *Reader) error {
	var err error
	if e.UnitNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	e.BuffSlot, err = r.ReadUint8()
	return err
}

// BuffReplaceGroupEntry is one unit entry of a buff replace group.
type BuffReplaceGroupEntry struct {
	UnitNetID   uint32
	CasterNetID uint32
	BuffSlot    uint8
}

// Encode writes the record.
func (e *BuffReplaceGroupEntry) Encode(w *Writer) error {
	w.WriteUint32(e.UnitNetID)
	w.WriteUint32(e.CasterNetID)
	w.WriteUint8(e.BuffSlot)
	return nil
}

// Decode reads the record.
func (e *BuffReplaceGroupEntry) Decode(r *Reader) error {
	var err error
	if e.UnitNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if e.CasterNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	e.BuffSlot, err = r.ReadUint8()
	return err
}

// BuffUpdateCountGroupEntry is one unit entry of a buff count update.
type BuffUpdateCountGroupEntry struct {
	UnitNetID   uint32
	CasterNetID uint32
	BuffSlot    uint8
	Count       uint8
}

// Encode writes the record.
func (e *BuffUpdateCountGroupEntry) Encode(w *Writer) error {
	w.WriteUint32(e.UnitNetID)
	w.WriteUint32(e.CasterNetID)
	w.WriteUint8(e.BuffSlot)
	w.WriteUint8(e.Count)
	return nil
}

// Decode reads the record.
func (e *BuffUpdateCountGroupEntry) Decode(r *Reader) error {
	var err error
	if e.UnitNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if e.CasterNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if e.BuffSlot, err = r.ReadUint8(); err != nil {
		return err
	}
	e.Count, err = r.ReadUint8()
	return err
}

// FxCreateGroupItem is one effect instance. Positions mix u16 for x/z
// with f32 for y, as the protocol defines them.
type FxCreateGroupItem struct {
	TargetNetID     uint32
	NetAssignedID   uint32
	BindNetID       uint32
	PositionX       uint16
	PositionY       float32
	PositionZ       uint16
	TargetPositionX uint16
	TargetPositionY float32
	TargetPositionZ uint16
	OwnerPositionX  uint16
	OwnerPositionY  float32
	OwnerPositionZ  uint16
	Orientation     Vector3
	TimeSpent       float32
}

// Encode writes the record.
func (f *FxCreateGroupItem) Encode(w *Writer) error {
	w.WriteUint32(f.TargetNetID)
	w.WriteUint32(f.NetAssignedID)
	w.WriteUint32(f.BindNetID)
	w.WriteUint16(f.PositionX)
	w.WriteFloat32(f.PositionY)
	w.WriteUint16(f.PositionZ)
	w.WriteUint16(f.TargetPositionX)
	w.WriteFloat32(f.TargetPositionY)
	w.WriteUint16(f.TargetPositionZ)
	w.WriteUint16(f.OwnerPositionX)
	w.WriteFloat32(f.OwnerPositionY)
	w.WriteUint16(f.OwnerPositionZ)
	if err := f.Orientation.Encode(w); err != nil {
		return err
	}
	w.WriteFloat32(f.TimeSpent)
	return nil
}

// Decode reads the record.
func (f *FxCreateGroupItem) Decode(r *Reader) error {
	var err error
	if f.TargetNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if f.NetAssignedID, err = r.ReadUint32(); err != nil {
		return err
	}
	if f.BindNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if f.PositionX, err = r.ReadUint16(); err != nil {
		return err
	}
	if f.PositionY, err = r.ReadFloat32(); err != nil {
		return err
	}
	if f.PositionZ, err = r.ReadUint16(); err != nil {
		return err
	}
	if f.TargetPositionX, err = r.ReadUint16(); err != nil {
		return err
	}
	if f.TargetPositionY, err = r.ReadFloat32(); err != nil {
		return err
	}
	if f.TargetPositionZ, err = r.ReadUint16(); err != nil {
		return err
	}
	if f.OwnerPositionX, err = r.ReadUint16(); err != nil {
		return err
	}
	if f.OwnerPositionY, err = r.ReadFloat32(); err != nil {
		return err
	}
	if f.OwnerPositionZ, err = r.ReadUint16(); err != nil {
		return err
	}
	if err = f.Orientation.Decode(r); err != nil {
		return err
	}
	f.TimeSpent, err = r.ReadFloat32()
	return err
}

// FxCreateGroupEntry groups effect instances under one effect hash.
type FxCreateGroupEntry struct {
	EffectNameHash     uint32
	Flags              uint16
	TargetBoneNameHash uint32
	BoneNameHash       uint32
	FxCreateData       []FxCreateGroupItem // u8-prefixed
}

// Encode writes the record.
func (f *FxCreateGroupEntry) Encode(w *Writer) error {
	w.WriteUint32(f.EffectNameHash)
	w.WriteUint16(f.Flags)
	w.WriteUint32(f.TargetBoneNameHash)
	w.WriteUint32(f.BoneNameHash)
	if err := w.WriteVecLenU8(len(f.FxCreateData)); err != nil {
		return err
	}
	for i := range f.FxCreateData {
		if err := f.FxCreateData[i].Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads the record.
func (f *FxCreateGroupEntry) Decode(r *Reader) error {
	var err error
	if f.EffectNameHash, err = r.ReadUint32(); err != nil {
		return err
	}
	if f.Flags, err = r.ReadUint16(); err != nil {
		return err
	}
	if f.TargetBoneNameHash, err = r.ReadUint32(); err != nil {
		return err
	}
	if f.BoneNameHash, err = r.ReadUint32(); err != nil {
		return err
	}
	count, err := r.ReadUint8()
	if err != nil {
		return err
	}
	f.FxCreateData = make([]FxCreateGroupItem, count)
	for i := range f.FxCreateData {
		if err = f.FxCreateData[i].Decode(r); err != nil {
			return err
		}
	}
	return nil
}

// ReplicationValue is one stat cell of a replication block.
type ReplicationValue struct {
	Key   int32
	Value uint32
}

// ReplicationGroup is one stat group; pair order is preserved on the
// wire, so groups and values are slices rather than maps.
type ReplicationGroup struct {
	Key    int32
	Values []ReplicationValue // u8-prefixed
}

// ReplicationData is the per-unit stat replication block.
type ReplicationData struct {
	UnitNetID uint32
	Groups    []ReplicationGroup // u8-prefixed
}

// Encode writes the record.
func (d *ReplicationData) Encode(w *Writer) error {
	w.WriteUint32(d.UnitNetID)
	if err := w.WriteVecLenU8(len(d.Groups)); err != nil {
		return err
	}
	for i := range d.Groups {
		g := &d.Groups[i]
		w.WriteInt32(g.Key)
		if err := w.WriteVecLenU8(len(g.Values)); err != nil {
			return err
		}
		for _, v := range g.Values {
			w.WriteInt32(v.Key)
			w.WriteUint32(v.Value)
		}
	}
	return nil
}

// Decode reads the record.
func (d *ReplicationData) Decode(r *Reader) error {
	var err error
	if d.UnitNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	count, err := r.ReadUint8()
	if err != nil {
		return err
	}
	d.Groups = make([]ReplicationGroup, count)
	for i := range d.Groups {
		g := &d.Groups[i]
		if g.Key, err = r.ReadInt32(); err != nil {
			return err
		}
		inner, err := r.ReadUint8()
		if err != nil {
			return err
		}
		g.Values = make([]ReplicationValue, inner)
		for j := range g.Values {
			if g.Values[j].Key, err = r.ReadInt32(); err != nil {
				return err
			}
			if g.Values[j].Value, err = r.ReadUint32(); err != nil {
				return err
			}
		}
	}
	return nil
}

// UpdateLevelPropData carries a level prop command.
type UpdateLevelPropData struct {
	StringParam0 string // fixed 64
	FloatParam0  float32
	FloatParam1  float32
	NetID        uint32
	Flags        uint32
	Command      uint8
	ByteParam0   uint8
	ByteParam1   uint8
	ByteParam2   uint8
}

// Encode writes the record.
func (d *UpdateLevelPropData) Encode(w *Writer) error {
	w.WriteFixedString(d.StringParam0, 64)
	w.WriteFloat32(d.FloatParam0)
	w.WriteFloat32(d.FloatParam1)
	w.WriteUint32(d.NetID)
	w.WriteUint32(d.Flags)
	w.WriteUint8(d.Command)
	w.WriteUint8(d.ByteParam0)
	w.WriteUint8(d.ByteParam1)
	w.WriteUint8(d.ByteParam2)
	return nil
}

// Decode reads the record.
func (d *UpdateLevelPropData) Decode(r *Reader) error {
	var err error
	if d.StringParam0, err = r.ReadFixedString(64); err != nil {
		return err
	}
	if d.FloatParam0, err = r.ReadFloat32(); err != nil {
		return err
	}
	if d.FloatParam1, err = r.ReadFloat32(); err != nil {
		return err
	}
	if d.NetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if d.Flags, err = r.ReadUint32(); err != nil {
		return err
	}
	if d.Command, err = r.ReadUint8(); err != nil {
		return err
	}
	if d.ByteParam0, err = r.ReadUint8(); err != nil {
		return err
	}
	if d.ByteParam1, err = r.ReadUint8(); err != nil {
		return err
	}
	d.ByteParam2, err = r.ReadUint8()
	return err
}
