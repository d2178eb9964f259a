package serverpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// AvatarItemCount and AvatarTalentCount size the avatar info arrays.
const (
	AvatarItemCount   = 30
	AvatarTalentCount = 30
)

// SStartSpawn opens the spawn sequence.
type SStartSpawn struct {
	BotCountOrder uint8
	BotCountChaos uint8
}

// Opcode returns the packet id.
func (*SStartSpawn) Opcode() uint8 { return OpcodeStartSpawn }

// Encode writes the payload.
func (p *SStartSpawn) Encode(w *packet.Writer) error {
	w.WriteUint8(p.BotCountOrder)
	w.WriteUint8(p.BotCountChaos)
	return nil
}

// Decode reads the payload.
func (p *SStartSpawn) Decode(r *packet.Reader) error {
	var err error
	if p.BotCountOrder, err = r.ReadUint8(); err != nil {
		return err
	}
	p.BotCountChaos, err = r.ReadUint8()
	return err
}

// SEndSpawn closes the spawn sequence.
type SEndSpawn struct{}

// Opcode returns the packet id.
func (*SEndSpawn) Opcode() uint8 { return OpcodeEndSpawn }

// Encode writes the payload.
func (*SEndSpawn) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*SEndSpawn) Decode(*packet.Reader) error { return nil }

// SCreateHero spawns one champion for a client slot.
type SCreateHero struct {
	UnitNetID          uint32
	ClientID           uint32
	NetNodeID          uint8
	SkillLevel         uint8
	TeamIsOrder        bool
	IsBot              bool
	BotRank            uint8
	SpawnPositionIndex uint8
	SkinID             uint32
	Name               string // fixed 40
	Skin               string // fixed 40
}

// Opcode returns the packet id.
func (*SCreateHero) Opcode() uint8 { return OpcodeCreateHero }

// Encode writes the payload.
func (p *SCreateHero) Encode(w *packet.Writer) error {
	w.WriteUint32(p.UnitNetID)
	w.WriteUint32(p.ClientID)
	w.WriteUint8(p.NetNodeID)
	w.WriteUint8(p.SkillLevel)
	w.WriteBool(p.TeamIsOrder)
	w.WriteBool(p.IsBot)
	w.WriteUint8(p.BotRank)
	w.WriteUint8(p.SpawnPositionIndex)
	w.WriteUint32(p.SkinID)
	w.WriteFixedString(p.Name, 40)
	w.WriteFixedString(p.Skin, 40)
	return nil
}

// Decode reads the payload.
func (p *SCreateHero) Decode(r *packet.Reader) error {
	var err error
	if p.UnitNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.ClientID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.NetNodeID, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.SkillLevel, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.TeamIsOrder, err = r.ReadBool(); err != nil {
		return err
	}
	if p.IsBot, err = r.ReadBool(); err != nil {
		return err
	}
	if p.BotRank, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.SpawnPositionIndex, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.SkinID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.Name, err = r.ReadFixedString(40); err != nil {
		return err
	}
	p.Skin, err = r.ReadFixedString(40)
	return err
}

// SAvatarInfo equips a spawned hero with items, spells and talents.
type SAvatarInfo struct {
	ItemIDs          [AvatarItemCount]uint32
	SummonerSpellIDs [2]uint32
	Talents          [AvatarTalentCount]packet.Talent
	Level            uint8
}

// Opcode returns the packet id.
func (*SAvatarInfo) Opcode() uint8 { return OpcodeAvatarInfo }

// Encode writes the payload.
func (p *SAvatarInfo) Encode(w *packet.Writer) error {
	for _, id := range p.ItemIDs {
		w.WriteUint32(id)
	}
	for _, id := range p.SummonerSpellIDs {
		w.WriteUint32(id)
	}
	for i := range p.Talents {
		if err := p.Talents[i].Encode(w); err != nil {
			return err
		}
	}
	w.WriteUint8(p.Level)
	return nil
}

// Decode reads the payload.
func (p *SAvatarInfo) Decode(r *packet.Reader) error {
	var err error
	for i := range p.ItemIDs {
		if p.ItemIDs[i], err = r.ReadUint32(); err != nil {
			return err
		}
	}
	for i := range p.SummonerSpellIDs {
		if p.SummonerSpellIDs[i], err = r.ReadUint32(); err != nil {
			return err
		}
	}
	for i := range p.Talents {
		if err = p.Talents[i].Decode(r); err != nil {
			return err
		}
	}
	p.Level, err = r.ReadUint8()
	return err
}

// SSpawnMinion spawns a minion unit.
type SSpawnMinion struct {
	UnitNetID      uint32
	UnitNetNodeID  uint8
	Position       packet.Vector3
	SkinID         uint32
	CloneNetID     uint32
	TeamID         uint32
	VisibilitySize float32
	Flags          packet.SpawnMinionFlags
	Name           string // fixed 64
	SkinName       string // fixed 64
}

// Opcode returns the packet id.
func (*SSpawnMinion) Opcode() uint8 { return OpcodeSpawnMinion }

// Encode writes the payload.
func (p *SSpawnMinion) Encode(w *packet.Writer) error {
	w.WriteUint32(p.UnitNetID)
	w.WriteUint8(p.UnitNetNodeID)
	if err := p.Position.Encode(w); err != nil {
		return err
	}
	w.WriteUint32(p.SkinID)
	w.WriteUint32(p.CloneNetID)
	w.WriteUint32(p.TeamID)
	w.WriteFloat32(p.VisibilitySize)
	if err := p.Flags.Encode(w); err != nil {
		return err
	}
	w.WriteFixedString(p.Name, 64)
	w.WriteFixedString(p.SkinName, 64)
	return nil
}

// Decode reads the payload.
func (p *SSpawnMinion) Decode(r *packet.Reader) error {
	var err error
	if p.UnitNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.UnitNetNodeID, err = r.ReadUint8(); err != nil {
		return err
	}
	if err = p.Position.Decode(r); err != nil {
		return err
	}
	if p.SkinID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.CloneNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.TeamID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.VisibilitySize, err = r.ReadFloat32(); err != nil {
		return err
	}
	if err = p.Flags.Decode(r); err != nil {
		return err
	}
	if p.Name, err = r.ReadFixedString(64); err != nil {
		return err
	}
	p.SkinName, err = r.ReadFixedString(64)
	return err
}

// SCreateNeutral spawns a neutral camp unit.
type SCreateNeutral struct {
	UnitNetID             uint32
	UnitNetNodeID         uint8
	Position              packet.Vector3
	GroupPosition         packet.Vector3
	FaceDirectionPosition packet.Vector3
	Name                  string // fixed 64
	SkinName              string // fixed 64
	UniqueName            string // fixed 64
	MinimapIcon           string // fixed 64
	TeamID                uint32
	DamageBonus           int32
	HealthBonus           int32
	RoamState             int32
	GroupNumber           int32
	BehaviorTree          bool
}

// Opcode returns the packet id.
func (*SCreateNeutral) Opcode() uint8 { return OpcodeCreateNeutral }

// Encode writes the payload.
func (p *SCreateNeutral) Encode(w *packet.Writer) error {
	w.WriteUint32(p.UnitNetID)
	w.WriteUint8(p.UnitNetNodeID)
	for _, v := range []*packet.Vector3{&p.Position, &p.GroupPosition, &p.FaceDirectionPosition} {
		if err := v.Encode(w); err != nil {
			return err
		}
	}
	for _, s := range []string{p.Name, p.SkinName, p.UniqueName, p.MinimapIcon} {
		w.WriteFixedString(s, 64)
	}
	w.WriteUint32(p.TeamID)
	w.WriteInt32(p.DamageBonus)
	w.WriteInt32(p.HealthBonus)
	w.WriteInt32(p.RoamState)
	w.WriteInt32(p.GroupNumber)
	w.WriteBool(p.BehaviorTree)
	return nil
}

// Decode reads the payload.
func (p *SCreateNeutral) Decode(r *packet.Reader) error {
	var err error
	if p.UnitNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.UnitNetNodeID, err = r.ReadUint8(); err != nil {
		return err
	}
	for _, v := range []*packet.Vector3{&p.Position, &p.GroupPosition, &p.FaceDirectionPosition} {
		if err = v.Decode(r); err != nil {
			return err
		}
	}
	for _, s := range []*string{&p.Name, &p.SkinName, &p.UniqueName, &p.MinimapIcon} {
		if *s, err = r.ReadFixedString(64); err != nil {
			return err
		}
	}
	if p.TeamID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.DamageBonus, err = r.ReadInt32(); err != nil {
		return err
	}
	if p.HealthBonus, err = r.ReadInt32(); err != nil {
		return err
	}
	if p.RoamState, err = r.ReadInt32(); err != nil {
		return err
	}
	if p.GroupNumber, err = r.ReadInt32(); err != nil {
		return err
	}
	p.BehaviorTree, err = r.ReadBool()
	return err
}

// SCreateTurret spawns a turret.
type SCreateTurret struct {
	UnitNetID     uint32
	UnitNetNodeID uint8
	Name          string // fixed 64
}

// Opcode returns the packet id.
func (*SCreateTurret) Opcode() uint8 { return OpcodeCreateTurret }

// Encode writes the payload.
func (p *SCreateTurret) Encode(w *packet.Writer) error {
	w.WriteUint32(p.UnitNetID)
	w.WriteUint8(p.UnitNetNodeID)
	w.WriteFixedString(p.Name, 64)
	return nil
}

// Decode reads the payload.
func (p *SCreateTurret) Decode(r *packet.Reader) error {
	var err error
	if p.UnitNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.UnitNetNodeID, err = r.ReadUint8(); err != nil {
		return err
	}
	p.Name, err = r.ReadFixedString(64)
	return err
}

// SSpawnLevelProp spawns a level prop.
type SSpawnLevelProp struct {
	UnitNetID      uint32
	UnitNetNodeID  uint8
	Position       packet.Vector3
	Facing         packet.Vector3
	PositionOffset packet.Vector3
	TeamID         uint32
	SkillLevel     uint8
	Rank           uint8
	Type           uint8
	Name           string // fixed 64
	PropName       string // fixed 64
}

// Opcode returns the packet id.
func (*SSpawnLevelProp) Opcode() uint8 { return OpcodeSpawnLevelProp }

// Encode writes the payload.
func (p *SSpawnLevelProp) Encode(w *packet.Writer) error {
	w.WriteUint32(p.UnitNetID)
	w.WriteUint8(p.UnitNetNodeID)
	for _, v := range []*packet.Vector3{&p.Position, &p.Facing, &p.PositionOffset} {
		if err := v.Encode(w); err != nil {
			return err
		}
	}
	w.WriteUint32(p.TeamID)
	w.WriteUint8(p.SkillLevel)
	w.WriteUint8(p.Rank)
	w.WriteUint8(p.Type)
	w.WriteFixedString(p.Name, 64)
	w.WriteFixedString(p.PropName, 64)
	return nil
}

// Decode reads the payload.
func (p *SSpawnLevelProp) Decode(r *packet.Reader) error {
	var err error
	if p.UnitNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.UnitNetNodeID, err = r.ReadUint8(); err != nil {
		return err
	}
	for _, v := range []*packet.Vector3{&p.Position, &p.Facing, &p.PositionOffset} {
		if err = v.Decode(r); err != nil {
			return err
		}
	}
	if p.TeamID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.SkillLevel, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.Rank, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.Type, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.Name, err = r.ReadFixedString(64); err != nil {
		return err
	}
	p.PropName, err = r.ReadFixedString(64)
	return err
}

// SBarrackSpawnUnit announces a barrack wave unit.
type SBarrackSpawnUnit struct {
	UnitNetID     uint32
	UnitNetNodeID uint8
	WaveCount     uint8
	MinionType    uint8
	DamageBonus   uint16
	HealthBonus   uint16
}

// Opcode returns the packet id.
func (*SBarrackSpawnUnit) Opcode() uint8 { return OpcodeBarrackSpawnUnit }

// Encode writes the payload.
func (p *SBarrackSpawnUnit) Encode(w *packet.Writer) error {
	w.WriteUint32(p.UnitNetID)
	w.WriteUint8(p.UnitNetNodeID)
	w.WriteUint8(p.WaveCount)
	w.WriteUint8(p.MinionType)
	w.WriteUint16(p.DamageBonus)
	w.WriteUint16(p.HealthBonus)
	return nil
}

// Decode reads the payload.
func (p *SBarrackSpawnUnit) Decode(r *packet.Reader) error {
	var err error
	if p.UnitNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.UnitNetNodeID, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.WaveCount, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.MinionType, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.DamageBonus, err = r.ReadUint16(); err != nil {
		return err
	}
	p.HealthBonus, err = r.ReadUint16()
	return err
}

// SCharSpawnPet spawns a pet bound to a champion.
type SCharSpawnPet struct {
	UnitNetID             uint32
	UnitNetNodeID         uint8
	Position              packet.Vector3
	CastSpellLevelPlusOne int32
	Duration              float32
	DamageBonus           int32
	HealthBonus           int32
	Name                  string // fixed 32
	Skin                  string // fixed 32
	SkinID                int32
	BuffName              string // fixed 64
	CloneNetID            uint32
	Flags                 packet.CharSpawnPetFlags
	AIScript              string // fixed 32
	ShowMinimapIcon       bool
}

// Opcode returns the packet id.
func (*SCharSpawnPet) Opcode() uint8 { return OpcodeCharSpawnPet }

// Encode writes the payload.
func (p *SCharSpawnPet) Encode(w *packet.Writer) error {
	w.WriteUint32(p.UnitNetID)
	w.WriteUint8(p.UnitNetNodeID)
	if err := p.Position.Encode(w); err != nil {
		return err
	}
	w.WriteInt32(p.CastSpellLevelPlusOne)
	w.WriteFloat32(p.Duration)
	w.WriteInt32(p.DamageBonus)
	w.WriteInt32(p.HealthBonus)
	w.WriteFixedString(p.Name, 32)
	w.WriteFixedString(p.Skin, 32)
	w.WriteInt32(p.SkinID)
	w.WriteFixedString(p.BuffName, 64)
	w.WriteUint32(p.CloneNetID)
	if err := p.Flags.Encode(w); err != nil {
		return err
	}
	w.WriteFixedString(p.AIScript, 32)
	w.WriteBool(p.ShowMinimapIcon)
	return nil
}

// Decode reads the payload.
func (p *SCharSpawnPet) Decode(r *packet.Reader) error {
	var err error
	if p.UnitNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.UnitNetNodeID, err = r.ReadUint8(); err != nil {
		return err
	}
	if err = p.Position.Decode(r); err != nil {
		return err
	}
	if p.CastSpellLevelPlusOne, err = r.ReadInt32(); err != nil {
		return err
	}
	if p.Duration, err = r.ReadFloat32(); err != nil {
		return err
	}
	if p.DamageBonus, err = r.ReadInt32(); err != nil {
		return err
	}
	if p.HealthBonus, err = r.ReadInt32(); err != nil {
		return err
	}
	if p.Name, err = r.ReadFixedString(32); err != nil {
		return err
	}
	if p.Skin, err = r.ReadFixedString(32); err != nil {
		return err
	}
	if p.SkinID, err = r.ReadInt32(); err != nil {
		return err
	}
	if p.BuffName, err = r.ReadFixedString(64); err != nil {
		return err
	}
	if p.CloneNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if err = p.Flags.Decode(r); err != nil {
		return err
	}
	if p.AIScript, err = r.ReadFixedString(32); err != nil {
		return err
	}
	p.ShowMinimapIcon, err = r.ReadBool()
	return err
}
