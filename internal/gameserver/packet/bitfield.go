package packet

// Bit-packed wire records. Each packs into a single byte (the u16
// dampener word is packed by serverpackets.SDampenerSwitch); the domain
// structs stay plain bools and small ints.

// TeamSurrenderVoteFlags packs the surrender vote state.
// bit0=vote_yes, bit1=open_vote_menu.
type TeamSurrenderVoteFlags struct {
	VoteYes      bool
	OpenVoteMenu bool
}

func (f *TeamSurrenderVoteFlags) pack() uint8 {
	var b uint8
	if f.VoteYes {
		b |= 1 << 0
	}
	if f.OpenVoteMenu {
		b |= 1 << 1
	}
	return b
}

func (f *TeamSurrenderVoteFlags) unpack(b uint8) {
	f.VoteYes = b&(1<<0) != 0
	f.OpenVoteMenu = b&(1<<1) != 0
}

// Encode writes the packed byte.
func (f *TeamSurrenderVoteFlags) Encode(w *Writer) error {
	w.WriteUint8(f.pack())
	return nil
}

// Decode reads the packed byte.
func (f *TeamSurrenderVoteFlags) Decode(r *Reader) error {
	b, err := r.ReadUint8()
	f.unpack(b)
	return err
}

// MapPingFlags packs a map ping descriptor.
// bits0..3=category, bit4=play_audio, bit5=show_chat, bit6=throttled.
type MapPingFlags struct {
	Category  uint8
	PlayAudio bool
	ShowChat  bool
	Throttled bool
}

func (f *MapPingFlags) pack() uint8 {
	b := f.Category & 0x0F
	if f.PlayAudio {
		b |= 1 << 4
	}
	if f.ShowChat {
		b |= 1 << 5
	}
	if f.Throttled {
		b |= 1 << 6
	}
	return b
}

func (f *MapPingFlags) unpack(b uint8) {
	f.Category = b & 0x0F
	f.PlayAudio = b&(1<<4) != 0
	f.ShowChat = b&(1<<5) != 0
	f.Throttled = b&(1<<6) != 0
}

// Encode writes the packed byte.
func (f *MapPingFlags) Encode(w *Writer) error {
	w.WriteUint8(f.pack())
	return nil
}

// Decode reads the packed byte.
func (f *MapPingFlags) Decode(r *Reader) error {
	b, err := r.ReadUint8()
	f.unpack(b)
	return err
}

// SpawnMinionFlags packs minion spawn options.
// bit0=ignore_collision, bit1=is_ward, bit2=behaviour_tree.
type SpawnMinionFlags struct {
	IgnoreCollision bool
	IsWard          bool
	BehaviourTree   bool
}

// Encode writes the packed byte.
func (f *SpawnMinionFlags) Encode(w *Writer) error {
	var b uint8
	if f.IgnoreCollision {
		b |= 1 << 0
	}
	if f.IsWard {
		b |= 1 << 1
	}
	if f.BehaviourTree {
		b |= 1 << 2
	}
	w.WriteUint8(b)
	return nil
}

// Decode reads the packed byte.
func (f *SpawnMinionFlags) Decode(r *Reader) error {
	b, err := r.ReadUint8()
	f.IgnoreCollision = b&(1<<0) != 0
	f.IsWard = b&(1<<1) != 0
	f.BehaviourTree = b&(1<<2) != 0
	return err
}

// CastInfoFlags packs cast modifiers.
// bit0=auto_attack, bit1=second_auto_attack, bit2=force_cast,
// bit3=override_cast_position.
type CastInfoFlags struct {
	AutoAttack           bool
	SecondAutoAttack     bool
	ForceCast            bool
	OverrideCastPosition bool
}

// Encode writes the packed byte.
func (f *CastInfoFlags) Encode(w *Writer) error {
	var b uint8
	if f.AutoAttack {
		b |= 1 << 0
	}
	if f.SecondAutoAttack {
		b |= 1 << 1
	}
	if f.ForceCast {
		b |= 1 << 2
	}
	if f.OverrideCastPosition {
		b |= 1 << 3
	}
	w.WriteUint8(b)
	return nil
}

// Decode reads the packed byte.
func (f *CastInfoFlags) Decode(r *Reader) error {
	b, err := r.ReadUint8()
	f.AutoAttack = b&(1<<0) != 0
	f.SecondAutoAttack = b&(1<<1) != 0
	f.ForceCast = b&(1<<2) != 0
	f.OverrideCastPosition = b&(1<<3) != 0
	return err
}

// SpellSlot packs a spell slot index with the summoner-spell marker.
// bits0..6=slot, bit7=is_summoner_spell.
type SpellSlot struct {
	Slot            uint8
	IsSummonerSpell bool
}

// Encode writes the packed byte.
func (f *SpellSlot) Encode(w *Writer) error {
	b := f.Slot & 0x7F
	if f.IsSummonerSpell {
		b |= 0x80
	}
	w.WriteUint8(b)
	return nil
}

// Decode reads the packed byte.
func (f *SpellSlot) Decode(r *Reader) error {
	b, err := r.ReadUint8()
	f.Slot = b & 0x7F
	f.IsSummonerSpell = b&0x80 != 0
	return err
}

// ShieldProperties packs shield type flags.
// bit0=physical, bit1=magical, bit2=stop_fade.
type ShieldProperties struct {
	Physical bool
	Magical  bool
	StopFade bool
}

// Encode writes the packed byte.
func (f *ShieldProperties) Encode(w *Writer) error {
	var b uint8
	if f.Physical {
		b |= 1 << 0
	}
	if f.Magical {
		b |= 1 << 1
	}
	if f.StopFade {
		b |= 1 << 2
	}
	w.WriteUint8(b)
	return nil
}

// Decode reads the packed byte.
func (f *ShieldProperties) Decode(r *Reader) error {
	b, err := r.ReadUint8()
	f.Physical = b&(1<<0) != 0
	f.Magical = b&(1<<1) != 0
	f.StopFade = b&(1<<2) != 0
	return err
}

// CharSpawnPetFlags packs pet spawn options.
// bit0=copy_inventory, bit1=clear_focus_target.
type CharSpawnPetFlags struct {
	CopyInventory    bool
	ClearFocusTarget bool
}

// Encode writes the packed byte.
func (f *CharSpawnPetFlags) Encode(w *Writer) error {
	var b uint8
	if f.CopyInventory {
		b |= 1 << 0
	}
	if f.ClearFocusTarget {
		b |= 1 << 1
	}
	w.WriteUint8(b)
	return nil
}

// Decode reads the packed byte.
func (f *CharSpawnPetFlags) Decode(r *Reader) error {
	b, err := r.ReadUint8()
	f.CopyInventory = b&(1<<0) != 0
	f.ClearFocusTarget = b&(1<<1) != 0
	return err
}
