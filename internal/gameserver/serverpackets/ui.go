package serverpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// SMapPing relays a minimap ping.
type SMapPing struct {
	Position    packet.Vector3
	TargetNetID uint32
	SourceNetID uint32
	Flags       packet.MapPingFlags
}

// Opcode returns the packet id.
func (*SMapPing) Opcode() uint8 { return OpcodeMapPing }

// Encode writes the payload.
func (p *SMapPing) Encode(w *packet.Writer) error {
	if err := p.Position.Encode(w); err != nil {
		return err
	}
	w.WriteUint32(p.TargetNetID)
	w.WriteUint32(p.SourceNetID)
	return p.Flags.Encode(w)
}

// Decode reads the payload.
func (p *SMapPing) Decode(r *packet.Reader) error {
	if err := p.Position.Decode(r); err != nil {
		return err
	}
	var err error
	if p.TargetNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.SourceNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	return p.Flags.Decode(r)
}

// SDisplayFloatingText shows floating combat text.
type SDisplayFloatingText struct {
	TargetNetID      uint32
	FloatingTextType uint8
	Param            int32
	Message          string // fixed 128
}

// Opcode returns the packet id.
func (*SDisplayFloatingText) Opcode() uint8 { return OpcodeDisplayFloatingText }

// Encode writes the payload.
func (p *SDisplayFloatingText) Encode(w *packet.Writer) error {
	w.WriteUint32(p.TargetNetID)
	w.WriteUint8(p.FloatingTextType)
	w.WriteInt32(p.Param)
	w.WriteFixedString(p.Message, 128)
	return nil
}

// Decode reads the payload.
func (p *SDisplayFloatingText) Decode(r *packet.Reader) error {
	var err error
	if p.TargetNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.FloatingTextType, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.Param, err = r.ReadInt32(); err != nil {
		return err
	}
	p.Message, err = r.ReadFixedString(128)
	return err
}

// SNpcMessageToClient shows an NPC chat bubble.
type SNpcMessageToClient struct {
	TargetNetID uint32
	BubbleDelay float32
	SlotNumber  int32
	IsError     bool
	ColorIndex  uint8
	Message     string // null-terminated
}

// Opcode returns the packet id.
func (*SNpcMessageToClient) Opcode() uint8 { return OpcodeNpcMessageToClient }

// Encode writes the payload.
func (p *SNpcMessageToClient) Encode(w *packet.Writer) error {
	w.WriteUint32(p.TargetNetID)
	w.WriteFloat32(p.BubbleDelay)
	w.WriteInt32(p.SlotNumber)
	w.WriteBool(p.IsError)
	w.WriteUint8(p.ColorIndex)
	w.WriteString(p.Message)
	return nil
}

// Decode reads the payload.
func (p *SNpcMessageToClient) Decode(r *packet.Reader) error {
	var err error
	if p.TargetNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.BubbleDelay, err = r.ReadFloat32(); err != nil {
		return err
	}
	if p.SlotNumber, err = r.ReadInt32(); err != nil {
		return err
	}
	if p.IsError, err = r.ReadBool(); err != nil {
		return err
	}
	if p.ColorIndex, err = r.ReadUint8(); err != nil {
		return err
	}
	p.Message, err = r.ReadString()
	return err
}

// SShowObjectiveText shows the objective banner.
type SShowObjectiveText struct {
	TextID string // null-terminated
}

// Opcode returns the packet id.
func (*SShowObjectiveText) Opcode() uint8 { return OpcodeShowObjectiveText }

// Encode writes the payload.
func (p *SShowObjectiveText) Encode(w *packet.Writer) error {
	w.WriteString(p.TextID)
	return nil
}

// Decode reads the payload.
func (p *SShowObjectiveText) Decode(r *packet.Reader) error {
	var err error
	p.TextID, err = r.ReadString()
	return err
}

// SRefreshObjectiveText refreshes the objective banner.
type SRefreshObjectiveText struct {
	TextID string // null-terminated
}

// Opcode returns the packet id.
func (*SRefreshObjectiveText) Opcode() uint8 { return OpcodeRefreshObjectiveText }

// Encode writes the payload.
func (p *SRefreshObjectiveText) Encode(w *packet.Writer) error {
	w.WriteString(p.TextID)
	return nil
}

// Decode reads the payload.
func (p *SRefreshObjectiveText) Decode(r *packet.Reader) error {
	var err error
	p.TextID, err = r.ReadString()
	return err
}

// SHideObjectiveText hides the objective banner.
type SHideObjectiveText struct{}

// Opcode returns the packet id.
func (*SHideObjectiveText) Opcode() uint8 { return OpcodeHideObjectiveText }

// Encode writes the payload.
func (*SHideObjectiveText) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*SHideObjectiveText) Decode(*packet.Reader) error { return nil }

// SShowHealthBar toggles a unit's health bar.
type SShowHealthBar struct {
	Show bool
}

// Opcode returns the packet id.
func (*SShowHealthBar) Opcode() uint8 { return OpcodeShowHealthBar }

// Encode writes the payload.
func (p *SShowHealthBar) Encode(w *packet.Writer) error {
	w.WriteBool(p.Show)
	return nil
}

// Decode reads the payload.
func (p *SShowHealthBar) Decode(r *packet.Reader) error {
	var err error
	p.Show, err = r.ReadBool()
	return err
}

// SPlayEmote relays an emote.
type SPlayEmote struct {
	EmoteID uint32
}

// Opcode returns the packet id.
func (*SPlayEmote) Opcode() uint8 { return OpcodePlayEmote }

// Encode writes the payload.
func (p *SPlayEmote) Encode(w *packet.Writer) error {
	w.WriteUint32(p.EmoteID)
	return nil
}

// Decode reads the payload.
func (p *SPlayEmote) Decode(r *packet.Reader) error {
	var err error
	p.EmoteID, err = r.ReadUint32()
	return err
}

// SPlayAnimation plays a named animation on the sender unit.
type SPlayAnimation struct {
	Flags         uint32
	ScaleTime     float32
	AnimationName string // null-terminated
}

// Opcode returns the packet id.
func (*SPlayAnimation) Opcode() uint8 { return OpcodePlayAnimation }

// Encode writes the payload.
func (p *SPlayAnimation) Encode(w *packet.Writer) error {
	w.WriteUint32(p.Flags)
	w.WriteFloat32(p.ScaleTime)
	w.WriteString(p.AnimationName)
	return nil
}

// Decode reads the payload.
func (p *SPlayAnimation) Decode(r *packet.Reader) error {
	var err error
	if p.Flags, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.ScaleTime, err = r.ReadFloat32(); err != nil {
		return err
	}
	p.AnimationName, err = r.ReadString()
	return err
}

// SStopAnimation stops animations on the sender unit. Packs into a
// single byte: bit1=fade, bit2=ignore_lock, bit4=stop_all.
type SStopAnimation struct {
	Fade       bool
	IgnoreLock bool
	StopAll    bool
}

// Opcode returns the packet id.
func (*SStopAnimation) Opcode() uint8 { return OpcodeStopAnimation }

// Encode writes the packed byte.
func (p *SStopAnimation) Encode(w *packet.Writer) error {
	var b uint8
	if p.Fade {
		b |= 1 << 1
	}
	if p.IgnoreLock {
		b |= 1 << 2
	}
	if p.StopAll {
		b |= 1 << 4
	}
	w.WriteUint8(b)
	return nil
}

// Decode reads the packed byte.
func (p *SStopAnimation) Decode(r *packet.Reader) error {
	b, err := r.ReadUint8()
	p.Fade = b&(1<<1) != 0
	p.IgnoreLock = b&(1<<2) != 0
	p.StopAll = b&(1<<4) != 0
	return err
}

// SPauseAnimation freezes or resumes animations.
type SPauseAnimation struct {
	Pause bool
}

// Opcode returns the packet id.
func (*SPauseAnimation) Opcode() uint8 { return OpcodePauseAnimation }

// Encode writes the payload.
func (p *SPauseAnimation) Encode(w *packet.Writer) error {
	w.WriteBool(p.Pause)
	return nil
}

// Decode reads the payload.
func (p *SPauseAnimation) Decode(r *packet.Reader) error {
	var err error
	p.Pause, err = r.ReadBool()
	return err
}

// AnimOverride remaps one animation name to another. Pair order is
// preserved on the wire.
type AnimOverride struct {
	From string
	To   string
}

// SSetAnimStates overrides animation states.
type SSetAnimStates struct {
	Overrides []AnimOverride // u8-prefixed, null-terminated strings
}

// Opcode returns the packet id.
func (*SSetAnimStates) Opcode() uint8 { return OpcodeSetAnimStates }

// Encode writes the payload.
func (p *SSetAnimStates) Encode(w *packet.Writer) error {
	if err := w.WriteVecLenU8(len(p.Overrides)); err != nil {
		return err
	}
	for _, o := range p.Overrides {
		w.WriteString(o.From)
		w.WriteString(o.To)
	}
	return nil
}

// Decode reads the payload.
func (p *SSetAnimStates) Decode(r *packet.Reader) error {
	count, err := r.ReadUint8()
	if err != nil {
		return err
	}
	p.Overrides = make([]AnimOverride, count)
	for i := range p.Overrides {
		if p.Overrides[i].From, err = r.ReadString(); err != nil {
			return err
		}
		if p.Overrides[i].To, err = r.ReadString(); err != nil {
			return err
		}
	}
	return nil
}
