package serverpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// STeamSurrenderVote reports a cast surrender vote.
type STeamSurrenderVote struct {
	Flags       packet.TeamSurrenderVoteFlags
	PlayerNetID uint32
	ForVote     uint8
	AgainstVote uint8
	NumPlayers  uint8
	TeamID      uint32
	TimeOut     float32
}

// Opcode returns the packet id.
func (*STeamSurrenderVote) Opcode() uint8 { return OpcodeTeamSurrenderVote }

// Encode writes the payload.
func (p *STeamSurrenderVote) Encode(w *packet.Writer) error {
	if err := p.Flags.Encode(w); err != nil {
		return err
	}
	w.WriteUint32(p.PlayerNetID)
	w.WriteUint8(p.ForVote)
	w.WriteUint8(p.AgainstVote)
	w.WriteUint8(p.NumPlayers)
	w.WriteUint32(p.TeamID)
	w.WriteFloat32(p.TimeOut)
	return nil
}

// Decode reads the payload.
func (p *STeamSurrenderVote) Decode(r *packet.Reader) error {
	if err := p.Flags.Decode(r); err != nil {
		return err
	}
	var err error
	if p.PlayerNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.ForVote, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.AgainstVote, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.NumPlayers, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.TeamID, err = r.ReadUint32(); err != nil {
		return err
	}
	p.TimeOut, err = r.ReadFloat32()
	return err
}

// STeamSurrenderStatus reports the final vote tally.
type STeamSurrenderStatus struct {
	Reason      uint32
	ForVote     uint8
	AgainstVote uint8
	TeamID      uint32
}

// Opcode returns the packet id.
func (*STeamSurrenderStatus) Opcode() uint8 { return OpcodeTeamSurrenderStatus }

// Encode writes the payload.
func (p *STeamSurrenderStatus) Encode(w *packet.Writer) error {
	w.WriteUint32(p.Reason)
	w.WriteUint8(p.ForVote)
	w.WriteUint8(p.AgainstVote)
	w.WriteUint32(p.TeamID)
	return nil
}

// Decode reads the payload.
func (p *STeamSurrenderStatus) Decode(r *packet.Reader) error {
	var err error
	if p.Reason, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.ForVote, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.AgainstVote, err = r.ReadUint8(); err != nil {
		return err
	}
	p.TeamID, err = r.ReadUint32()
	return err
}

// STeamSurrenderCountDown ticks the surrender timer.
type STeamSurrenderCountDown struct {
	TimeRemaining float32
}

// Opcode returns the packet id.
func (*STeamSurrenderCountDown) Opcode() uint8 { return OpcodeTeamSurrenderCountDown }

// Encode writes the payload.
func (p *STeamSurrenderCountDown) Encode(w *packet.Writer) error {
	w.WriteFloat32(p.TimeRemaining)
	return nil
}

// Decode reads the payload.
func (p *STeamSurrenderCountDown) Decode(r *packet.Reader) error {
	var err error
	p.TimeRemaining, err = r.ReadFloat32()
	return err
}

// SDampenerSwitch toggles an inhibitor. Packs into a u16:
// bits0..14=duration, bit15=state.
type SDampenerSwitch struct {
	Duration uint16
	State    bool
}

// Opcode returns the packet id.
func (*SDampenerSwitch) Opcode() uint8 { return OpcodeDampenerSwitch }

// Encode writes the packed word.
func (p *SDampenerSwitch) Encode(w *packet.Writer) error {
	v := p.Duration & 0x7FFF
	if p.State {
		v |= 0x8000
	}
	w.WriteUint16(v)
	return nil
}

// Decode reads the packed word.
func (p *SDampenerSwitch) Decode(r *packet.Reader) error {
	v, err := r.ReadUint16()
	p.Duration = v & 0x7FFF
	p.State = v&0x8000 != 0
	return err
}
