package serverpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// SStartGame releases the clients into the running game.
type SStartGame struct {
	TournamentPauseEnabled bool
}

// Opcode returns the packet id.
func (*SStartGame) Opcode() uint8 { return OpcodeStartGame }

// Encode writes the payload.
func (p *SStartGame) Encode(w *packet.Writer) error {
	w.WriteBool(p.TournamentPauseEnabled)
	return nil
}

// Decode reads the payload.
func (p *SStartGame) Decode(r *packet.Reader) error {
	var err error
	p.TournamentPauseEnabled, err = r.ReadBool()
	return err
}

// SPausePacket pauses the game.
type SPausePacket struct {
	ClientID           uint32
	PauseTimeRemaining uint32
	TournamentPause    bool
}

// Opcode returns the packet id.
func (*SPausePacket) Opcode() uint8 { return OpcodePausePacket }

// Encode writes the payload.
func (p *SPausePacket) Encode(w *packet.Writer) error {
	w.WriteUint32(p.ClientID)
	w.WriteUint32(p.PauseTimeRemaining)
	w.WriteBool(p.TournamentPause)
	return nil
}

// Decode reads the payload.
func (p *SPausePacket) Decode(r *packet.Reader) error {
	var err error
	if p.ClientID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.PauseTimeRemaining, err = r.ReadUint32(); err != nil {
		return err
	}
	p.TournamentPause, err = r.ReadBool()
	return err
}

// SResumePacket resumes a paused game.
type SResumePacket struct {
	ClientID uint32
	Delayed  bool
}

// Opcode returns the packet id.
func (*SResumePacket) Opcode() uint8 { return OpcodeResumePacket }

// Encode writes the payload.
func (p *SResumePacket) Encode(w *packet.Writer) error {
	w.WriteUint32(p.ClientID)
	w.WriteBool(p.Delayed)
	return nil
}

// Decode reads the payload.
func (p *SResumePacket) Decode(r *packet.Reader) error {
	var err error
	if p.ClientID, err = r.ReadUint32(); err != nil {
		return err
	}
	p.Delayed, err = r.ReadBool()
	return err
}

// SEndOfGameEvent announces the winning side.
type SEndOfGameEvent struct {
	TeamIsOrder bool
}

// Opcode returns the packet id.
func (*SEndOfGameEvent) Opcode() uint8 { return OpcodeEndOfGameEvent }

// Encode writes the payload.
func (p *SEndOfGameEvent) Encode(w *packet.Writer) error {
	w.WriteBool(p.TeamIsOrder)
	return nil
}

// Decode reads the payload.
func (p *SEndOfGameEvent) Decode(r *packet.Reader) error {
	var err error
	p.TeamIsOrder, err = r.ReadBool()
	return err
}

// SEndGame closes the game. Packs into a single byte:
// bit1=team_order_win, bit2=surrender.
type SEndGame struct {
	IsTeamOrderWin bool
	IsSurrender    bool
}

// Opcode returns the packet id.
func (*SEndGame) Opcode() uint8 { return OpcodeEndGame }

// Encode writes the packed byte.
func (p *SEndGame) Encode(w *packet.Writer) error {
	var b uint8
	if p.IsTeamOrderWin {
		b |= 1 << 1
	}
	if p.IsSurrender {
		b |= 1 << 2
	}
	w.WriteUint8(b)
	return nil
}

// Decode reads the packed byte.
func (p *SEndGame) Decode(r *packet.Reader) error {
	b, err := r.ReadUint8()
	p.IsTeamOrderWin = b&(1<<1) != 0
	p.IsSurrender = b&(1<<2) != 0
	return err
}

// SDisableHUDForEndOfGame hides the HUD for the end screen.
type SDisableHUDForEndOfGame struct{}

// Opcode returns the packet id.
func (*SDisableHUDForEndOfGame) Opcode() uint8 { return OpcodeDisableHUDForEndOfGame }

// Encode writes the payload.
func (*SDisableHUDForEndOfGame) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*SDisableHUDForEndOfGame) Decode(*packet.Reader) error { return nil }
