// Package loadingscreen defines the channel-6 frames. The frame is
// just [opcode][payload]; there is no sender net id.
package loadingscreen

import (
	"fmt"

	"github.com/veldrin/nexusgate/internal/gameserver/packet"
)

// Loading screen opcodes.
const (
	OpcodeRequestJoinTeam  uint8 = 0x64
	OpcodeRequestReskin    uint8 = 0x65
	OpcodeRequestRename    uint8 = 0x66
	OpcodeTeamRosterUpdate uint8 = 0x67
)

// RosterCapacity is the per-team player id capacity of the roster frame.
const RosterCapacity = 24

// RequestJoinTeam asks for (or announces) a team assignment.
type RequestJoinTeam struct {
	Pad      [3]uint8
	ClientID uint32
	TeamID   uint32
}

// Opcode returns the packet id.
func (*RequestJoinTeam) Opcode() uint8 { return OpcodeRequestJoinTeam }

// Encode writes the payload.
func (p *RequestJoinTeam) Encode(w *packet.Writer) error {
	w.WriteBytes(p.Pad[:])
	w.WriteUint32(p.ClientID)
	w.WriteUint32(p.TeamID)
	return nil
}

// Decode reads the payload.
func (p *RequestJoinTeam) Decode(r *packet.Reader) error {
	b, err := r.ReadBytes(len(p.Pad))
	if err != nil {
		return err
	}
	copy(p.Pad[:], b)
	if p.ClientID, err = r.ReadUint32(); err != nil {
		return err
	}
	p.TeamID, err = r.ReadUint32()
	return err
}

// RequestReskin names a player's champion skin.
type RequestReskin struct {
	Pad      [7]uint8
	PlayerID uint64
	SkinID   uint32
	Name     string // sized + null
}

// Opcode returns the packet id.
func (*RequestReskin) Opcode() uint8 { return OpcodeRequestReskin }

// Encode writes the payload.
func (p *RequestReskin) Encode(w *packet.Writer) error {
	w.WriteBytes(p.Pad[:])
	w.WriteUint64(p.PlayerID)
	w.WriteUint32(p.SkinID)
	w.WriteSizedStringNull(p.Name)
	return nil
}

// Decode reads the payload.
func (p *RequestReskin) Decode(r *packet.Reader) error {
	b, err := r.ReadBytes(len(p.Pad))
	if err != nil {
		return err
	}
	copy(p.Pad[:], b)
	if p.PlayerID, err = r.ReadUint64(); err != nil {
		return err
	}
	if p.SkinID, err = r.ReadUint32(); err != nil {
		return err
	}
	p.Name, err = r.ReadSizedStringNull()
	return err
}

// RequestRename names a player's display name.
type RequestRename struct {
	Pad      [7]uint8
	PlayerID uint64
	SkinID   uint32
	Name     string // sized + null
}

// Opcode returns the packet id.
func (*RequestRename) Opcode() uint8 { return OpcodeRequestRename }

// Encode writes the payload.
func (p *RequestRename) Encode(w *packet.Writer) error {
	w.WriteBytes(p.Pad[:])
	w.WriteUint64(p.PlayerID)
	w.WriteUint32(p.SkinID)
	w.WriteSizedStringNull(p.Name)
	return nil
}

// Decode reads the payload.
func (p *RequestRename) Decode(r *packet.Reader) error {
	b, err := r.ReadBytes(len(p.Pad))
	if err != nil {
		return err
	}
	copy(p.Pad[:], b)
	if p.PlayerID, err = r.ReadUint64(); err != nil {
		return err
	}
	if p.SkinID, err = r.ReadUint32(); err != nil {
		return err
	}
	p.Name, err = r.ReadSizedStringNull()
	return err
}

// TeamRosterUpdate carries the full lobby roster split by team.
type TeamRosterUpdate struct {
	Pad0                 [3]uint8
	TeamSizeOrder        uint32
	TeamSizeChaos        uint32
	Pad1                 [4]uint8
	OrderPlayerIDs       [RosterCapacity]uint64
	ChaosPlayerIDs       [RosterCapacity]uint64
	CurrentTeamSizeOrder uint32
	CurrentTeamSizeChaos uint32
}

// Opcode returns the packet id.
func (*TeamRosterUpdate) Opcode() uint8 { return OpcodeTeamRosterUpdate }

// Encode writes the payload.
func (p *TeamRosterUpdate) Encode(w *packet.Writer) error {
	w.WriteBytes(p.Pad0[:])
	w.WriteUint32(p.TeamSizeOrder)
	w.WriteUint32(p.TeamSizeChaos)
	w.WriteBytes(p.Pad1[:])
	for _, id := range p.OrderPlayerIDs {
		w.WriteUint64(id)
	}
	for _, id := range p.ChaosPlayerIDs {
		w.WriteUint64(id)
	}
	w.WriteUint32(p.CurrentTeamSizeOrder)
	w.WriteUint32(p.CurrentTeamSizeChaos)
	return nil
}

// Decode reads the payload.
func (p *TeamRosterUpdate) Decode(r *packet.Reader) error {
	b, err := r.ReadBytes(len(p.Pad0))
	if err != nil {
		return err
	}
	copy(p.Pad0[:], b)
	if p.TeamSizeOrder, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.TeamSizeChaos, err = r.ReadUint32(); err != nil {
		return err
	}
	if b, err = r.ReadBytes(len(p.Pad1)); err != nil {
		return err
	}
	copy(p.Pad1[:], b)
	for i := range p.OrderPlayerIDs {
		if p.OrderPlayerIDs[i], err = r.ReadUint64(); err != nil {
			return err
		}
	}
	for i := range p.ChaosPlayerIDs {
		if p.ChaosPlayerIDs[i], err = r.ReadUint64(); err != nil {
			return err
		}
	}
	if p.CurrentTeamSizeOrder, err = r.ReadUint32(); err != nil {
		return err
	}
	p.CurrentTeamSizeChaos, err = r.ReadUint32()
	return err
}

// Marshal frames a loading screen message as [opcode][payload].
func Marshal(m packet.Message) ([]byte, error) {
	w := packet.NewWriter(64)
	w.WriteUint8(m.Opcode())
	if err := m.Encode(w); err != nil {
		return nil, fmt.Errorf("encoding loading screen 0x%02X: %w", m.Opcode(), err)
	}
	return w.Bytes(), nil
}
