package clientpackets

import (
	"fmt"

	"github.com/veldrin/nexusgate/internal/gameserver/packet"
)

// CNpcIssueOrderReq carries a unit order (move, hold, attack-move,
// stop) with an optional movement path in the tail.
type CNpcIssueOrderReq struct {
	OrderType   uint8
	Position    packet.Vector3
	TargetNetID uint32
	Movement    packet.MovementDataNormal
}

// Opcode returns the packet id.
func (*CNpcIssueOrderReq) Opcode() uint8 { return OpcodeNpcIssueOrderReq }

// Encode writes the payload.
func (p *CNpcIssueOrderReq) Encode(w *packet.Writer) error {
	w.WriteUint8(p.OrderType)
	if err := p.Position.Encode(w); err != nil {
		return err
	}
	w.WriteUint32(p.TargetNetID)
	return p.Movement.Encode(w)
}

// Decode reads the payload. The movement block is optional; some
// clients omit it for orders that carry no path.
func (p *CNpcIssueOrderReq) Decode(r *packet.Reader) error {
	var err error
	if p.OrderType, err = r.ReadUint8(); err != nil {
		return fmt.Errorf("reading orderType: %w", err)
	}
	if err = p.Position.Decode(r); err != nil {
		return fmt.Errorf("reading position: %w", err)
	}
	if p.TargetNetID, err = r.ReadUint32(); err != nil {
		return fmt.Errorf("reading targetNetID: %w", err)
	}
	p.Movement = packet.MovementDataNormal{}
	if r.Remaining() == 0 {
		return nil
	}
	return p.Movement.Decode(r)
}

// CMapPing places a ping on the minimap.
type CMapPing struct {
	Position    packet.Vector3
	TargetNetID uint32
	Category    uint8
}

// Opcode returns the packet id.
func (*CMapPing) Opcode() uint8 { return OpcodeMapPing }

// Encode writes the payload.
func (p *CMapPing) Encode(w *packet.Writer) error {
	if err := p.Position.Encode(w); err != nil {
		return err
	}
	w.WriteUint32(p.TargetNetID)
	w.WriteUint8(p.Category)
	return nil
}

// Decode reads the payload.
func (p *CMapPing) Decode(r *packet.Reader) error {
	if err := p.Position.Decode(r); err != nil {
		return err
	}
	var err error
	if p.TargetNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	p.Category, err = r.ReadUint8()
	return err
}

// CUseObject activates a world object.
type CUseObject struct {
	TargetNetID uint32
}

// Opcode returns the packet id.
func (*CUseObject) Opcode() uint8 { return OpcodeUseObject }

// Encode writes the payload.
func (p *CUseObject) Encode(w *packet.Writer) error {
	w.WriteUint32(p.TargetNetID)
	return nil
}

// Decode reads the payload.
func (p *CUseObject) Decode(r *packet.Reader) error {
	var err error
	p.TargetNetID, err = r.ReadUint32()
	return err
}

// CPlayEmote triggers an emote.
type CPlayEmote struct {
	EmoteID uint32
}

// Opcode returns the packet id.
func (*CPlayEmote) Opcode() uint8 { return OpcodePlayEmote }

// Encode writes the payload.
func (p *CPlayEmote) Encode(w *packet.Writer) error {
	w.WriteUint32(p.EmoteID)
	return nil
}

// Decode reads the payload.
func (p *CPlayEmote) Decode(r *packet.Reader) error {
	var err error
	p.EmoteID, err = r.ReadUint32()
	return err
}

// CTeamSurrenderVote casts a surrender vote.
type CTeamSurrenderVote struct {
	VotedYes bool
}

// Opcode returns the packet id.
func (*CTeamSurrenderVote) Opcode() uint8 { return OpcodeTeamSurrenderVote }

// Encode writes the payload.
func (p *CTeamSurrenderVote) Encode(w *packet.Writer) error {
	w.WriteBool(p.VotedYes)
	return nil
}

// Decode reads the payload.
func (p *CTeamSurrenderVote) Decode(r *packet.Reader) error {
	var err error
	p.VotedYes, err = r.ReadBool()
	return err
}

// CWriteNavFlagsAcc acknowledges a nav flag write.
type CWriteNavFlagsAcc struct {
	SyncID int32
}

// Opcode returns the packet id.
func (*CWriteNavFlagsAcc) Opcode() uint8 { return OpcodeWriteNavFlagsAcc }

// Encode writes the payload.
func (p *CWriteNavFlagsAcc) Encode(w *packet.Writer) error {
	w.WriteInt32(p.SyncID)
	return nil
}

// Decode reads the payload.
func (p *CWriteNavFlagsAcc) Decode(r *packet.Reader) error {
	var err error
	p.SyncID, err = r.ReadInt32()
	return err
}
