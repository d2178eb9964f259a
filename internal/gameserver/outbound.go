package gameserver

import (
	"fmt"

	"github.com/veldrin/nexusgate/internal/gameserver/packet"
)

type outKind int

const (
	outSingle outKind = iota
	outGroup
	outAll
)

type outCommand struct {
	kind    outKind
	channel packet.Channel
	target  ClientID
	targets []ClientID
	data    []byte
}

// Outbound collects send commands during handler execution. The tick
// driver drains it once per iteration, in insertion order, encrypting
// a fresh copy per receiving client.
type Outbound struct {
	cmds []outCommand
}

// NewOutbound creates an empty queue.
func NewOutbound() *Outbound {
	return &Outbound{}
}

// Single queues raw bytes for one client.
func (o *Outbound) Single(cid ClientID, channel packet.Channel, data []byte) {
	o.cmds = append(o.cmds, outCommand{kind: outSingle, channel: channel, target: cid, data: data})
}

// Group queues raw bytes for a set of clients.
func (o *Outbound) Group(cids []ClientID, channel packet.Channel, data []byte) {
	o.cmds = append(o.cmds, outCommand{kind: outGroup, channel: channel, targets: cids, data: data})
}

// All queues raw bytes for every connected client.
func (o *Outbound) All(channel packet.Channel, data []byte) {
	o.cmds = append(o.cmds, outCommand{kind: outAll, channel: channel, data: data})
}

// SinglePacket frames and queues a game message for one client.
func (o *Outbound) SinglePacket(cid ClientID, channel packet.Channel, senderNetID uint32, m packet.Message) error {
	data, err := marshalGameFrame(m, senderNetID)
	if err != nil {
		return err
	}
	o.Single(cid, channel, data)
	return nil
}

// GroupPacket frames and queues a game message for a set of clients.
func (o *Outbound) GroupPacket(cids []ClientID, channel packet.Channel, senderNetID uint32, m packet.Message) error {
	data, err := marshalGameFrame(m, senderNetID)
	if err != nil {
		return err
	}
	o.Group(cids, channel, data)
	return nil
}

// AllPacket frames and queues a game message for every client.
func (o *Outbound) AllPacket(channel packet.Channel, senderNetID uint32, m packet.Message) error {
	data, err := marshalGameFrame(m, senderNetID)
	if err != nil {
		return err
	}
	o.All(channel, data)
	return nil
}

// drain empties the queue, returning the commands in insertion order.
func (o *Outbound) drain() []outCommand {
	cmds := o.cmds
	o.cmds = nil
	return cmds
}

// marshalGameFrame frames a message as [id][sender_net_id][payload].
func marshalGameFrame(m packet.Message, senderNetID uint32) ([]byte, error) {
	w := packet.NewWriter(64)
	w.WriteUint8(m.Opcode())
	w.WriteUint32(senderNetID)
	if err := m.Encode(w); err != nil {
		return nil, fmt.Errorf("encoding packet 0x%02X: %w", m.Opcode(), err)
	}
	return w.Bytes(), nil
}
