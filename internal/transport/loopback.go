package transport

import "time"

// Loopback is an in-memory Endpoint. It preserves the ordering
// contract of the real engine (per-peer, per-insertion order) and
// records everything sent to each peer. Tests and local tooling drive
// it by injecting connects, packets and disconnects.
type Loopback struct {
	events []Event
}

// NewLoopback creates an empty loopback endpoint.
func NewLoopback() *Loopback {
	return &Loopback{}
}

// LoopbackPeer is one simulated connection.
type LoopbackPeer struct {
	ep  *Loopback
	tag int

	// Outbound traffic recorded per channel, in send order.
	Outgoing []SentPacket
	// Closed reports DisconnectNow/Disconnect calls, with the reason.
	Closed      bool
	CloseReason uint32
}

// SentPacket is one recorded send.
type SentPacket struct {
	Channel  uint8
	Data     []byte
	Reliable bool
}

// Connect attaches a new simulated peer and queues its connect event.
func (l *Loopback) Connect() *LoopbackPeer {
	p := &LoopbackPeer{ep: l, tag: NoTag}
	l.events = append(l.events, Event{Type: EventConnect, Peer: p})
	return p
}

// Inject queues an inbound packet from p.
func (p *LoopbackPeer) Inject(channel uint8, data []byte) {
	p.ep.events = append(p.ep.events, Event{
		Type:    EventReceive,
		Peer:    p,
		Channel: channel,
		Data:    append([]byte(nil), data...),
	})
}

// Drop queues the disconnect event the engine would deliver after the
// remote side went away.
func (p *LoopbackPeer) Drop() {
	p.ep.events = append(p.ep.events, Event{Type: EventDisconnect, Peer: p})
}

// Service pops the next queued event, or EventNone.
func (l *Loopback) Service(time.Duration) Event {
	if len(l.events) == 0 {
		return Event{Type: EventNone}
	}
	ev := l.events[0]
	l.events = l.events[1:]
	return ev
}

// Flush is a no-op for the in-memory pair.
func (*Loopback) Flush() {}

// Close drops all queued events.
func (l *Loopback) Close() { l.events = nil }

// Send records the packet.
func (p *LoopbackPeer) Send(channel uint8, data []byte, reliable bool) error {
	p.Outgoing = append(p.Outgoing, SentPacket{
		Channel:  channel,
		Data:     append([]byte(nil), data...),
		Reliable: reliable,
	})
	return nil
}

// Disconnect marks the peer closed and queues the disconnect event,
// mirroring how the engine reports a graceful close back to us.
func (p *LoopbackPeer) Disconnect(reason uint32) {
	if p.Closed {
		return
	}
	p.Closed = true
	p.CloseReason = reason
	p.ep.events = append(p.ep.events, Event{Type: EventDisconnect, Peer: p})
}

// DisconnectNow behaves like Disconnect for the in-memory pair.
func (p *LoopbackPeer) DisconnectNow(reason uint32) {
	p.Disconnect(reason)
}

// SetTag attaches a tag to the peer.
func (p *LoopbackPeer) SetTag(tag int) { p.tag = tag }

// Tag returns the attached tag.
func (p *LoopbackPeer) Tag() int { return p.tag }

// SentOn returns the payloads recorded on one channel.
func (p *LoopbackPeer) SentOn(channel uint8) [][]byte {
	var out [][]byte
	for _, s := range p.Outgoing {
		if s.Channel == channel {
			out = append(out, s.Data)
		}
	}
	return out
}
