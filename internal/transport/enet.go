package transport

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/codecat/go-enet"
)

// ENetEndpoint adapts an ENet host to the Endpoint contract.
type ENetEndpoint struct {
	host  enet.Host
	peers map[enet.Peer]*enetPeer
}

type enetPeer struct {
	peer enet.Peer
	tag  int
}

// Listen initializes ENet and binds a host on addr:port.
func Listen(addr string, port uint16, maxPeers int, channels int) (*ENetEndpoint, error) {
	enet.Initialize()
	host, err := enet.NewHost(enet.NewAddress(addr, port), uint64(maxPeers), uint64(channels), 0, 0)
	if err != nil {
		enet.Deinitialize()
		return nil, fmt.Errorf("creating enet host on %s:%d: %w", addr, port, err)
	}
	return &ENetEndpoint{
		host:  host,
		peers: make(map[enet.Peer]*enetPeer),
	}, nil
}

func (e *ENetEndpoint) wrap(p enet.Peer) *enetPeer {
	if w, ok := e.peers[p]; ok {
		return w
	}
	w := &enetPeer{peer: p, tag: NoTag}
	e.peers[p] = w
	return w
}

// Service pumps the host once.
func (e *ENetEndpoint) Service(timeout time.Duration) Event {
	ev := e.host.Service(uint32(timeout.Milliseconds()))
	switch ev.GetType() {
	case enet.EventConnect:
		return Event{Type: EventConnect, Peer: e.wrap(ev.GetPeer())}
	case enet.EventDisconnect:
		w := e.wrap(ev.GetPeer())
		delete(e.peers, ev.GetPeer())
		return Event{Type: EventDisconnect, Peer: w}
	case enet.EventReceive:
		pkt := ev.GetPacket()
		// copy out so the engine can reclaim the packet
		data := append([]byte(nil), pkt.GetData()...)
		pkt.Destroy()
		return Event{
			Type:    EventReceive,
			Peer:    e.wrap(ev.GetPeer()),
			Channel: ev.GetChannelID(),
			Data:    data,
		}
	default:
		return Event{Type: EventNone}
	}
}

// Flush pushes queued packets onto the wire.
func (e *ENetEndpoint) Flush() {
	e.host.Flush()
}

// Close destroys the host and deinitializes ENet.
func (e *ENetEndpoint) Close() {
	e.host.Destroy()
	enet.Deinitialize()
}

// Send enqueues data for transmission.
func (p *enetPeer) Send(channel uint8, data []byte, reliable bool) error {
	flags := enet.PacketFlagReliable
	if !reliable {
		flags = 0
	}
	if err := p.peer.SendBytes(data, channel, flags); err != nil {
		slog.Error("enet send failed", "channel", channel, "err", err)
		return err
	}
	return nil
}

// Disconnect closes the connection gracefully.
func (p *enetPeer) Disconnect(reason uint32) {
	p.peer.Disconnect(reason)
}

// DisconnectNow drops the connection immediately.
func (p *enetPeer) DisconnectNow(reason uint32) {
	p.peer.DisconnectNow(reason)
}

// SetTag attaches a tag to the peer.
func (p *enetPeer) SetTag(tag int) { p.tag = tag }

// Tag returns the attached tag.
func (p *enetPeer) Tag() int { return p.tag }
