// Package transport abstracts the datagram engine under the game
// server: per-connection ordered channels with reliable or unreliable
// delivery, pumped by a single-threaded service call.
package transport

import "time"

// EventType discriminates service pump results.
type EventType int

// Service pump events.
const (
	EventNone EventType = iota
	EventConnect
	EventDisconnect
	EventReceive
)

// Event is one result of servicing the endpoint. Data is only set for
// EventReceive and is owned by the caller until the next Service call.
type Event struct {
	Type    EventType
	Peer    Peer
	Channel uint8
	Data    []byte
}

// NoTag is the tag value of a peer that has not been tagged yet.
const NoTag = -1

// Peer is one live connection. The session layer stores a client id in
// the peer tag after authentication; the tag comes back with every
// event for that peer.
type Peer interface {
	// Send enqueues data on a channel. The engine owns data afterwards.
	Send(channel uint8, data []byte, reliable bool) error
	// Disconnect closes the connection gracefully.
	Disconnect(reason uint32)
	// DisconnectNow drops the connection immediately.
	DisconnectNow(reason uint32)
	// SetTag attaches a pointer-sized tag to the peer.
	SetTag(tag int)
	// Tag returns the attached tag, or NoTag.
	Tag() int
}

// Endpoint is the server side of the engine.
type Endpoint interface {
	// Service waits up to timeout for one event. It returns an Event of
	// type EventNone when nothing happened; internal engine errors are
	// logged and surface the same way.
	Service(timeout time.Duration) Event
	// Flush pushes queued outgoing packets onto the wire.
	Flush()
	// Close tears the endpoint down.
	Close()
}
