// Package gameserver drives the session protocol: keycheck
// authentication, channel-multiplexed packet dispatch, the client
// lifecycle and the fixed-rate tick loop.
package gameserver

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/veldrin/nexusgate/internal/config"
	"github.com/veldrin/nexusgate/internal/gameserver/packet"
	"github.com/veldrin/nexusgate/internal/gameserver/serverpackets"
	"github.com/veldrin/nexusgate/internal/transport"
	"github.com/veldrin/nexusgate/internal/world"
)

// TickPeriod is the fixed simulation quantum.
const TickPeriod = 1.0 / 30.0

// syncSimInterval is how much game time passes between SSyncSimTime
// broadcasts.
const syncSimInterval = 10.0

// idleSleep bounds the loop's spin rate.
const idleSleep = time.Millisecond

// Server owns all session state. Everything runs on the goroutine that
// calls Run; handlers and the transport are never touched concurrently.
type Server struct {
	cfg     config.Server
	ep      transport.Endpoint
	world   *world.World
	clients *ClientTable
	out     *Outbound
	clock   *world.Clock
	state   world.GameState
	gameID  uint64

	handlers      [256]*handlerEntry
	unknownLogged [256]bool

	tickBudget   float64
	nextSyncAt   float64
	shuttingDown bool
}

// New builds a server over an endpoint from the roster configuration.
func New(cfg config.Server, players []config.Player, ep transport.Endpoint) (*Server, error) {
	w := world.New()
	clients, err := NewClientTable(players, w)
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:        cfg,
		ep:         ep,
		world:      w,
		clients:    clients,
		out:        NewOutbound(),
		clock:      world.NewClock(),
		state:      world.StateLoading,
		gameID:     12314,
		nextSyncAt: syncSimInterval,
	}
	s.registerHandlers()
	return s, nil
}

// State returns the current game state.
func (s *Server) State() world.GameState {
	return s.state
}

// Clients returns the roster table.
func (s *Server) Clients() *ClientTable {
	return s.clients
}

// World returns the entity store.
func (s *Server) World() *world.World {
	return s.world
}

// Run drives the loop until the context is canceled or every slot has
// disconnected. Each iteration services the transport, runs due ticks
// and drains the outbound queue.
func (s *Server) Run(ctx context.Context) error {
	slog.Info("game server running",
		"bind", s.cfg.Address, "port", s.cfg.Port, "players", s.clients.Len())
	for !s.shuttingDown && ctx.Err() == nil {
		s.RunOnce()
		time.Sleep(idleSleep)
	}
	// drain whatever the transport still has queued
	for ev := s.ep.Service(0); ev.Type != transport.EventNone; ev = s.ep.Service(0) {
	}
	s.ep.Flush()
	slog.Info("game server stopped")
	return nil
}

// RunOnce executes a single loop iteration without sleeping.
func (s *Server) RunOnce() {
	delta := s.clock.Tick(s.state == world.StatePaused)
	s.tickBudget += delta

	for {
		ev := s.ep.Service(0)
		if ev.Type == transport.EventNone {
			break
		}
		s.handleEvent(ev)
	}

	for s.tickBudget >= TickPeriod {
		s.tickBudget -= TickPeriod
		s.runTickSystems()
	}

	s.flushOutbound()
}

func (s *Server) handleEvent(ev transport.Event) {
	switch ev.Type {
	case transport.EventConnect:
		slog.Debug("peer connected, awaiting keycheck")
	case transport.EventDisconnect:
		s.handleDisconnect(ev.Peer)
	case transport.EventReceive:
		s.handleReceive(ev)
	}
}

func (s *Server) handleReceive(ev transport.Event) {
	channel, ok := packet.ChannelFromByte(ev.Channel)
	if !ok {
		slog.Debug("frame on unknown channel", "channel", ev.Channel)
		return
	}
	if channel == packet.ChannelHandshake {
		s.handleHandshake(ev.Peer, ev.Data)
		return
	}

	tag := ev.Peer.Tag()
	if tag == transport.NoTag {
		slog.Debug("frame from unauthenticated peer", "channel", channel.String())
		return
	}
	client := s.clients.Get(ClientID(tag))
	if client == nil {
		slog.Debug("frame with stale client tag", "tag", tag)
		return
	}

	client.Cipher().DecryptPrefix(ev.Data)

	switch channel {
	case packet.ChannelClientToServer, packet.ChannelSyncClock,
		packet.ChannelBroadcast, packet.ChannelBroadcastUnreliable:
		s.dispatchGame(client, channel, ev.Data)
	case packet.ChannelChat:
		s.dispatchChat(client, ev.Data)
	case packet.ChannelLoadingScreen:
		s.dispatchLoadingScreen(client, ev.Data)
	}
}

// runTickSystems executes per-tick work. The only periodic system is
// the simulation clock fan-out.
func (s *Server) runTickSystems() {
	if s.state == world.StateLoading {
		return
	}
	if s.clock.GameTime() >= s.nextSyncAt {
		s.nextSyncAt += syncSimInterval
		if err := s.out.AllPacket(packet.ChannelBroadcast, 0,
			&serverpackets.SSyncSimTime{SyncTime: float32(s.clock.GameTime())}); err != nil {
			slog.Warn("queueing sim time failed", "err", err)
		}
	}
}

// flushOutbound encrypts and transmits every queued command. Group and
// broadcast fan-outs clone the payload per receiver; the cipher is
// per-client, so buffers are never shared.
func (s *Server) flushOutbound() {
	for _, cmd := range s.out.drain() {
		switch cmd.kind {
		case outSingle:
			s.transmit(s.clients.Get(cmd.target), cmd.channel, cmd.data, false)
		case outGroup:
			for _, cid := range cmd.targets {
				s.transmit(s.clients.Get(cid), cmd.channel, cmd.data, true)
			}
		case outAll:
			for _, c := range s.clients.All() {
				s.transmit(c, cmd.channel, cmd.data, true)
			}
		}
	}
}

func (s *Server) transmit(client *Client, channel packet.Channel, data []byte, clone bool) {
	if client == nil || !client.Connected() {
		return
	}
	if clone {
		data = bytes.Clone(data)
	}
	client.Cipher().EncryptPrefix(data)
	reliable := channel != packet.ChannelBroadcastUnreliable
	if err := client.Peer().Send(uint8(channel), data, reliable); err != nil {
		slog.Error("transmit failed", "client", client.ID, "channel", channel.String(), "err", err)
	}
}
