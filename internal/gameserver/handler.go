package gameserver

import (
	"fmt"
	"log/slog"

	"github.com/veldrin/nexusgate/internal/gameserver/clientpackets"
	"github.com/veldrin/nexusgate/internal/gameserver/packet"
	"github.com/veldrin/nexusgate/internal/world"
)

// stateMask selects the game states a handler accepts.
type stateMask uint8

const (
	maskLoading stateMask = 1 << world.StateLoading
	maskRunning stateMask = 1 << world.StateRunning
	maskAny               = maskLoading | maskRunning
)

func (m stateMask) allows(s world.GameState) bool {
	return m&(1<<s) != 0
}

// Context is what a handler sees: the sender, the world and the
// outbound sink. Handlers never touch the transport directly.
type Context struct {
	ClientID    ClientID
	SenderNetID uint32
	Client      *Client
	Clients     *ClientTable
	World       *world.World
	Out         *Outbound
}

type handlerFunc func(ctx *Context, m packet.Message) error

type handlerEntry struct {
	newMessage func() packet.Message
	states     stateMask
	handle     handlerFunc
}

func (s *Server) register(newMessage func() packet.Message, states stateMask, handle handlerFunc) {
	id := newMessage().Opcode()
	if s.handlers[id] != nil {
		panic(fmt.Sprintf("game handler already registered for 0x%02X", id))
	}
	s.handlers[id] = &handlerEntry{newMessage: newMessage, states: states, handle: handle}
}

func (s *Server) registerHandlers() {
	s.register(func() packet.Message { return &clientpackets.CQueryStatusReq{} },
		maskAny, s.handleQueryStatus)
	s.register(func() packet.Message { return &clientpackets.CReconnect{} },
		maskAny, s.handleReconnect)
	s.register(func() packet.Message { return &clientpackets.CSyncVersion{} },
		maskAny, s.handleSyncVersion)
	s.register(func() packet.Message { return &clientpackets.CCharSelected{} },
		maskLoading, s.handleCharSelected)
	s.register(func() packet.Message { return &clientpackets.CClientReady{} },
		maskLoading, s.handleClientReady)
	s.register(func() packet.Message { return &clientpackets.CPingLoadInfo{} },
		maskAny, s.handlePingLoadInfo)
	s.register(func() packet.Message { return &clientpackets.CExit{} },
		maskAny, s.handleExit)
	s.register(func() packet.Message { return &clientpackets.CNpcIssueOrderReq{} },
		maskRunning, s.handleNpcIssueOrder)
	s.register(func() packet.Message { return &clientpackets.CSyncSimTime{} },
		maskAny, s.handleNoop)
	s.register(func() packet.Message { return &clientpackets.CWorldSendCameraServer{} },
		maskAny, s.handleNoopSilent)
	s.register(func() packet.Message { return &clientpackets.CSendSelectedObjID{} },
		maskAny, s.handleNoop)
	s.register(func() packet.Message { return &clientpackets.CWorldLockCameraServer{} },
		maskAny, s.handleNoop)
}

// dispatchGame routes one decrypted game frame to its handler.
func (s *Server) dispatchGame(client *Client, channel packet.Channel, data []byte) {
	r := packet.NewReader(data)
	id, err := r.ReadUint8()
	if err != nil {
		slog.Debug("truncated game frame", "client", client.ID, "channel", channel)
		return
	}
	senderNetID, err := r.ReadUint32()
	if err != nil {
		slog.Debug("truncated game frame header", "client", client.ID, "packet", fmt.Sprintf("0x%02X", id))
		return
	}

	entry := s.handlers[id]
	if entry == nil {
		if !s.unknownLogged[id] {
			s.unknownLogged[id] = true
			slog.Debug("unhandled packet", "packet", fmt.Sprintf("0x%02X", id), "channel", channel.String())
		}
		return
	}
	if !entry.states.allows(s.state) {
		slog.Debug("packet rejected by game state",
			"packet", fmt.Sprintf("0x%02X", id), "state", s.state.String())
		return
	}

	m := entry.newMessage()
	if err := m.Decode(r); err != nil {
		slog.Debug("packet decode failed",
			"packet", fmt.Sprintf("0x%02X", id), "client", client.ID, "err", err)
		return
	}

	ctx := &Context{
		ClientID:    client.ID,
		SenderNetID: senderNetID,
		Client:      client,
		Clients:     s.clients,
		World:       s.world,
		Out:         s.out,
	}
	if err := entry.handle(ctx, m); err != nil {
		slog.Warn("handler failed",
			"packet", fmt.Sprintf("0x%02X", id), "client", client.ID, "err", err)
	}
}
