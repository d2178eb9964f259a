package gameserver

import (
	"encoding/binary"
	"log/slog"

	"github.com/veldrin/nexusgate/internal/gameserver/loadingscreen"
	"github.com/veldrin/nexusgate/internal/gameserver/packet"
	"github.com/veldrin/nexusgate/internal/gameserver/serverpackets"
	"github.com/veldrin/nexusgate/internal/transport"
	"github.com/veldrin/nexusgate/internal/world"
)

// handleHandshake processes a channel-0 frame from a peer. Before
// authentication the frame must be a 24-byte KeyCheck whose check id
// decrypts to the claimed player id under that player's key.
func (s *Server) handleHandshake(peer transport.Peer, data []byte) {
	if peer.Tag() != transport.NoTag {
		slog.Debug("handshake frame from authenticated peer", "client", peer.Tag())
		return
	}
	kc, err := packet.ParseKeyCheck(data)
	if err != nil {
		slog.Info("malformed keycheck, dropping peer", "err", err)
		peer.DisconnectNow(0)
		return
	}

	client := s.clients.ByPlayerID(kc.PlayerID)
	if client == nil {
		slog.Info("keycheck for unknown player", "player_id", kc.PlayerID)
		peer.DisconnectNow(0)
		return
	}

	check := kc.CheckID
	client.Cipher().DecryptPrefix(check[:])
	var want [8]byte
	binary.LittleEndian.PutUint64(want[:], kc.PlayerID)
	if check != want {
		slog.Info("keycheck mismatch", "player_id", kc.PlayerID)
		peer.DisconnectNow(0)
		return
	}

	if client.Connected() {
		slog.Info("player reconnecting, dropping old peer", "client", client.ID)
		client.disconnect(0)
	}
	client.attach(peer)
	slog.Info("client authenticated", "client", client.ID, "player_id", client.PlayerID)

	kc.ClientID = uint32(client.ID)
	s.sendKeyCheck(client, kc)
	s.broadcastKeyCheck(client)

	if err := s.out.SinglePacket(client.ID, packet.ChannelBroadcast, 0,
		&serverpackets.SWorldSendGameNumber{GameID: s.gameID}); err != nil {
		slog.Warn("queueing game number failed", "client", client.ID, "err", err)
	}
}

// sendKeyCheck delivers a KeyCheck record to a client, encrypted like
// every outbound frame.
func (s *Server) sendKeyCheck(client *Client, kc packet.KeyCheck) {
	data := kc.Marshal()
	client.Cipher().EncryptPrefix(data)
	if err := client.Peer().Send(uint8(packet.ChannelHandshake), data, true); err != nil {
		slog.Warn("keycheck send failed", "client", client.ID, "err", err)
	}
}

// broadcastKeyCheck introduces every other roster slot to the newly
// connected client. Each record's check id is that slot's player id
// encrypted with that slot's own key.
func (s *Server) broadcastKeyCheck(to *Client) {
	for _, other := range s.clients.All() {
		if other.ID == to.ID {
			continue
		}
		var check [8]byte
		binary.LittleEndian.PutUint64(check[:], other.PlayerID)
		other.Cipher().EncryptPrefix(check[:])
		s.sendKeyCheck(to, packet.KeyCheck{
			ClientID: uint32(other.ID),
			PlayerID: other.PlayerID,
			CheckID:  check,
		})
	}
}

// handleDisconnect tears down the slot bound to a dropped peer.
func (s *Server) handleDisconnect(peer transport.Peer) {
	tag := peer.Tag()
	if tag == transport.NoTag {
		return
	}
	client := s.clients.Get(ClientID(tag))
	if client == nil || client.Peer() != peer {
		return
	}
	slog.Info("client disconnected", "client", client.ID, "player_id", client.PlayerID)
	client.detach()

	if s.clients.AllDisconnected() {
		slog.Info("all players disconnected, shutting down")
		s.shuttingDown = true
	}
}

// advanceIfAllReady moves Loading to Running once every slot is Ready:
// start-of-game broadcasts, slot statuses reset to Connected, and one
// visibility packet per client stamped with its champion's net id.
func (s *Server) advanceIfAllReady() {
	if s.state != world.StateLoading || !s.clients.AllReady() {
		return
	}
	s.state = world.StateRunning
	slog.Info("all clients ready, starting game")

	if err := s.out.AllPacket(packet.ChannelBroadcast, 0,
		&serverpackets.SStartGame{TournamentPauseEnabled: false}); err != nil {
		slog.Warn("queueing start game failed", "err", err)
	}
	if err := s.out.AllPacket(packet.ChannelBroadcast, 0,
		&serverpackets.SSyncMissionStartTime{StartTime: 1.0}); err != nil {
		slog.Warn("queueing mission start failed", "err", err)
	}

	for _, c := range s.clients.All() {
		c.Status = StatusConnected
		enter := &serverpackets.SOnEnterVisibilityClient{
			Movement: &packet.MovementDataStop{},
		}
		if err := s.out.SinglePacket(c.ID, packet.ChannelBroadcast, c.HeroNetID.Value(), enter); err != nil {
			slog.Warn("queueing visibility failed", "client", c.ID, "err", err)
		}
	}
}

// dispatchChat fans a chat frame out by scope, forwarding the sender's
// bytes untouched.
func (s *Server) dispatchChat(client *Client, data []byte) {
	msg, err := packet.ParseChatPacket(data)
	if err != nil {
		slog.Debug("malformed chat frame", "client", client.ID, "err", err)
		return
	}
	switch msg.Type {
	case packet.ChatTypeAll:
		s.out.All(packet.ChannelChat, data)
	case packet.ChatTypeTeam:
		s.out.Group(s.clients.TeamMembers(client.Team), packet.ChannelChat, data)
	default:
		slog.Warn("invalid chat type", "client", client.ID, "type", msg.Type)
	}
}

// dispatchLoadingScreen handles channel-6 frames. Only RequestJoinTeam
// does anything; other ids are accepted silently.
func (s *Server) dispatchLoadingScreen(client *Client, data []byte) {
	if len(data) == 0 || data[0] != loadingscreen.OpcodeRequestJoinTeam {
		return
	}
	s.sendRosterUpdate(client.ID)
}

// sendRosterUpdate sends the team roster plus per-client reskin and
// rename records to one client on the loading screen channel.
func (s *Server) sendRosterUpdate(cid ClientID) {
	roster := &loadingscreen.TeamRosterUpdate{
		TeamSizeOrder: 6,
		TeamSizeChaos: 6,
	}
	var order, chaos int
	for _, c := range s.clients.All() {
		switch c.Team {
		case world.TeamOrder:
			if order < loadingscreen.RosterCapacity {
				roster.OrderPlayerIDs[order] = c.PlayerID
				order++
			}
		case world.TeamChaos:
			if chaos < loadingscreen.RosterCapacity {
				roster.ChaosPlayerIDs[chaos] = c.PlayerID
				chaos++
			}
		}
	}
	roster.CurrentTeamSizeOrder = uint32(order)
	roster.CurrentTeamSizeChaos = uint32(chaos)

	s.queueLoadingScreen(cid, roster)
	for _, c := range s.clients.All() {
		s.queueLoadingScreen(cid, &loadingscreen.RequestReskin{
			PlayerID: c.PlayerID,
			SkinID:   c.SkinID,
			Name:     c.Champion,
		})
		s.queueLoadingScreen(cid, &loadingscreen.RequestRename{
			PlayerID: c.PlayerID,
			SkinID:   c.SkinID,
			Name:     c.Name,
		})
	}
}

func (s *Server) queueLoadingScreen(cid ClientID, m packet.Message) {
	data, err := loadingscreen.Marshal(m)
	if err != nil {
		slog.Warn("encoding loading screen packet failed", "client", cid, "err", err)
		return
	}
	s.out.Single(cid, packet.ChannelLoadingScreen, data)
}
