package gameserver

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldrin/nexusgate/internal/config"
	"github.com/veldrin/nexusgate/internal/crypto"
	"github.com/veldrin/nexusgate/internal/gameserver/clientpackets"
	"github.com/veldrin/nexusgate/internal/gameserver/loadingscreen"
	"github.com/veldrin/nexusgate/internal/gameserver/packet"
	"github.com/veldrin/nexusgate/internal/gameserver/serverpackets"
	"github.com/veldrin/nexusgate/internal/transport"
	"github.com/veldrin/nexusgate/internal/world"
)

const (
	keyA = "AAAAAAAAAAAAAAAA"
	keyB = "BBBBBBBBBBBBBBBB"
)

func testRoster(n int) []config.Player {
	keys := []string{keyA, keyB, "CCCCCCCCCCCCCCCC", "DDDDDDDDDDDDDDDD", "EEEEEEEEEEEEEEEE"}
	teams := []string{"Order", "Order", "Order", "Chaos", "Chaos"}
	var players []config.Player
	for i := 0; i < n; i++ {
		players = append(players, config.Player{
			Name:           fmt.Sprintf("Player%d", i),
			Key:            keys[i],
			PlayerID:       uint64(100 * (i + 1)),
			Team:           teams[i],
			Champion:       "Nasus",
			SkinID:         uint32(i),
			SummonerLevel:  30,
			SummonerSpell0: 101,
			SummonerSpell1: 102,
			ProfileIcon:    int32(i),
		})
	}
	return players
}

func newTestServer(t *testing.T, n int) (*Server, *transport.Loopback) {
	t.Helper()
	lb := transport.NewLoopback()
	srv, err := New(config.DefaultServer(), testRoster(n), lb)
	require.NoError(t, err)
	return srv, lb
}

func cipherFor(t *testing.T, key string) *crypto.PacketCipher {
	t.Helper()
	c, err := crypto.NewPacketCipher([]byte(key))
	require.NoError(t, err)
	return c
}

// connect attaches a peer and authenticates it with a valid keycheck.
func connect(t *testing.T, srv *Server, lb *transport.Loopback, playerID uint64, key string) *transport.LoopbackPeer {
	t.Helper()
	peer := lb.Connect()
	var check [8]byte
	binary.LittleEndian.PutUint64(check[:], playerID)
	cipherFor(t, key).EncryptPrefix(check[:])
	kc := packet.KeyCheck{PlayerID: playerID, CheckID: check}
	peer.Inject(uint8(packet.ChannelHandshake), kc.Marshal())
	srv.RunOnce()
	return peer
}

// inject encrypts and queues a client game frame.
func inject(t *testing.T, peer *transport.LoopbackPeer, key string, channel packet.Channel, senderNetID uint32, m packet.Message) {
	t.Helper()
	data, err := marshalGameFrame(m, senderNetID)
	require.NoError(t, err)
	cipherFor(t, key).EncryptPrefix(data)
	peer.Inject(uint8(channel), data)
}

// decryptedFrames decrypts everything recorded on one channel.
func decryptedFrames(t *testing.T, peer *transport.LoopbackPeer, key string, channel packet.Channel) [][]byte {
	t.Helper()
	cipher := cipherFor(t, key)
	var out [][]byte
	for _, data := range peer.SentOn(uint8(channel)) {
		buf := append([]byte(nil), data...)
		cipher.DecryptPrefix(buf)
		out = append(out, buf)
	}
	return out
}

func frameHeader(t *testing.T, frame []byte) (uint8, uint32) {
	t.Helper()
	require.GreaterOrEqual(t, len(frame), 5)
	return frame[0], binary.LittleEndian.Uint32(frame[1:5])
}

func opcodesOn(t *testing.T, peer *transport.LoopbackPeer, key string, channel packet.Channel) []uint8 {
	t.Helper()
	var ids []uint8
	for _, f := range decryptedFrames(t, peer, key, channel) {
		ids = append(ids, f[0])
	}
	return ids
}

func TestHandshakeTwoPlayers(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peer := connect(t, srv, lb, 100, keyA)

	slot := srv.Clients().Get(0)
	assert.Equal(t, StatusLoading, slot.Status)
	assert.Equal(t, 0, peer.Tag())

	frames := decryptedFrames(t, peer, keyA, packet.ChannelHandshake)
	require.Len(t, frames, 2)

	echo, err := packet.ParseKeyCheck(frames[0])
	require.NoError(t, err)
	assert.Equal(t, uint32(0), echo.ClientID)
	assert.Equal(t, uint64(100), echo.PlayerID)

	other, err := packet.ParseKeyCheck(frames[1])
	require.NoError(t, err)
	assert.Equal(t, uint32(1), other.ClientID)
	assert.Equal(t, uint64(200), other.PlayerID)
	// the second record's check id is player 200's id under key B
	check := other.CheckID
	cipherFor(t, keyB).DecryptPrefix(check[:])
	assert.Equal(t, uint64(200), binary.LittleEndian.Uint64(check[:]))

	// auth is followed by the game number on the broadcast channel
	ids := opcodesOn(t, peer, keyA, packet.ChannelBroadcast)
	assert.Contains(t, ids, serverpackets.OpcodeWorldSendGameNumber)
}

func TestHandshakeBadCheckID(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peer := lb.Connect()
	kc := packet.KeyCheck{PlayerID: 100} // check id all zeros
	peer.Inject(uint8(packet.ChannelHandshake), kc.Marshal())
	srv.RunOnce()

	assert.True(t, peer.Closed)
	assert.Equal(t, transport.NoTag, peer.Tag())
	assert.Equal(t, StatusDisconnected, srv.Clients().Get(0).Status)
	assert.Empty(t, peer.Outgoing)
}

func TestHandshakeUnknownPlayer(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peer := lb.Connect()
	kc := packet.KeyCheck{PlayerID: 999}
	peer.Inject(uint8(packet.ChannelHandshake), kc.Marshal())
	srv.RunOnce()
	assert.True(t, peer.Closed)
}

func TestHandshakeWrongSize(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peer := lb.Connect()
	peer.Inject(uint8(packet.ChannelHandshake), make([]byte, 23))
	srv.RunOnce()
	assert.True(t, peer.Closed)
}

func TestHandshakeReplacesOldPeer(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	old := connect(t, srv, lb, 100, keyA)
	fresh := connect(t, srv, lb, 100, keyA)

	assert.True(t, old.Closed)
	assert.Equal(t, fresh, srv.Clients().Get(0).Peer())
	// the disconnect event for the old peer must not tear down the slot
	srv.RunOnce()
	assert.Equal(t, StatusLoading, srv.Clients().Get(0).Status)
}

func TestReadyGate(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peerA := connect(t, srv, lb, 100, keyA)
	peerB := connect(t, srv, lb, 200, keyB)

	inject(t, peerA, keyA, packet.ChannelClientToServer, 0, &clientpackets.CClientReady{})
	srv.RunOnce()
	assert.Equal(t, world.StateLoading, srv.State())
	assert.NotContains(t, opcodesOn(t, peerA, keyA, packet.ChannelBroadcast), serverpackets.OpcodeStartGame)

	inject(t, peerB, keyB, packet.ChannelClientToServer, 0, &clientpackets.CClientReady{})
	srv.RunOnce()
	assert.Equal(t, world.StateRunning, srv.State())

	for i, pk := range []struct {
		peer *transport.LoopbackPeer
		key  string
	}{{peerA, keyA}, {peerB, keyB}} {
		ids := opcodesOn(t, pk.peer, pk.key, packet.ChannelBroadcast)
		assert.Equal(t, 1, count(ids, serverpackets.OpcodeStartGame), "peer %d", i)
		assert.Equal(t, 1, count(ids, serverpackets.OpcodeSyncMissionStartTime), "peer %d", i)
		assert.Equal(t, 1, count(ids, serverpackets.OpcodeOnEnterVisibilityClient), "peer %d", i)

		slot := srv.Clients().Get(ClientID(i))
		assert.Equal(t, StatusConnected, slot.Status)

		for _, f := range decryptedFrames(t, pk.peer, pk.key, packet.ChannelBroadcast) {
			id, netID := frameHeader(t, f)
			if id == serverpackets.OpcodeOnEnterVisibilityClient {
				assert.Equal(t, slot.HeroNetID.Value(), netID, "peer %d", i)
			}
		}
	}
}

func count(ids []uint8, want uint8) int {
	n := 0
	for _, id := range ids {
		if id == want {
			n++
		}
	}
	return n
}

func TestSpawnSequence(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peerA := connect(t, srv, lb, 100, keyA)
	peerB := connect(t, srv, lb, 200, keyB)

	before := len(peerA.SentOn(uint8(packet.ChannelBroadcast)))
	inject(t, peerA, keyA, packet.ChannelClientToServer, 0, &clientpackets.CCharSelected{})
	srv.RunOnce()

	frames := decryptedFrames(t, peerA, keyA, packet.ChannelBroadcast)[before:]
	var ids []uint8
	for _, f := range frames {
		ids = append(ids, f[0])
	}
	// StartSpawn, then CreateHero+AvatarInfo per roster slot, EndSpawn
	want := []uint8{
		serverpackets.OpcodeStartSpawn,
		serverpackets.OpcodeCreateHero, serverpackets.OpcodeAvatarInfo,
		serverpackets.OpcodeCreateHero, serverpackets.OpcodeAvatarInfo,
		serverpackets.OpcodeEndSpawn,
	}
	assert.Equal(t, want, ids)

	// AvatarInfo frames carry the hero net id in the header
	heroIdx := 0
	for _, f := range frames {
		id, netID := frameHeader(t, f)
		if id == serverpackets.OpcodeAvatarInfo {
			assert.Equal(t, srv.Clients().Get(ClientID(heroIdx)).HeroNetID.Value(), netID)
			heroIdx++
		}
	}

	// spawn goes only to the requester
	assert.Empty(t, opcodesOnContaining(t, peerB, keyB, serverpackets.OpcodeStartSpawn))
}

func opcodesOnContaining(t *testing.T, peer *transport.LoopbackPeer, key string, opcode uint8) []uint8 {
	t.Helper()
	var found []uint8
	for _, id := range opcodesOn(t, peer, key, packet.ChannelBroadcast) {
		if id == opcode {
			found = append(found, id)
		}
	}
	return found
}

func TestSyncVersionAnswer(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peerA := connect(t, srv, lb, 100, keyA)

	inject(t, peerA, keyA, packet.ChannelClientToServer, 0,
		&clientpackets.CSyncVersion{Version: "4.20.0.315"})
	srv.RunOnce()

	var ans *serverpackets.SSyncVersion
	for _, f := range decryptedFrames(t, peerA, keyA, packet.ChannelBroadcast) {
		if f[0] != serverpackets.OpcodeSyncVersion {
			continue
		}
		ans = &serverpackets.SSyncVersion{}
		require.NoError(t, ans.Decode(packet.NewReader(f[5:])))
	}
	require.NotNil(t, ans)
	assert.True(t, ans.IsVersionOK)
	assert.Equal(t, int32(8), ans.Map)
	assert.Equal(t, "ODIN", ans.MapMode)
	assert.Equal(t, "4.20.0.315", ans.Version)
	assert.Equal(t, uint64(100), ans.PlayerInfo[0].PlayerID)
	assert.Equal(t, uint64(200), ans.PlayerInfo[1].PlayerID)
	assert.Equal(t, uint32(world.TeamOrder), ans.PlayerInfo[1].TeamID)
	assert.Equal(t, uint64(0), ans.PlayerInfo[2].PlayerID)
}

func TestQueryStatus(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peerA := connect(t, srv, lb, 100, keyA)
	inject(t, peerA, keyA, packet.ChannelClientToServer, 0, &clientpackets.CQueryStatusReq{})
	srv.RunOnce()
	assert.Contains(t, opcodesOn(t, peerA, keyA, packet.ChannelBroadcast),
		serverpackets.OpcodeQueryStatusAns)
}

func TestPingLoadInfoFanOut(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peerA := connect(t, srv, lb, 100, keyA)
	peerB := connect(t, srv, lb, 200, keyB)

	inject(t, peerB, keyB, packet.ChannelClientToServer, 0, &clientpackets.CPingLoadInfo{
		ConnectionInfo: packet.ConnectionInfo{Percentage: 57.5, Ping: 40},
	})
	srv.RunOnce()

	for _, pk := range []struct {
		peer *transport.LoopbackPeer
		key  string
	}{{peerA, keyA}, {peerB, keyB}} {
		var got *serverpackets.SPingLoadInfo
		for _, f := range decryptedFrames(t, pk.peer, pk.key, packet.ChannelBroadcast) {
			if f[0] != serverpackets.OpcodePingLoadInfo {
				continue
			}
			got = &serverpackets.SPingLoadInfo{}
			require.NoError(t, got.Decode(packet.NewReader(f[5:])))
		}
		require.NotNil(t, got)
		// sender identity patched in
		assert.Equal(t, uint32(1), got.ConnectionInfo.ClientID)
		assert.Equal(t, uint64(200), got.ConnectionInfo.PlayerID)
		assert.Equal(t, float32(57.5), got.ConnectionInfo.Percentage)
	}
}

func TestChatTeamRouting(t *testing.T) {
	srv, lb := newTestServer(t, 5)
	keys := []string{keyA, keyB, "CCCCCCCCCCCCCCCC", "DDDDDDDDDDDDDDDD", "EEEEEEEEEEEEEEEE"}
	peers := make([]*transport.LoopbackPeer, 5)
	for i := 0; i < 5; i++ {
		peers[i] = connect(t, srv, lb, uint64(100*(i+1)), keys[i])
	}

	chat := (&packet.ChatPacket{ClientID: 1, Type: packet.ChatTypeTeam, Message: "hi"}).Marshal()
	enc := append([]byte(nil), chat...)
	cipherFor(t, keys[1]).EncryptPrefix(enc)
	peers[1].Inject(uint8(packet.ChannelChat), enc)
	srv.RunOnce()

	// Order slots 0,1,2 receive the exact bytes; Chaos slots 3,4 nothing
	for i := 0; i < 3; i++ {
		frames := decryptedFrames(t, peers[i], keys[i], packet.ChannelChat)
		require.Len(t, frames, 1, "order peer %d", i)
		assert.Equal(t, chat, frames[0])
	}
	for i := 3; i < 5; i++ {
		assert.Empty(t, peers[i].SentOn(uint8(packet.ChannelChat)), "chaos peer %d", i)
	}
}

func TestChatAllRouting(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peerA := connect(t, srv, lb, 100, keyA)
	peerB := connect(t, srv, lb, 200, keyB)

	chat := (&packet.ChatPacket{ClientID: 0, Type: packet.ChatTypeAll, Message: "gl hf"}).Marshal()
	enc := append([]byte(nil), chat...)
	cipherFor(t, keyA).EncryptPrefix(enc)
	peerA.Inject(uint8(packet.ChannelChat), enc)
	srv.RunOnce()

	for _, pk := range []struct {
		peer *transport.LoopbackPeer
		key  string
	}{{peerA, keyA}, {peerB, keyB}} {
		frames := decryptedFrames(t, pk.peer, pk.key, packet.ChannelChat)
		require.Len(t, frames, 1)
		assert.Equal(t, chat, frames[0])
	}
}

func TestRosterBroadcast(t *testing.T) {
	srv, lb := newTestServer(t, 5)
	keys := []string{keyA, keyB, "CCCCCCCCCCCCCCCC", "DDDDDDDDDDDDDDDD", "EEEEEEEEEEEEEEEE"}
	for i := 1; i < 5; i++ {
		connect(t, srv, lb, uint64(100*(i+1)), keys[i])
	}
	peerA := connect(t, srv, lb, 100, keyA)

	join, err := loadingscreen.Marshal(&loadingscreen.RequestJoinTeam{})
	require.NoError(t, err)
	enc := append([]byte(nil), join...)
	cipherFor(t, keyA).EncryptPrefix(enc)
	peerA.Inject(uint8(packet.ChannelLoadingScreen), enc)
	srv.RunOnce()

	frames := decryptedFrames(t, peerA, keyA, packet.ChannelLoadingScreen)
	// roster + (reskin, rename) per slot
	require.Len(t, frames, 1+2*5)
	assert.Equal(t, loadingscreen.OpcodeTeamRosterUpdate, frames[0][0])

	var roster loadingscreen.TeamRosterUpdate
	require.NoError(t, roster.Decode(packet.NewReader(frames[0][1:])))
	assert.Equal(t, uint32(6), roster.TeamSizeOrder)
	assert.Equal(t, uint32(3), roster.CurrentTeamSizeOrder)
	assert.Equal(t, uint32(2), roster.CurrentTeamSizeChaos)
	assert.Equal(t, uint64(100), roster.OrderPlayerIDs[0])
	assert.Equal(t, uint64(400), roster.ChaosPlayerIDs[0])

	assert.Equal(t, loadingscreen.OpcodeRequestReskin, frames[1][0])
	assert.Equal(t, loadingscreen.OpcodeRequestRename, frames[2][0])
}

func TestMoveOrderBroadcast(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peerA := connect(t, srv, lb, 100, keyA)
	peerB := connect(t, srv, lb, 200, keyB)

	inject(t, peerA, keyA, packet.ChannelClientToServer, 0, &clientpackets.CClientReady{})
	inject(t, peerB, keyB, packet.ChannelClientToServer, 0, &clientpackets.CClientReady{})
	srv.RunOnce()
	require.Equal(t, world.StateRunning, srv.State())

	heroNetID := srv.Clients().Get(0).HeroNetID.Value()
	order := &clientpackets.CNpcIssueOrderReq{
		OrderType: clientpackets.OrderMove,
		Movement: packet.MovementDataNormal{
			TeleportNetID: heroNetID,
			Waypoints:     []packet.Waypoint{{10, 20}, {11, 21}},
		},
	}
	inject(t, peerA, keyA, packet.ChannelClientToServer, heroNetID, order)
	srv.RunOnce()

	for _, pk := range []struct {
		peer *transport.LoopbackPeer
		key  string
	}{{peerA, keyA}, {peerB, keyB}} {
		var group *serverpackets.SWaypointGroup
		for _, f := range decryptedFrames(t, pk.peer, pk.key, packet.ChannelBroadcast) {
			id, netID := frameHeader(t, f)
			if id != serverpackets.OpcodeWaypointGroup {
				continue
			}
			assert.Equal(t, heroNetID, netID)
			group = &serverpackets.SWaypointGroup{}
			require.NoError(t, group.Decode(packet.NewReader(f[5:])))
		}
		require.NotNil(t, group)
		require.Len(t, group.Movements, 1)
		assert.Equal(t, order.Movement.Waypoints, group.Movements[0].Waypoints)
	}
}

func TestNonMoveOrderIgnored(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peerA := connect(t, srv, lb, 100, keyA)
	peerB := connect(t, srv, lb, 200, keyB)
	inject(t, peerA, keyA, packet.ChannelClientToServer, 0, &clientpackets.CClientReady{})
	inject(t, peerB, keyB, packet.ChannelClientToServer, 0, &clientpackets.CClientReady{})
	srv.RunOnce()

	inject(t, peerA, keyA, packet.ChannelClientToServer, 0,
		&clientpackets.CNpcIssueOrderReq{OrderType: clientpackets.OrderStop})
	srv.RunOnce()
	assert.NotContains(t, opcodesOn(t, peerB, keyB, packet.ChannelBroadcast),
		serverpackets.OpcodeWaypointGroup)
}

func TestExitDisconnectsSender(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peerA := connect(t, srv, lb, 100, keyA)
	inject(t, peerA, keyA, packet.ChannelClientToServer, 0, &clientpackets.CExit{})
	srv.RunOnce()
	assert.True(t, peerA.Closed)
	srv.RunOnce() // the queued disconnect was already drained; status holds
	assert.Equal(t, StatusDisconnected, srv.Clients().Get(0).Status)
}

func TestAllDisconnectedShutsDown(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peerA := connect(t, srv, lb, 100, keyA)
	require.False(t, srv.shuttingDown)
	peerA.Drop()
	srv.RunOnce()
	assert.True(t, srv.shuttingDown)
}

func TestUnknownPacketDropped(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peerA := connect(t, srv, lb, 100, keyA)
	frame := []byte{0xEB, 0, 0, 0, 0, 1, 2, 3}
	enc := append([]byte(nil), frame...)
	cipherFor(t, keyA).EncryptPrefix(enc)
	peerA.Inject(uint8(packet.ChannelClientToServer), enc)
	srv.RunOnce()
	// connection survives
	assert.False(t, peerA.Closed)
	assert.Equal(t, StatusLoading, srv.Clients().Get(0).Status)
}

func TestMalformedPayloadKeepsConnection(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peerA := connect(t, srv, lb, 100, keyA)
	// CSyncVersion with a truncated body
	frame := []byte{clientpackets.OpcodeSyncVersion, 0, 0, 0, 0, 1, 2}
	enc := append([]byte(nil), frame...)
	cipherFor(t, keyA).EncryptPrefix(enc)
	peerA.Inject(uint8(packet.ChannelClientToServer), enc)
	srv.RunOnce()
	assert.False(t, peerA.Closed)
}

func TestUnauthenticatedGameFrameDropped(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peer := lb.Connect()
	peer.Inject(uint8(packet.ChannelClientToServer), []byte{0x17, 0, 0, 0, 0})
	srv.RunOnce()
	assert.Empty(t, peer.Outgoing)
	assert.False(t, peer.Closed)
}

func TestStateGateBlocksOrdersWhileLoading(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peerA := connect(t, srv, lb, 100, keyA)
	inject(t, peerA, keyA, packet.ChannelClientToServer, 0,
		&clientpackets.CNpcIssueOrderReq{OrderType: clientpackets.OrderMove})
	srv.RunOnce()
	assert.NotContains(t, opcodesOn(t, peerA, keyA, packet.ChannelBroadcast),
		serverpackets.OpcodeWaypointGroup)
}

func TestOutboundEncryptionPerClient(t *testing.T) {
	srv, lb := newTestServer(t, 2)
	peerA := connect(t, srv, lb, 100, keyA)
	peerB := connect(t, srv, lb, 200, keyB)

	inject(t, peerA, keyA, packet.ChannelClientToServer, 0, &clientpackets.CClientReady{})
	inject(t, peerB, keyB, packet.ChannelClientToServer, 0, &clientpackets.CClientReady{})
	srv.RunOnce()

	// same logical broadcast (SSyncMissionStartTime, queued just before
	// the per-client visibility packet), different ciphertext per client
	rawA := peerA.SentOn(uint8(packet.ChannelBroadcast))
	rawB := peerB.SentOn(uint8(packet.ChannelBroadcast))
	require.NotEmpty(t, rawA)
	require.NotEmpty(t, rawB)
	assert.NotEqual(t, rawA[len(rawA)-2], rawB[len(rawB)-2])
}
