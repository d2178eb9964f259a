package clientpackets

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldrin/nexusgate/internal/gameserver/packet"
)

func roundTrip(t *testing.T, m packet.Message) {
	t.Helper()
	w := packet.NewWriter(256)
	require.NoError(t, m.Encode(w), "%T", m)

	fresh := reflect.New(reflect.TypeOf(m).Elem()).Interface().(packet.Message)
	r := packet.NewReader(w.Bytes())
	require.NoError(t, fresh.Decode(r), "%T", m)
	assert.Equal(t, m, fresh, "%T", m)
	assert.Equal(t, 0, r.Remaining(), "%T left %d bytes unread", m, r.Remaining())
}

func TestClientPacketRoundTrips(t *testing.T) {
	messages := []packet.Message{
		&CTutorialAudioEventFinished{AudioEventNetID: 1},
		&CSyncSimTime{TimeLastServer: 1, TimeLastClient: 2},
		&RemoveItemReq{Slot: 3, Sell: true},
		&CQueryStatusReq{},
		&CPingLoadInfo{ConnectionInfo: packet.ConnectionInfo{ClientID: 1, PlayerID: 100, Percentage: 57.5, Ping: 40}},
		&CWriteNavFlagsAcc{SyncID: -1},
		&CSwapItemReq{Source: 1, Destination: 2},
		&CWorldSendCameraServer{ClientID: 1, SyncID: 2},
		&CNpcUpgradeSpellReq{Slot: 1},
		&CUseObject{TargetNetID: 7},
		&CPlayEmote{EmoteID: 3},
		&CScoreBoardOpened{},
		&CClientReady{},
		&CStatsUpdateReq{},
		&CMapPing{Position: packet.Vector3{X: 1, Y: 2, Z: 3}, TargetNetID: 4, Category: 5},
		&CShopOpened{},
		&CTipEvent{TipCommand: 1, TipID: 2},
		&CNpcIssueOrderReq{OrderType: OrderMove, Position: packet.Vector3{X: 10, Y: 0, Z: 20},
			Movement: packet.MovementDataNormal{
				TeleportNetID: 0x40000001,
				Waypoints:     []packet.Waypoint{{10, 20}, {11, 21}},
			}},
		&CWorldLockCameraServer{Locked: true, ClientID: 1},
		&CBuyItemReq{ItemID: 1001},
		&CClientFinished{},
		&CExit{},
		&CClientConnectNamedPipe{},
		&CTeamSurrenderVote{VotedYes: true},
		&CReconnect{IsFullReconnect: true},
		&CSendSelectedObjID{ClientID: 1, SelectedNetID: 2},
		&CSyncVersion{TimeLastClient: 1.5, ClientID: 2, Version: "4.20.0.315"},
		&CCharSelected{},
		&CTutorialPopupClosed{},
		&CQuestEvent{QuestEvent: 1, QuestID: 2},
		&CRespawnPointEvent{RespawnPointEvent: 1, RespawnPointUIElementID: 2},
	}

	seen := make(map[uint8]string)
	for _, m := range messages {
		roundTrip(t, m)
		name := reflect.TypeOf(m).Elem().Name()
		if prev, dup := seen[m.Opcode()]; dup {
			t.Fatalf("opcode 0x%02X used by both %s and %s", m.Opcode(), prev, name)
		}
		seen[m.Opcode()] = name
	}
}

func TestRemoveItemReqBitLayout(t *testing.T) {
	w := packet.NewWriter(1)
	require.NoError(t, (&RemoveItemReq{Slot: 0x7F, Sell: true}).Encode(w))
	assert.Equal(t, byte(0xFF), w.Bytes()[0])
}

func TestNpcIssueOrderReqWithoutMovementTail(t *testing.T) {
	// some orders arrive without the movement block
	w := packet.NewWriter(32)
	w.WriteUint8(OrderStop)
	v := packet.Vector3{X: 1, Y: 2, Z: 3}
	require.NoError(t, v.Encode(w))
	w.WriteUint32(9)

	var p CNpcIssueOrderReq
	require.NoError(t, p.Decode(packet.NewReader(w.Bytes())))
	assert.Equal(t, OrderStop, p.OrderType)
	assert.Empty(t, p.Movement.Waypoints)
}
