package loadingscreen

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldrin/nexusgate/internal/gameserver/packet"
)

func TestLoadingScreenRoundTrips(t *testing.T) {
	roster := &TeamRosterUpdate{
		TeamSizeOrder:        6,
		TeamSizeChaos:        6,
		CurrentTeamSizeOrder: 2,
		CurrentTeamSizeChaos: 1,
	}
	roster.OrderPlayerIDs[0] = 100
	roster.OrderPlayerIDs[1] = 101
	roster.ChaosPlayerIDs[0] = 200

	messages := []packet.Message{
		&RequestJoinTeam{ClientID: 1, TeamID: 100},
		&RequestReskin{PlayerID: 100, SkinID: 2, Name: "Nasus"},
		&RequestRename{PlayerID: 100, SkinID: 2, Name: "PlayerOne"},
		roster,
	}
	for _, m := range messages {
		w := packet.NewWriter(512)
		require.NoError(t, m.Encode(w), "%T", m)

		fresh := reflect.New(reflect.TypeOf(m).Elem()).Interface().(packet.Message)
		r := packet.NewReader(w.Bytes())
		require.NoError(t, fresh.Decode(r), "%T", m)
		assert.Equal(t, m, fresh, "%T", m)
		assert.Equal(t, 0, r.Remaining(), "%T", m)
	}
}

func TestMarshalPrefixesOpcode(t *testing.T) {
	data, err := Marshal(&RequestJoinTeam{ClientID: 2, TeamID: 200})
	require.NoError(t, err)
	assert.Equal(t, OpcodeRequestJoinTeam, data[0])
	assert.Len(t, data, 1+3+4+4)
}
