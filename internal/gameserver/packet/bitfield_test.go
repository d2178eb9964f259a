package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeByte(t *testing.T, m interface{ Encode(*Writer) error }) byte {
	t.Helper()
	w := NewWriter(2)
	require.NoError(t, m.Encode(w))
	require.Equal(t, 1, w.Len())
	return w.Bytes()[0]
}

func TestMapPingFlagsEncoding(t *testing.T) {
	f := MapPingFlags{Category: 5, PlayAudio: true, ShowChat: false, Throttled: true}
	assert.Equal(t, byte(0x55), encodeByte(t, &f))

	var got MapPingFlags
	require.NoError(t, got.Decode(NewReader([]byte{0x55})))
	assert.Equal(t, f, got)
}

func TestTeamSurrenderVoteFlagsAllCombos(t *testing.T) {
	for b := byte(0); b < 4; b++ {
		f := TeamSurrenderVoteFlags{VoteYes: b&1 != 0, OpenVoteMenu: b&2 != 0}
		assert.Equal(t, b, encodeByte(t, &f))
		var got TeamSurrenderVoteFlags
		require.NoError(t, got.Decode(NewReader([]byte{b})))
		assert.Equal(t, f, got)
	}
}

func TestSpawnMinionFlagsRoundTrip(t *testing.T) {
	for b := byte(0); b < 8; b++ {
		var f SpawnMinionFlags
		require.NoError(t, f.Decode(NewReader([]byte{b})))
		assert.Equal(t, b, encodeByte(t, &f))
	}
}

func TestCastInfoFlagsRoundTrip(t *testing.T) {
	for b := byte(0); b < 16; b++ {
		var f CastInfoFlags
		require.NoError(t, f.Decode(NewReader([]byte{b})))
		assert.Equal(t, b, encodeByte(t, &f))
	}
}

func TestSpellSlotRoundTrip(t *testing.T) {
	f := SpellSlot{Slot: 0x2A, IsSummonerSpell: true}
	assert.Equal(t, byte(0xAA), encodeByte(t, &f))

	var got SpellSlot
	require.NoError(t, got.Decode(NewReader([]byte{0xAA})))
	assert.Equal(t, f, got)
}

func TestShieldPropertiesRoundTrip(t *testing.T) {
	for b := byte(0); b < 8; b++ {
		var f ShieldProperties
		require.NoError(t, f.Decode(NewReader([]byte{b})))
		assert.Equal(t, b, encodeByte(t, &f))
	}
}

func TestCharSpawnPetFlagsRoundTrip(t *testing.T) {
	for b := byte(0); b < 4; b++ {
		var f CharSpawnPetFlags
		require.NoError(t, f.Decode(NewReader([]byte{b})))
		assert.Equal(t, b, encodeByte(t, &f))
	}
}
