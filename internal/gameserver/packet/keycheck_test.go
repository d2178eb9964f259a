package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCheckRoundTrip(t *testing.T) {
	kc := KeyCheck{
		Action:   0,
		ClientID: 3,
		PlayerID: 0x1122334455667788,
		CheckID:  [8]byte{1, 2, 3, 4, 5, 6, 7, 8},
	}
	data := kc.Marshal()
	require.Len(t, data, KeyCheckSize)

	got, err := ParseKeyCheck(data)
	require.NoError(t, err)
	assert.Equal(t, kc, got)
}

func TestKeyCheckLayout(t *testing.T) {
	kc := KeyCheck{ClientID: 0x01020304, PlayerID: 0x0A0B0C0D}
	data := kc.Marshal()
	// client_id at offset 4, player_id at offset 8, both LE
	assert.Equal(t, []byte{4, 3, 2, 1}, data[4:8])
	assert.Equal(t, byte(0x0D), data[8])
}

func TestKeyCheckWrongSize(t *testing.T) {
	_, err := ParseKeyCheck(make([]byte, 23))
	assert.Error(t, err)
	_, err = ParseKeyCheck(make([]byte, 25))
	assert.Error(t, err)
}
