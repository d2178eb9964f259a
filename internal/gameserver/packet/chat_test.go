package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatPacketRoundTrip(t *testing.T) {
	p := &ChatPacket{ClientID: 3, Type: ChatTypeTeam, Message: "gank mid"}
	got, err := ParseChatPacket(p.Marshal())
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestChatPacketLayout(t *testing.T) {
	data := (&ChatPacket{ClientID: 1, Type: ChatTypeAll, Message: "hi"}).Marshal()
	// client_id + type + len prefix + bytes + null
	assert.Len(t, data, 4+4+4+2+1)
	assert.Equal(t, byte(2), data[8])
	assert.Equal(t, byte(0), data[len(data)-1])
}

func TestChatPacketTruncated(t *testing.T) {
	_, err := ParseChatPacket([]byte{1, 2, 3})
	assert.Error(t, err)
}
