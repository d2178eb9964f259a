package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacketCipherRoundTrip(t *testing.T) {
	c, err := NewPacketCipher([]byte("AAAAAAAAAAAAAAAA"))
	require.NoError(t, err)

	for _, size := range []int{0, 1, 7, 8, 9, 15, 16, 24, 100} {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i * 7)
		}
		orig := bytes.Clone(data)

		c.EncryptPrefix(data)
		c.DecryptPrefix(data)
		assert.Equal(t, orig, data, "size %d", size)
	}
}

func TestPacketCipherTrailingBytesUntouched(t *testing.T) {
	c, err := NewPacketCipher([]byte("0123456789ABCDEF"))
	require.NoError(t, err)

	data := make([]byte, 13)
	for i := range data {
		data[i] = byte(i + 1)
	}
	orig := bytes.Clone(data)

	c.EncryptPrefix(data)
	assert.NotEqual(t, orig[:8], data[:8])
	assert.Equal(t, orig[8:], data[8:])

	c.DecryptPrefix(data)
	assert.Equal(t, orig, data)
}

func TestPacketCipherShortBufferNoop(t *testing.T) {
	c, err := NewPacketCipher([]byte("0123456789ABCDEF"))
	require.NoError(t, err)

	data := []byte{1, 2, 3, 4, 5}
	orig := bytes.Clone(data)
	c.EncryptPrefix(data)
	assert.Equal(t, orig, data)
}

func TestPacketCipherUsesFirst16KeyBytes(t *testing.T) {
	long, err := NewPacketCipher([]byte("0123456789ABCDEF-this-tail-is-ignored"))
	require.NoError(t, err)
	short, err := NewPacketCipher([]byte("0123456789ABCDEF"))
	require.NoError(t, err)

	a := []byte("eightby!")
	b := bytes.Clone(a)
	long.EncryptPrefix(a)
	short.EncryptPrefix(b)
	assert.Equal(t, b, a)
}

func TestPacketCipherKeyTooShort(t *testing.T) {
	_, err := NewPacketCipher([]byte("short"))
	assert.Error(t, err)
}
