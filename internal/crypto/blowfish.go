package crypto

import (
	"fmt"

	"golang.org/x/crypto/blowfish"
)

// BlockSize is the Blowfish block size in bytes.
const BlockSize = 8

// KeyLength is how many bytes of the per-client secret feed the cipher.
const KeyLength = 16

// PacketCipher wraps Blowfish in ECB mode for the session protocol.
// Only the whole-block prefix of a packet is transformed; any trailing
// 0..7 bytes travel in the clear.
type PacketCipher struct {
	cipher *blowfish.Cipher
}

// NewPacketCipher creates a cipher from the first 16 bytes of key.
func NewPacketCipher(key []byte) (*PacketCipher, error) {
	if len(key) < KeyLength {
		return nil, fmt.Errorf("packet cipher: key is %d bytes, need %d", len(key), KeyLength)
	}
	c, err := blowfish.NewCipher(key[:KeyLength])
	if err != nil {
		return nil, fmt.Errorf("creating blowfish cipher: %w", err)
	}
	return &PacketCipher{cipher: c}, nil
}

// EncryptPrefix encrypts the whole-block prefix of data in place.
// Trailing bytes beyond len(data) - len(data)%8 are left untouched.
func (p *PacketCipher) EncryptPrefix(data []byte) {
	n := len(data) - len(data)%BlockSize
	for i := 0; i < n; i += BlockSize {
		p.cipher.Encrypt(data[i:i+BlockSize], data[i:i+BlockSize])
	}
}

// DecryptPrefix decrypts the whole-block prefix of data in place.
func (p *PacketCipher) DecryptPrefix(data []byte) {
	n := len(data) - len(data)%BlockSize
	for i := 0; i < n; i += BlockSize {
		p.cipher.Decrypt(data[i:i+BlockSize], data[i:i+BlockSize])
	}
}
