package packet

import "fmt"

// KeyCheckSize is the fixed wire size of a KeyCheck record.
const KeyCheckSize = 24

// KeyCheck is the handshake record exchanged on channel 0. The client
// proves possession of its key by sending its player id encrypted as
// CheckID; the server echoes the record back with ClientID filled in.
type KeyCheck struct {
	Action   uint8
	Pad      [3]uint8
	ClientID uint32
	PlayerID uint64
	CheckID  [8]uint8
}

// ParseKeyCheck decodes a KeyCheck from exactly 24 bytes.
func ParseKeyCheck(data []byte) (KeyCheck, error) {
	var kc KeyCheck
	if len(data) != KeyCheckSize {
		return kc, fmt.Errorf("keycheck: got %d bytes, want %d", len(data), KeyCheckSize)
	}
	r := NewReader(data)
	kc.Action, _ = r.ReadUint8()
	for i := range kc.Pad {
		kc.Pad[i], _ = r.ReadUint8()
	}
	kc.ClientID, _ = r.ReadUint32()
	kc.PlayerID, _ = r.ReadUint64()
	copy(kc.CheckID[:], r.data[r.pos:])
	return kc, nil
}

// Marshal encodes the record into its 24-byte wire form.
func (kc *KeyCheck) Marshal() []byte {
	w := NewWriter(KeyCheckSize)
	w.WriteUint8(kc.Action)
	for _, b := range kc.Pad {
		w.WriteUint8(b)
	}
	w.WriteUint32(kc.ClientID)
	w.WriteUint64(kc.PlayerID)
	w.WriteBytes(kc.CheckID[:])
	return w.Bytes()
}
