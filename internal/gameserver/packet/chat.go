package packet

import "fmt"

// Chat message scopes.
const (
	ChatTypeAll  uint32 = 0
	ChatTypeTeam uint32 = 1
)

// ChatPacket is the channel-5 frame. It has no opcode; the whole
// payload is the record.
type ChatPacket struct {
	ClientID uint32
	Type     uint32
	Message  string // sized + null
}

// ParseChatPacket decodes a chat frame.
func ParseChatPacket(data []byte) (*ChatPacket, error) {
	r := NewReader(data)
	var p ChatPacket
	var err error
	if p.ClientID, err = r.ReadUint32(); err != nil {
		return nil, fmt.Errorf("reading clientID: %w", err)
	}
	if p.Type, err = r.ReadUint32(); err != nil {
		return nil, fmt.Errorf("reading type: %w", err)
	}
	if p.Message, err = r.ReadSizedStringNull(); err != nil {
		return nil, fmt.Errorf("reading message: %w", err)
	}
	return &p, nil
}

// Marshal encodes the chat frame.
func (p *ChatPacket) Marshal() []byte {
	w := NewWriter(13 + len(p.Message))
	w.WriteUint32(p.ClientID)
	w.WriteUint32(p.Type)
	w.WriteSizedStringNull(p.Message)
	return w.Bytes()
}
