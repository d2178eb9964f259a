package serverpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// SQueryStatusAns answers a status query.
type SQueryStatusAns struct {
	IsOK bool
}

// Opcode returns the packet id.
func (*SQueryStatusAns) Opcode() uint8 { return OpcodeQueryStatusAns }

// Encode writes the payload.
func (p *SQueryStatusAns) Encode(w *packet.Writer) error {
	w.WriteBool(p.IsOK)
	return nil
}

// Decode reads the payload.
func (p *SQueryStatusAns) Decode(r *packet.Reader) error {
	var err error
	p.IsOK, err = r.ReadBool()
	return err
}

// SReconnect acknowledges a reconnect attempt.
type SReconnect struct {
	ClientID uint32
}

// Opcode returns the packet id.
func (*SReconnect) Opcode() uint8 { return OpcodeReconnect }

// Encode writes the payload.
func (p *SReconnect) Encode(w *packet.Writer) error {
	w.WriteUint32(p.ClientID)
	return nil
}

// Decode reads the payload.
func (p *SReconnect) Decode(r *packet.Reader) error {
	var err error
	p.ClientID, err = r.ReadUint32()
	return err
}

// SReconnectDone completes a reconnect.
type SReconnectDone struct{}

// Opcode returns the packet id.
func (*SReconnectDone) Opcode() uint8 { return OpcodeReconnectDone }

// Encode writes the payload.
func (*SReconnectDone) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*SReconnectDone) Decode(*packet.Reader) error { return nil }

// SConnected confirms a client's session slot.
type SConnected struct {
	ClientID uint32
}

// Opcode returns the packet id.
func (*SConnected) Opcode() uint8 { return OpcodeConnected }

// Encode writes the payload.
func (p *SConnected) Encode(w *packet.Writer) error {
	w.WriteUint32(p.ClientID)
	return nil
}

// Decode reads the payload.
func (p *SConnected) Decode(r *packet.Reader) error {
	var err error
	p.ClientID, err = r.ReadUint32()
	return err
}

// SExit tells a client it is being dropped.
type SExit struct {
	ClientID uint32
}

// Opcode returns the packet id.
func (*SExit) Opcode() uint8 { return OpcodeExit }

// Encode writes the payload.
func (p *SExit) Encode(w *packet.Writer) error {
	w.WriteUint32(p.ClientID)
	return nil
}

// Decode reads the payload.
func (p *SExit) Decode(r *packet.Reader) error {
	var err error
	p.ClientID, err = r.ReadUint32()
	return err
}

// SOnDisconnected notifies peers about a disconnect.
type SOnDisconnected struct{}

// Opcode returns the packet id.
func (*SOnDisconnected) Opcode() uint8 { return OpcodeOnDisconnected }

// Encode writes the payload.
func (*SOnDisconnected) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*SOnDisconnected) Decode(*packet.Reader) error { return nil }

// SWorldSendGameNumber hands the client its game id after auth.
type SWorldSendGameNumber struct {
	GameID uint64
}

// Opcode returns the packet id.
func (*SWorldSendGameNumber) Opcode() uint8 { return OpcodeWorldSendGameNumber }

// Encode writes the payload.
func (p *SWorldSendGameNumber) Encode(w *packet.Writer) error {
	w.WriteUint64(p.GameID)
	return nil
}

// Decode reads the payload.
func (p *SWorldSendGameNumber) Decode(r *packet.Reader) error {
	var err error
	p.GameID, err = r.ReadUint64()
	return err
}
