package clientpackets

import (
	"fmt"

	"github.com/veldrin/nexusgate/internal/gameserver/packet"
)

// CSyncVersion is the client's version handshake after connecting.
type CSyncVersion struct {
	TimeLastClient float32
	ClientID       uint32
	Version        string // fixed 128
}

// Opcode returns the packet id.
func (*CSyncVersion) Opcode() uint8 { return OpcodeSyncVersion }

// Encode writes the payload.
func (p *CSyncVersion) Encode(w *packet.Writer) error {
	w.WriteFloat32(p.TimeLastClient)
	w.WriteUint32(p.ClientID)
	w.WriteFixedString(p.Version, 128)
	return nil
}

// Decode reads the payload.
func (p *CSyncVersion) Decode(r *packet.Reader) error {
	var err error
	if p.TimeLastClient, err = r.ReadFloat32(); err != nil {
		return fmt.Errorf("reading timeLastClient: %w", err)
	}
	if p.ClientID, err = r.ReadUint32(); err != nil {
		return fmt.Errorf("reading clientID: %w", err)
	}
	if p.Version, err = r.ReadFixedString(128); err != nil {
		return fmt.Errorf("reading version: %w", err)
	}
	return nil
}

// CSyncSimTime echoes the client's view of simulation time.
type CSyncSimTime struct {
	TimeLastServer float32
	TimeLastClient float32
}

// Opcode returns the packet id.
func (*CSyncSimTime) Opcode() uint8 { return OpcodeSyncSimTime }

// Encode writes the payload.
func (p *CSyncSimTime) Encode(w *packet.Writer) error {
	w.WriteFloat32(p.TimeLastServer)
	w.WriteFloat32(p.TimeLastClient)
	return nil
}

// Decode reads the payload.
func (p *CSyncSimTime) Decode(r *packet.Reader) error {
	var err error
	if p.TimeLastServer, err = r.ReadFloat32(); err != nil {
		return err
	}
	p.TimeLastClient, err = r.ReadFloat32()
	return err
}

// CPingLoadInfo reports the sender's loading progress for fan-out.
type CPingLoadInfo struct {
	ConnectionInfo packet.ConnectionInfo
}

// Opcode returns the packet id.
func (*CPingLoadInfo) Opcode() uint8 { return OpcodePingLoadInfo }

// Encode writes the payload.
func (p *CPingLoadInfo) Encode(w *packet.Writer) error {
	return p.ConnectionInfo.Encode(w)
}

// Decode reads the payload.
func (p *CPingLoadInfo) Decode(r *packet.Reader) error {
	return p.ConnectionInfo.Decode(r)
}

// CClientReady marks the sender done loading.
type CClientReady struct{}

// Opcode returns the packet id.
func (*CClientReady) Opcode() uint8 { return OpcodeClientReady }

// Encode writes the payload.
func (*CClientReady) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*CClientReady) Decode(*packet.Reader) error { return nil }

// CCharSelected asks for the spawn sequence.
type CCharSelected struct{}

// Opcode returns the packet id.
func (*CCharSelected) Opcode() uint8 { return OpcodeCharSelected }

// Encode writes the payload.
func (*CCharSelected) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*CCharSelected) Decode(*packet.Reader) error { return nil }

// CClientFinished signals end-of-game cleanup on the client.
type CClientFinished struct{}

// Opcode returns the packet id.
func (*CClientFinished) Opcode() uint8 { return OpcodeClientFinished }

// Encode writes the payload.
func (*CClientFinished) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*CClientFinished) Decode(*packet.Reader) error { return nil }

// CClientConnectNamedPipe is a legacy local-pipe notification.
type CClientConnectNamedPipe struct{}

// Opcode returns the packet id.
func (*CClientConnectNamedPipe) Opcode() uint8 { return OpcodeClientConnectNamedPipe }

// Encode writes the payload.
func (*CClientConnectNamedPipe) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*CClientConnectNamedPipe) Decode(*packet.Reader) error { return nil }

// CQueryStatusReq asks whether the server is healthy.
type CQueryStatusReq struct{}

// Opcode returns the packet id.
func (*CQueryStatusReq) Opcode() uint8 { return OpcodeQueryStatusReq }

// Encode writes the payload.
func (*CQueryStatusReq) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*CQueryStatusReq) Decode(*packet.Reader) error { return nil }

// CReconnect asks to resume a dropped session.
type CReconnect struct {
	IsFullReconnect bool
}

// Opcode returns the packet id.
func (*CReconnect) Opcode() uint8 { return OpcodeReconnect }

// Encode writes the payload.
func (p *CReconnect) Encode(w *packet.Writer) error {
	w.WriteBool(p.IsFullReconnect)
	return nil
}

// Decode reads the payload.
func (p *CReconnect) Decode(r *packet.Reader) error {
	var err error
	p.IsFullReconnect, err = r.ReadBool()
	return err
}

// CExit announces the client is quitting.
type CExit struct{}

// Opcode returns the packet id.
func (*CExit) Opcode() uint8 { return OpcodeExit }

// Encode writes the payload.
func (*CExit) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*CExit) Decode(*packet.Reader) error { return nil }
