package serverpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// PlayerInfoCount is the fixed roster size of the version answer.
const PlayerInfoCount = 12

// SSyncVersion answers the client version handshake with the roster.
type SSyncVersion struct {
	IsVersionOK bool
	Map         int32
	PlayerInfo  [PlayerInfoCount]packet.PlayerLoadInfo
	Version     string // fixed 256
	MapMode     string // fixed 128
}

// Opcode returns the packet id.
func (*SSyncVersion) Opcode() uint8 { return OpcodeSyncVersion }

// Encode writes the payload.
func (p *SSyncVersion) Encode(w *packet.Writer) error {
	w.WriteBool(p.IsVersionOK)
	w.WriteInt32(p.Map)
	for i := range p.PlayerInfo {
		if err := p.PlayerInfo[i].Encode(w); err != nil {
			return err
		}
	}
	w.WriteFixedString(p.Version, 256)
	w.WriteFixedString(p.MapMode, 128)
	return nil
}

// Decode reads the payload.
func (p *SSyncVersion) Decode(r *packet.Reader) error {
	var err error
	if p.IsVersionOK, err = r.ReadBool(); err != nil {
		return err
	}
	if p.Map, err = r.ReadInt32(); err != nil {
		return err
	}
	for i := range p.PlayerInfo {
		if err = p.PlayerInfo[i].Decode(r); err != nil {
			return err
		}
	}
	if p.Version, err = r.ReadFixedString(256); err != nil {
		return err
	}
	p.MapMode, err = r.ReadFixedString(128)
	return err
}

// SSyncSimTime broadcasts the simulation clock.
type SSyncSimTime struct {
	SyncTime float32
}

// Opcode returns the packet id.
func (*SSyncSimTime) Opcode() uint8 { return OpcodeSyncSimTime }

// Encode writes the payload.
func (p *SSyncSimTime) Encode(w *packet.Writer) error {
	w.WriteFloat32(p.SyncTime)
	return nil
}

// Decode reads the payload.
func (p *SSyncSimTime) Decode(r *packet.Reader) error {
	var err error
	p.SyncTime, err = r.ReadFloat32()
	return err
}

// SSyncSimTimeFinal closes a clock convergence exchange.
type SSyncSimTimeFinal struct {
	TimeLastClient      float32
	TimeRttLastOverhead float32
	TimeConvergence     float32
}

// Opcode returns the packet id.
func (*SSyncSimTimeFinal) Opcode() uint8 { return OpcodeSyncSimTimeFinal }

// Encode writes the payload.
func (p *SSyncSimTimeFinal) Encode(w *packet.Writer) error {
	w.WriteFloat32(p.TimeLastClient)
	w.WriteFloat32(p.TimeRttLastOverhead)
	w.WriteFloat32(p.TimeConvergence)
	return nil
}

// Decode reads the payload.
func (p *SSyncSimTimeFinal) Decode(r *packet.Reader) error {
	var err error
	if p.TimeLastClient, err = r.ReadFloat32(); err != nil {
		return err
	}
	if p.TimeRttLastOverhead, err = r.ReadFloat32(); err != nil {
		return err
	}
	p.TimeConvergence, err = r.ReadFloat32()
	return err
}

// SSyncMissionStartTime stamps the mission start.
type SSyncMissionStartTime struct {
	StartTime float32
}

// Opcode returns the packet id.
func (*SSyncMissionStartTime) Opcode() uint8 { return OpcodeSyncMissionStartTime }

// Encode writes the payload.
func (p *SSyncMissionStartTime) Encode(w *packet.Writer) error {
	w.WriteFloat32(p.StartTime)
	return nil
}

// Decode reads the payload.
func (p *SSyncMissionStartTime) Decode(r *packet.Reader) error {
	var err error
	p.StartTime, err = r.ReadFloat32()
	return err
}

// SServerTick publishes the server tick delta.
type SServerTick struct {
	Delta float32
}

// Opcode returns the packet id.
func (*SServerTick) Opcode() uint8 { return OpcodeServerTick }

// Encode writes the payload.
func (p *SServerTick) Encode(w *packet.Writer) error {
	w.WriteFloat32(p.Delta)
	return nil
}

// Decode reads the payload.
func (p *SServerTick) Decode(r *packet.Reader) error {
	var err error
	p.Delta, err = r.ReadFloat32()
	return err
}

// SPingLoadInfo relays a client's loading progress to the lobby.
type SPingLoadInfo struct {
	ConnectionInfo packet.ConnectionInfo
}

// Opcode returns the packet id.
func (*SPingLoadInfo) Opcode() uint8 { return OpcodePingLoadInfo }

// Encode writes the payload.
func (p *SPingLoadInfo) Encode(w *packet.Writer) error {
	return p.ConnectionInfo.Encode(w)
}

// Decode reads the payload.
func (p *SPingLoadInfo) Decode(r *packet.Reader) error {
	return p.ConnectionInfo.Decode(r)
}

// SWorldSendCameraServerAck acknowledges a camera pose sample.
type SWorldSendCameraServerAck struct {
	SyncID uint8
}

// Opcode returns the packet id.
func (*SWorldSendCameraServerAck) Opcode() uint8 { return OpcodeWorldSendCameraServerAck }

// Encode writes the payload.
func (p *SWorldSendCameraServerAck) Encode(w *packet.Writer) error {
	w.WriteUint8(p.SyncID)
	return nil
}

// Decode reads the payload.
func (p *SWorldSendCameraServerAck) Decode(r *packet.Reader) error {
	var err error
	p.SyncID, err = r.ReadUint8()
	return err
}

// SWorldLockCameraServer toggles a client's camera lock.
type SWorldLockCameraServer struct {
	Locked   bool
	ClientID uint32
}

// Opcode returns the packet id.
func (*SWorldLockCameraServer) Opcode() uint8 { return OpcodeWorldLockCameraServer }

// Encode writes the payload.
func (p *SWorldLockCameraServer) Encode(w *packet.Writer) error {
	w.WriteBool(p.Locked)
	w.WriteUint32(p.ClientID)
	return nil
}

// Decode reads the payload.
func (p *SWorldLockCameraServer) Decode(r *packet.Reader) error {
	var err error
	if p.Locked, err = r.ReadBool(); err != nil {
		return err
	}
	p.ClientID, err = r.ReadUint32()
	return err
}
