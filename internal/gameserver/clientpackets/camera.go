package clientpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// CWorldSendCameraServer streams the client camera pose. High-rate;
// the server accepts it silently.
type CWorldSendCameraServer struct {
	CameraPosition  packet.Vector3
	CameraDirection packet.Vector3
	ClientID        uint32
	SyncID          uint8
}

// Opcode returns the packet id.
func (*CWorldSendCameraServer) Opcode() uint8 { return OpcodeWorldSendCameraServer }

// Encode writes the payload.
func (p *CWorldSendCameraServer) Encode(w *packet.Writer) error {
	if err := p.CameraPosition.Encode(w); err != nil {
		return err
	}
	if err := p.CameraDirection.Encode(w); err != nil {
		return err
	}
	w.WriteUint32(p.ClientID)
	w.WriteUint8(p.SyncID)
	return nil
}

// Decode reads the payload.
func (p *CWorldSendCameraServer) Decode(r *packet.Reader) error {
	if err := p.CameraPosition.Decode(r); err != nil {
		return err
	}
	if err := p.CameraDirection.Decode(r); err != nil {
		return err
	}
	var err error
	if p.ClientID, err = r.ReadUint32(); err != nil {
		return err
	}
	p.SyncID, err = r.ReadUint8()
	return err
}

// CWorldLockCameraServer toggles the camera lock.
type CWorldLockCameraServer struct {
	Locked   bool
	ClientID uint32
}

// Opcode returns the packet id.
func (*CWorldLockCameraServer) Opcode() uint8 { return OpcodeWorldLockCameraServer }

// Encode writes the payload.
func (p *CWorldLockCameraServer) Encode(w *packet.Writer) error {
	w.WriteBool(p.Locked)
	w.WriteUint32(p.ClientID)
	return nil
}

// Decode reads the payload.
func (p *CWorldLockCameraServer) Decode(r *packet.Reader) error {
	var err error
	if p.Locked, err = r.ReadBool(); err != nil {
		return err
	}
	p.ClientID, err = r.ReadUint32()
	return err
}

// CSendSelectedObjID reports the unit under selection.
type CSendSelectedObjID struct {
	ClientID      uint32
	SelectedNetID uint32
}

// Opcode returns the packet id.
func (*CSendSelectedObjID) Opcode() uint8 { return OpcodeSendSelectedObjID }

// Encode writes the payload.
func (p *CSendSelectedObjID) Encode(w *packet.Writer) error {
	w.WriteUint32(p.ClientID)
	w.WriteUint32(p.SelectedNetID)
	return nil
}

// Decode reads the payload.
func (p *CSendSelectedObjID) Decode(r *packet.Reader) error {
	var err error
	if p.ClientID, err = r.ReadUint32(); err != nil {
		return err
	}
	p.SelectedNetID, err = r.ReadUint32()
	return err
}

// CScoreBoardOpened notes the scoreboard being opened.
type CScoreBoardOpened struct{}

// Opcode returns the packet id.
func (*CScoreBoardOpened) Opcode() uint8 { return OpcodeScoreBoardOpened }

// Encode writes the payload.
func (*CScoreBoardOpened) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*CScoreBoardOpened) Decode(*packet.Reader) error { return nil }

// CShopOpened notes the shop being opened.
type CShopOpened struct{}

// Opcode returns the packet id.
func (*CShopOpened) Opcode() uint8 { return OpcodeShopOpened }

// Encode writes the payload.
func (*CShopOpened) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*CShopOpened) Decode(*packet.Reader) error { return nil }

// CStatsUpdateReq asks for a stats refresh.
type CStatsUpdateReq struct{}

// Opcode returns the packet id.
func (*CStatsUpdateReq) Opcode() uint8 { return OpcodeStatsUpdateReq }

// Encode writes the payload.
func (*CStatsUpdateReq) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*CStatsUpdateReq) Decode(*packet.Reader) error { return nil }
