package clientpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// CTutorialAudioEventFinished reports a finished tutorial audio cue.
type CTutorialAudioEventFinished struct {
	AudioEventNetID uint32
}

// Opcode returns the packet id.
func (*CTutorialAudioEventFinished) Opcode() uint8 { return OpcodeTutorialAudioEventFinished }

// Encode writes the payload.
func (p *CTutorialAudioEventFinished) Encode(w *packet.Writer) error {
	w.WriteUint32(p.AudioEventNetID)
	return nil
}

// Decode reads the payload.
func (p *CTutorialAudioEventFinished) Decode(r *packet.Reader) error {
	var err error
	p.AudioEventNetID, err = r.ReadUint32()
	return err
}

// CTipEvent reports a tip interaction.
type CTipEvent struct {
	TipCommand uint8
	TipID      uint32
}

// Opcode returns the packet id.
func (*CTipEvent) Opcode() uint8 { return OpcodeTipEvent }

// Encode writes the payload.
func (p *CTipEvent) Encode(w *packet.Writer) error {
	w.WriteUint8(p.TipCommand)
	w.WriteUint32(p.TipID)
	return nil
}

// Decode reads the payload.
func (p *CTipEvent) Decode(r *packet.Reader) error {
	var err error
	if p.TipCommand, err = r.ReadUint8(); err != nil {
		return err
	}
	p.TipID, err = r.ReadUint32()
	return err
}

// CTutorialPopupClosed reports a closed tutorial popup.
type CTutorialPopupClosed struct{}

// Opcode returns the packet id.
func (*CTutorialPopupClosed) Opcode() uint8 { return OpcodeTutorialPopupClosed }

// Encode writes the payload.
func (*CTutorialPopupClosed) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*CTutorialPopupClosed) Decode(*packet.Reader) error { return nil }

// CQuestEvent reports a quest UI event.
type CQuestEvent struct {
	QuestEvent uint8
	QuestID    uint32
}

// Opcode returns the packet id.
func (*CQuestEvent) Opcode() uint8 { return OpcodeQuestEvent }

// Encode writes the payload.
func (p *CQuestEvent) Encode(w *packet.Writer) error {
	w.WriteUint8(p.QuestEvent)
	w.WriteUint32(p.QuestID)
	return nil
}

// Decode reads the payload.
func (p *CQuestEvent) Decode(r *packet.Reader) error {
	var err error
	if p.QuestEvent, err = r.ReadUint8(); err != nil {
		return err
	}
	p.QuestID, err = r.ReadUint32()
	return err
}

// CRespawnPointEvent reports a respawn point selection.
type CRespawnPointEvent struct {
	RespawnPointEvent       uint8
	RespawnPointUIElementID uint8
}

// Opcode returns the packet id.
func (*CRespawnPointEvent) Opcode() uint8 { return OpcodeRespawnPointEvent }

// Encode writes the payload.
func (p *CRespawnPointEvent) Encode(w *packet.Writer) error {
	w.WriteUint8(p.RespawnPointEvent)
	w.WriteUint8(p.RespawnPointUIElementID)
	return nil
}

// Decode reads the payload.
func (p *CRespawnPointEvent) Decode(r *packet.Reader) error {
	var err error
	if p.RespawnPointEvent, err = r.ReadUint8(); err != nil {
		return err
	}
	p.RespawnPointUIElementID, err = r.ReadUint8()
	return err
}
