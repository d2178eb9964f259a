package serverpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// SOnEnterVisibilityClient reveals a unit to a client, carrying its
// inventory snapshot and current movement.
type SOnEnterVisibilityClient struct {
	Items    []packet.ItemData // u8-prefixed
	Movement packet.MovementData
}

// Opcode returns the packet id.
func (*SOnEnterVisibilityClient) Opcode() uint8 { return OpcodeOnEnterVisibilityClient }

// Encode writes the payload.
func (p *SOnEnterVisibilityClient) Encode(w *packet.Writer) error {
	if err := w.WriteVecLenU8(len(p.Items)); err != nil {
		return err
	}
	for i := range p.Items {
		if err := p.Items[i].Encode(w); err != nil {
			return err
		}
	}
	return packet.WriteMovementData(w, p.Movement)
}

// Decode reads the payload.
func (p *SOnEnterVisibilityClient) Decode(r *packet.Reader) error {
	count, err := r.ReadUint8()
	if err != nil {
		return err
	}
	p.Items = make([]packet.ItemData, count)
	for i := range p.Items {
		if err = p.Items[i].Decode(r); err != nil {
			return err
		}
	}
	p.Movement, err = packet.ReadMovementData(r)
	return err
}

// SOnLeaveVisibilityClient hides a unit from a client.
type SOnLeaveVisibilityClient struct{}

// Opcode returns the packet id.
func (*SOnLeaveVisibilityClient) Opcode() uint8 { return OpcodeOnLeaveVisibilityClient }

// Encode writes the payload.
func (*SOnLeaveVisibilityClient) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*SOnLeaveVisibilityClient) Decode(*packet.Reader) error { return nil }

// SOnEnterLocalVisibilityClient reveals health for a locally visible
// unit.
type SOnEnterLocalVisibilityClient struct {
	MaxHealth float32
	Health    float32
}

// Opcode returns the packet id.
func (*SOnEnterLocalVisibilityClient) Opcode() uint8 { return OpcodeOnEnterLocalVisibilityClient }

// Encode writes the payload.
func (p *SOnEnterLocalVisibilityClient) Encode(w *packet.Writer) error {
	w.WriteFloat32(p.MaxHealth)
	w.WriteFloat32(p.Health)
	return nil
}

// Decode reads the payload.
func (p *SOnEnterLocalVisibilityClient) Decode(r *packet.Reader) error {
	var err error
	if p.MaxHealth, err = r.ReadFloat32(); err != nil {
		return err
	}
	p.Health, err = r.ReadFloat32()
	return err
}

// SOnLeaveLocalVisibilityClient hides a locally visible unit.
type SOnLeaveLocalVisibilityClient struct{}

// Opcode returns the packet id.
func (*SOnLeaveLocalVisibilityClient) Opcode() uint8 { return OpcodeOnLeaveLocalVisibilityClient }

// Encode writes the payload.
func (*SOnLeaveLocalVisibilityClient) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*SOnLeaveLocalVisibilityClient) Decode(*packet.Reader) error { return nil }
