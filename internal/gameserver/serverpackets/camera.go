package serverpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// SMoveCameraToPoint pans the camera.
type SMoveCameraToPoint struct {
	StartFromCurrentPosition bool
	StartPosition            packet.Vector3
	TargetPosition           packet.Vector3
	TravelTime               float32
}

// Opcode returns the packet id.
func (*SMoveCameraToPoint) Opcode() uint8 { return OpcodeMoveCameraToPoint }

// Encode writes the payload.
func (p *SMoveCameraToPoint) Encode(w *packet.Writer) error {
	w.WriteBool(p.StartFromCurrentPosition)
	if err := p.StartPosition.Encode(w); err != nil {
		return err
	}
	if err := p.TargetPosition.Encode(w); err != nil {
		return err
	}
	w.WriteFloat32(p.TravelTime)
	return nil
}

// Decode reads the payload.
func (p *SMoveCameraToPoint) Decode(r *packet.Reader) error {
	var err error
	if p.StartFromCurrentPosition, err = r.ReadBool(); err != nil {
		return err
	}
	if err = p.StartPosition.Decode(r); err != nil {
		return err
	}
	if err = p.TargetPosition.Decode(r); err != nil {
		return err
	}
	p.TravelTime, err = r.ReadFloat32()
	return err
}

// SCameraBehavior points the camera behavior at a position.
type SCameraBehavior struct {
	Position packet.Vector3
}

// Opcode returns the packet id.
func (*SCameraBehavior) Opcode() uint8 { return OpcodeCameraBehavior }

// Encode writes the payload.
func (p *SCameraBehavior) Encode(w *packet.Writer) error {
	return p.Position.Encode(w)
}

// Decode reads the payload.
func (p *SCameraBehavior) Decode(r *packet.Reader) error {
	return p.Position.Decode(r)
}

// SLockCamera locks or frees the camera.
type SLockCamera struct {
	Lock bool
}

// Opcode returns the packet id.
func (*SLockCamera) Opcode() uint8 { return OpcodeLockCamera }

// Encode writes the payload.
func (p *SLockCamera) Encode(w *packet.Writer) error {
	w.WriteBool(p.Lock)
	return nil
}

// Decode reads the payload.
func (p *SLockCamera) Decode(r *packet.Reader) error {
	var err error
	p.Lock, err = r.ReadBool()
	return err
}

// SSetCircularMovementRestriction pens units inside a circle.
type SSetCircularMovementRestriction struct {
	Center         packet.Vector3
	Radius         float32
	RestrictCamera bool
}

// Opcode returns the packet id.
func (*SSetCircularMovementRestriction) Opcode() uint8 {
	return OpcodeSetCircularMovementRestriction
}

// Encode writes the payload.
func (p *SSetCircularMovementRestriction) Encode(w *packet.Writer) error {
	if err := p.Center.Encode(w); err != nil {
		return err
	}
	w.WriteFloat32(p.Radius)
	w.WriteBool(p.RestrictCamera)
	return nil
}

// Decode reads the payload.
func (p *SSetCircularMovementRestriction) Decode(r *packet.Reader) error {
	if err := p.Center.Decode(r); err != nil {
		return err
	}
	var err error
	if p.Radius, err = r.ReadFloat32(); err != nil {
		return err
	}
	p.RestrictCamera, err = r.ReadBool()
	return err
}

// SSetInputLockingFlag sets one input lock flag.
type SSetInputLockingFlag struct {
	InputLockingFlags uint32
	Value             bool
}

// Opcode returns the packet id.
func (*SSetInputLockingFlag) Opcode() uint8 { return OpcodeSetInputLockingFlag }

// Encode writes the payload.
func (p *SSetInputLockingFlag) Encode(w *packet.Writer) error {
	w.WriteUint32(p.InputLockingFlags)
	w.WriteBool(p.Value)
	return nil
}

// Decode reads the payload.
func (p *SSetInputLockingFlag) Decode(r *packet.Reader) error {
	var err error
	if p.InputLockingFlags, err = r.ReadUint32(); err != nil {
		return err
	}
	p.Value, err = r.ReadBool()
	return err
}

// SToggleInputLockingFlag toggles input lock flags.
type SToggleInputLockingFlag struct {
	InputLockingFlags uint32
}

// Opcode returns the packet id.
func (*SToggleInputLockingFlag) Opcode() uint8 { return OpcodeToggleInputLockingFlag }

// Encode writes the payload.
func (p *SToggleInputLockingFlag) Encode(w *packet.Writer) error {
	w.WriteUint32(p.InputLockingFlags)
	return nil
}

// Decode reads the payload.
func (p *SToggleInputLockingFlag) Decode(r *packet.Reader) error {
	var err error
	p.InputLockingFlags, err = r.ReadUint32()
	return err
}

// SSetGreyscaleEnabledWhenDead toggles the death greyscale.
type SSetGreyscaleEnabledWhenDead struct {
	Enabled bool
}

// Opcode returns the packet id.
func (*SSetGreyscaleEnabledWhenDead) Opcode() uint8 { return OpcodeSetGreyscaleEnabledWhenDead }

// Encode writes the payload.
func (p *SSetGreyscaleEnabledWhenDead) Encode(w *packet.Writer) error {
	w.WriteBool(p.Enabled)
	return nil
}

// Decode reads the payload.
func (p *SSetGreyscaleEnabledWhenDead) Decode(r *packet.Reader) error {
	var err error
	p.Enabled, err = r.ReadBool()
	return err
}

// SSetFoWStatus toggles fog of war.
type SSetFoWStatus struct {
	Enabled bool
}

// Opcode returns the packet id.
func (*SSetFoWStatus) Opcode() uint8 { return OpcodeSetFoWStatus }

// Encode writes the payload.
func (p *SSetFoWStatus) Encode(w *packet.Writer) error {
	w.WriteBool(p.Enabled)
	return nil
}

// Decode reads the payload.
func (p *SSetFoWStatus) Decode(r *packet.Reader) error {
	var err error
	p.Enabled, err = r.ReadBool()
	return err
}

// SToggleFoW flips fog of war globally.
type SToggleFoW struct{}

// Opcode returns the packet id.
func (*SToggleFoW) Opcode() uint8 { return OpcodeToggleFoW }

// Encode writes the payload.
func (*SToggleFoW) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*SToggleFoW) Decode(*packet.Reader) error { return nil }

// SServerGameSettings pushes fog-of-war culling settings.
type SServerGameSettings struct {
	FowLocalCulling        bool
	FowBroadcastEverything bool
}

// Opcode returns the packet id.
func (*SServerGameSettings) Opcode() uint8 { return OpcodeServerGameSettings }

// Encode writes the payload.
func (p *SServerGameSettings) Encode(w *packet.Writer) error {
	w.WriteBool(p.FowLocalCulling)
	w.WriteBool(p.FowBroadcastEverything)
	return nil
}

// Decode reads the payload.
func (p *SServerGameSettings) Decode(r *packet.Reader) error {
	var err error
	if p.FowLocalCulling, err = r.ReadBool(); err != nil {
		return err
	}
	p.FowBroadcastEverything, err = r.ReadBool()
	return err
}
