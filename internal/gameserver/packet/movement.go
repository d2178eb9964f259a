package packet

import (
	"fmt"
	"math"
)

// Waypoint is a point on the movement grid.
type Waypoint struct {
	X int16
	Z int16
}

// Waypoints after the first are delta-coded when the step fits in an
// i8; a flag bitmap ahead of the coordinates records the width of each
// one. Flags are consumed LSB-first per bitmap byte, one bit per
// coordinate, x then z; the bitmap bytes travel in reverse order.
func writeWaypoints(w *Writer, pts []Waypoint) {
	n := len(pts)
	numFlagBytes := 1
	if n > 1 {
		numFlagBytes = (n-2)/4 + 1
	}
	flags := make([]byte, numFlagBytes)
	bit := 0
	set := func(delta bool) {
		if delta {
			flags[bit/8] |= 1 << (bit % 8)
		}
		bit++
	}
	for i := 1; i < n; i++ {
		dx := int(pts[i].X) - int(pts[i-1].X)
		set(dx >= math.MinInt8 && dx <= math.MaxInt8)
		dz := int(pts[i].Z) - int(pts[i-1].Z)
		set(dz >= math.MinInt8 && dz <= math.MaxInt8)
	}
	for i := len(flags) - 1; i >= 0; i-- {
		w.WriteUint8(flags[i])
	}
	w.WriteInt16(pts[0].X)
	w.WriteInt16(pts[0].Z)
	bit = 0
	next := func() bool {
		f := flags[bit/8]&(1<<(bit%8)) != 0
		bit++
		return f
	}
	for i := 1; i < n; i++ {
		if next() {
			w.WriteInt8(int8(pts[i].X - pts[i-1].X))
		} else {
			w.WriteInt16(pts[i].X)
		}
		if next() {
			w.WriteInt8(int8(pts[i].Z - pts[i-1].Z))
		} else {
			w.WriteInt16(pts[i].Z)
		}
	}
}

func readWaypoints(r *Reader, size int) ([]Waypoint, error) {
	if size <= 0 {
		return nil, nil
	}
	numFlagBytes := 1
	if size > 1 {
		numFlagBytes = (size-2)/4 + 1
	}
	raw, err := r.ReadBytes(numFlagBytes)
	if err != nil {
		return nil, fmt.Errorf("waypoint flags: %w", err)
	}
	flags := make([]byte, numFlagBytes)
	for i, b := range raw {
		flags[numFlagBytes-1-i] = b
	}
	bit := 0
	next := func() bool {
		f := flags[bit/8]&(1<<(bit%8)) != 0
		bit++
		return f
	}
	pts := make([]Waypoint, 0, size)
	x, err := r.ReadInt16()
	if err != nil {
		return nil, err
	}
	z, err := r.ReadInt16()
	if err != nil {
		return nil, err
	}
	pts = append(pts, Waypoint{X: x, Z: z})
	for i := 1; i < size; i++ {
		if next() {
			d, err := r.ReadInt8()
			if err != nil {
				return nil, err
			}
			x += int16(d)
		} else {
			if x, err = r.ReadInt16(); err != nil {
				return nil, err
			}
		}
		if next() {
			d, err := r.ReadInt8()
			if err != nil {
				return nil, err
			}
			z += int16(d)
		} else {
			if z, err = r.ReadInt16(); err != nil {
				return nil, err
			}
		}
		pts = append(pts, Waypoint{X: x, Z: z})
	}
	return pts, nil
}

// Movement tag bytes.
const (
	movementTagNone   uint8 = 0
	movementTagSpeed  uint8 = 1
	movementTagNormal uint8 = 2
	movementTagStop   uint8 = 3
)

// MovementData is the tagged movement union carried by visibility and
// waypoint messages.
type MovementData interface {
	movementTag() uint8
	Encode(w *Writer) error
	Decode(r *Reader) error
}

// MovementDataNormal is a waypoint path, optionally teleport-stamped.
type MovementDataNormal struct {
	TeleportNetID uint32
	TeleportID    *uint8
	Waypoints     []Waypoint
}

func (*MovementDataNormal) movementTag() uint8 { return movementTagNormal }

// Encode writes the header words, teleport fields and waypoint list.
func (m *MovementDataNormal) Encode(w *Writer) error {
	var flags uint16
	if m.TeleportID != nil {
		flags |= 1 << 1
	}
	w.WriteUint16(flags)
	w.WriteUint16(uint16(len(m.Waypoints)) & 0x7F)
	if len(m.Waypoints) == 0 {
		return nil
	}
	w.WriteUint32(m.TeleportNetID)
	if m.TeleportID != nil {
		w.WriteUint8(*m.TeleportID)
	}
	writeWaypoints(w, m.Waypoints)
	return nil
}

// Decode reads the header words, teleport fields and waypoint list.
func (m *MovementDataNormal) Decode(r *Reader) error {
	flags, err := r.ReadUint16()
	if err != nil {
		return err
	}
	sizeWord, err := r.ReadUint16()
	if err != nil {
		return err
	}
	size := int(sizeWord & 0x7F)
	m.TeleportNetID = 0
	m.TeleportID = nil
	m.Waypoints = nil
	if size == 0 {
		return nil
	}
	if m.TeleportNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if flags&(1<<1) != 0 {
		id, err := r.ReadUint8()
		if err != nil {
			return err
		}
		m.TeleportID = &id
	}
	m.Waypoints, err = readWaypoints(r, size)
	return err
}

// MovementDataStop halts a unit at a position facing forward.
type MovementDataStop struct {
	Position Vector2
	Forward  Vector2
}

func (*MovementDataStop) movementTag() uint8 { return movementTagStop }

// Encode writes position and forward.
func (m *MovementDataStop) Encode(w *Writer) error {
	if err := m.Position.Encode(w); err != nil {
		return err
	}
	return m.Forward.Encode(w)
}

// Decode reads position and forward.
func (m *MovementDataStop) Decode(r *Reader) error {
	if err := m.Position.Decode(r); err != nil {
		return err
	}
	return m.Forward.Decode(r)
}

// SpeedParams carries path speed overrides for dashes and follows.
type SpeedParams struct {
	PathSpeedOverride   float32
	ParabolicGravity    float32
	ParabolicStartPoint Vector2
	Facing              bool
	FollowNetID         uint32
	FollowDistance      float32
	FollowBackDistance  float32
	FollowTravelTime    float32
}

// Encode writes the params.
func (p *SpeedParams) Encode(w *Writer) error {
	w.WriteFloat32(p.PathSpeedOverride)
	w.WriteFloat32(p.ParabolicGravity)
	if err := p.ParabolicStartPoint.Encode(w); err != nil {
		return err
	}
	w.WriteBool(p.Facing)
	w.WriteUint32(p.FollowNetID)
	w.WriteFloat32(p.FollowDistance)
	w.WriteFloat32(p.FollowBackDistance)
	w.WriteFloat32(p.FollowTravelTime)
	return nil
}

// Decode reads the params.
func (p *SpeedParams) Decode(r *Reader) error {
	var err error
	if p.PathSpeedOverride, err = r.ReadFloat32(); err != nil {
		return err
	}
	if p.ParabolicGravity, err = r.ReadFloat32(); err != nil {
		return err
	}
	if err = p.ParabolicStartPoint.Decode(r); err != nil {
		return err
	}
	if p.Facing, err = r.ReadBool(); err != nil {
		return err
	}
	if p.FollowNetID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.FollowDistance, err = r.ReadFloat32(); err != nil {
		return err
	}
	if p.FollowBackDistance, err = r.ReadFloat32(); err != nil {
		return err
	}
	p.FollowTravelTime, err = r.ReadFloat32()
	return err
}

// MovementDataWithSpeed is a waypoint path with speed overrides.
type MovementDataWithSpeed struct {
	MovementDataNormal
	SpeedParams SpeedParams
}

func (*MovementDataWithSpeed) movementTag() uint8 { return movementTagSpeed }

// Encode writes the path then the speed params.
func (m *MovementDataWithSpeed) Encode(w *Writer) error {
	if err := m.MovementDataNormal.Encode(w); err != nil {
		return err
	}
	return m.SpeedParams.Encode(w)
}

// Decode reads the path then the speed params.
func (m *MovementDataWithSpeed) Decode(r *Reader) error {
	if err := m.MovementDataNormal.Decode(r); err != nil {
		return err
	}
	return m.SpeedParams.Decode(r)
}

// MovementDataNone is the fallback variant for unrecognized tags.
type MovementDataNone struct {
	Value int32
}

func (*MovementDataNone) movementTag() uint8 { return movementTagNone }

// Encode writes the raw value.
func (m *MovementDataNone) Encode(w *Writer) error {
	w.WriteInt32(m.Value)
	return nil
}

// Decode reads the raw value.
func (m *MovementDataNone) Decode(r *Reader) error {
	var err error
	m.Value, err = r.ReadInt32()
	return err
}

// WriteMovementData writes the tag byte then the variant body.
func WriteMovementData(w *Writer, m MovementData) error {
	w.WriteUint8(m.movementTag())
	return m.Encode(w)
}

// ReadMovementData reads the tag byte and decodes the matching variant.
func ReadMovementData(r *Reader) (MovementData, error) {
	tag, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	var m MovementData
	switch tag {
	case movementTagSpeed:
		m = &MovementDataWithSpeed{}
	case movementTagNormal:
		m = &MovementDataNormal{}
	case movementTagStop:
		m = &MovementDataStop{}
	default:
		m = &MovementDataNone{}
	}
	if err := m.Decode(r); err != nil {
		return nil, err
	}
	return m, nil
}
