package packet

// Vector2 is a 2D float position.
type Vector2 struct {
	X float32
	Y float32
}

// Encode writes the vector.
func (v *Vector2) Encode(w *Writer) error {
	w.WriteFloat32(v.X)
	w.WriteFloat32(v.Y)
	return nil
}

// Decode reads the vector.
func (v *Vector2) Decode(r *Reader) error {
	var err error
	if v.X, err = r.ReadFloat32(); err != nil {
		return err
	}
	v.Y, err = r.ReadFloat32()
	return err
}

// Vector3 is a 3D float position.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Encode writes the vector.
func (v *Vector3) Encode(w *Writer) error {
	w.WriteFloat32(v.X)
	w.WriteFloat32(v.Y)
	w.WriteFloat32(v.Z)
	return nil
}

// Decode reads the vector.
func (v *Vector3) Decode(r *Reader) error {
	var err error
	if v.X, err = r.ReadFloat32(); err != nil {
		return err
	}
	if v.Y, err = r.ReadFloat32(); err != nil {
		return err
	}
	v.Z, err = r.ReadFloat32()
	return err
}

// Color is a BGRA color quad.
type Color struct {
	Blue  uint8
	Green uint8
	Red   uint8
	Alpha uint8
}

// Encode writes the color.
func (c *Color) Encode(w *Writer) error {
	w.WriteUint8(c.Blue)
	w.WriteUint8(c.Green)
	w.WriteUint8(c.Red)
	w.WriteUint8(c.Alpha)
	return nil
}

// Decode reads the color.
func (c *Color) Decode(r *Reader) error {
	var err error
	if c.Blue, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.Green, err = r.ReadUint8(); err != nil {
		return err
	}
	if c.Red, err = r.ReadUint8(); err != nil {
		return err
	}
	c.Alpha, err = r.ReadUint8()
	return err
}
