package packet

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Writer builds packet payloads. All multi-byte values are Little-Endian.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates a writer with the given initial capacity.
func NewWriter(capacity int) *Writer {
	w := &Writer{}
	w.buf.Grow(capacity)
	return w
}

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(b uint8) {
	w.buf.WriteByte(b)
}

// WriteInt8 writes a signed byte.
func (w *Writer) WriteInt8(v int8) {
	w.buf.WriteByte(byte(v))
}

// WriteBool writes a bool as 0 or 1.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// WriteUint16 writes a uint16 (2 bytes, LE).
func (w *Writer) WriteUint16(v uint16) {
	w.buf.WriteByte(byte(v))
	w.buf.WriteByte(byte(v >> 8))
}

// WriteInt16 writes an int16 (2 bytes, LE).
func (w *Writer) WriteInt16(v int16) {
	w.WriteUint16(uint16(v))
}

// WriteUint32 writes a uint32 (4 bytes, LE).
func (w *Writer) WriteUint32(v uint32) {
	w.buf.WriteByte(byte(v))
	w.buf.WriteByte(byte(v >> 8))
	w.buf.WriteByte(byte(v >> 16))
	w.buf.WriteByte(byte(v >> 24))
}

// WriteInt32 writes an int32 (4 bytes, LE).
func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

// WriteUint64 writes a uint64 (8 bytes, LE).
func (w *Writer) WriteUint64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	w.buf.Write(tmp[:])
}

// WriteInt64 writes an int64 (8 bytes, LE).
func (w *Writer) WriteInt64(v int64) {
	w.WriteUint64(uint64(v))
}

// WriteFloat32 writes a float32 (4 bytes, LE, IEEE 754).
func (w *Writer) WriteFloat32(v float32) {
	w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes a float64 (8 bytes, LE, IEEE 754).
func (w *Writer) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}

// WriteF8 writes a float packed into one byte as v*100+128.
func (w *Writer) WriteF8(v float32) {
	w.buf.WriteByte(uint8(int32(v*100.0) + 128))
}

// WriteString writes a null-terminated UTF-8 string.
func (w *Writer) WriteString(s string) {
	w.buf.WriteString(s)
	w.buf.WriteByte(0)
}

// WriteFixedString writes s into a fixed buffer of size bytes,
// null-terminated and zero-padded. Content longer than size-1 is
// truncated to leave room for the terminator.
func (w *Writer) WriteFixedString(s string, size int) {
	if len(s) > size-1 {
		s = s[:size-1]
	}
	w.buf.WriteString(s)
	for i := len(s); i < size; i++ {
		w.buf.WriteByte(0)
	}
}

// WriteSizedString writes a u32 length prefix followed by the bytes.
func (w *Writer) WriteSizedString(s string) {
	w.WriteUint32(uint32(len(s)))
	w.buf.WriteString(s)
}

// WriteSizedStringNull writes a sized string plus a trailing null.
func (w *Writer) WriteSizedStringNull(s string) {
	w.WriteSizedString(s)
	w.buf.WriteByte(0)
}

// WriteBytes writes raw bytes.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteVecLenU8 writes a u8 collection length prefix.
func (w *Writer) WriteVecLenU8(n int) error {
	if n > math.MaxUint8 {
		return &TooMuchDataError{Len: n, Max: math.MaxUint8}
	}
	w.WriteUint8(uint8(n))
	return nil
}

// WriteVecLenU16 writes a u16 collection length prefix.
func (w *Writer) WriteVecLenU16(n int) error {
	if n > math.MaxUint16 {
		return &TooMuchDataError{Len: n, Max: math.MaxUint16}
	}
	w.WriteUint16(uint16(n))
	return nil
}

// WriteVecLenU32 writes a u32 collection length prefix.
func (w *Writer) WriteVecLenU32(n int) error {
	if n > math.MaxUint32 {
		return &TooMuchDataError{Len: n, Max: math.MaxUint32}
	}
	w.WriteUint32(uint32(n))
	return nil
}

// Bytes returns the accumulated payload.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the current payload length.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Reset clears the buffer for reuse.
func (w *Writer) Reset() {
	w.buf.Reset()
}
