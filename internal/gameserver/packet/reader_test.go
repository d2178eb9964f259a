package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderPrimitives(t *testing.T) {
	w := NewWriter(64)
	w.WriteUint8(0xAB)
	w.WriteInt8(-5)
	w.WriteUint16(0xBEEF)
	w.WriteInt16(-1234)
	w.WriteUint32(0xDEADBEEF)
	w.WriteInt32(-123456)
	w.WriteUint64(0x1122334455667788)
	w.WriteInt64(-987654321)
	w.WriteFloat32(1.5)
	w.WriteFloat64(-2.25)
	w.WriteBool(true)
	w.WriteBool(false)

	r := NewReader(w.Bytes())
	u8, err := r.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAB), u8)
	i8, _ := r.ReadInt8()
	assert.Equal(t, int8(-5), i8)
	u16, _ := r.ReadUint16()
	assert.Equal(t, uint16(0xBEEF), u16)
	i16, _ := r.ReadInt16()
	assert.Equal(t, int16(-1234), i16)
	u32, _ := r.ReadUint32()
	assert.Equal(t, uint32(0xDEADBEEF), u32)
	i32, _ := r.ReadInt32()
	assert.Equal(t, int32(-123456), i32)
	u64, _ := r.ReadUint64()
	assert.Equal(t, uint64(0x1122334455667788), u64)
	i64, _ := r.ReadInt64()
	assert.Equal(t, int64(-987654321), i64)
	f32, _ := r.ReadFloat32()
	assert.Equal(t, float32(1.5), f32)
	f64, _ := r.ReadFloat64()
	assert.Equal(t, -2.25, f64)
	b1, _ := r.ReadBool()
	assert.True(t, b1)
	b2, _ := r.ReadBool()
	assert.False(t, b2)
	assert.Equal(t, 0, r.Remaining())
}

func TestReaderLittleEndian(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04})
	v, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04030201), v)
}

func TestReaderBoolOnlyLowBit(t *testing.T) {
	// some fields carry garbage above bit 0
	r := NewReader([]byte{0xFE, 0xFF})
	b, _ := r.ReadBool()
	assert.False(t, b)
	b, _ = r.ReadBool()
	assert.True(t, b)
}

func TestReaderShortRead(t *testing.T) {
	r := NewReader([]byte{0x01})
	_, err := r.ReadUint32()
	assert.Error(t, err)
}

func TestStringRoundTrip(t *testing.T) {
	w := NewWriter(32)
	w.WriteString("hello")
	r := NewReader(w.Bytes())
	s, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
	assert.Equal(t, 0, r.Remaining())
}

func TestStringUnterminated(t *testing.T) {
	r := NewReader([]byte("no null here"))
	_, err := r.ReadString()
	assert.Error(t, err)
}

func TestFixedStringRoundTrip(t *testing.T) {
	for _, size := range []int{16, 32, 40, 64, 128, 256} {
		w := NewWriter(size)
		w.WriteFixedString("Nasus", size)
		require.Equal(t, size, w.Len(), "size %d", size)

		r := NewReader(w.Bytes())
		s, err := r.ReadFixedString(size)
		require.NoError(t, err)
		assert.Equal(t, "Nasus", s)
		assert.Equal(t, 0, r.Remaining())
	}
}

func TestFixedStringTruncates(t *testing.T) {
	w := NewWriter(16)
	w.WriteFixedString("0123456789ABCDEF-overflow", 16)
	assert.Equal(t, 16, w.Len())

	r := NewReader(w.Bytes())
	s, err := r.ReadFixedString(16)
	require.NoError(t, err)
	assert.Equal(t, "0123456789ABCDE", s)
}

func TestSizedStringRoundTrip(t *testing.T) {
	w := NewWriter(32)
	w.WriteSizedString("mid or feed")
	r := NewReader(w.Bytes())
	s, err := r.ReadSizedString()
	require.NoError(t, err)
	assert.Equal(t, "mid or feed", s)

	w.Reset()
	w.WriteSizedStringNull("gg")
	r = NewReader(w.Bytes())
	s, err = r.ReadSizedStringNull()
	require.NoError(t, err)
	assert.Equal(t, "gg", s)
	assert.Equal(t, 0, r.Remaining())
}

func TestF8RoundTrip(t *testing.T) {
	w := NewWriter(4)
	w.WriteF8(0.25)
	w.WriteF8(-0.5)
	r := NewReader(w.Bytes())
	v, _ := r.ReadF8()
	assert.InDelta(t, 0.25, v, 0.01)
	v, _ = r.ReadF8()
	assert.InDelta(t, -0.5, v, 0.01)
}

func TestVecLenPrefixOverflow(t *testing.T) {
	w := NewWriter(4)
	err := w.WriteVecLenU8(300)
	var tooMuch *TooMuchDataError
	require.ErrorAs(t, err, &tooMuch)
	assert.Equal(t, 300, tooMuch.Len)
	assert.Equal(t, 255, tooMuch.Max)

	assert.NoError(t, w.WriteVecLenU8(255))
	assert.Error(t, w.WriteVecLenU16(70000))
	assert.NoError(t, w.WriteVecLenU16(65535))
}
