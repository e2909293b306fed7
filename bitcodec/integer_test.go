package bitcodec_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitspan/bitcodec"
	"github.com/spacemeshos/bitspan/bitspan"
)

func testValues() []int64 {
	rnd := rand.New(rand.NewSource(42))
	values := []int64{0, 1, -1, math.MinInt64, math.MaxInt64}
	for i := 0; i < 100; i++ {
		values = append(values, int64(rnd.Uint64()))
	}
	return values
}

func randomBytes(rnd *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rnd.Read(b)
	return b
}

func testFixedWidth[T bitspan.Binary](
	t *testing.T,
	write func(*bitspan.Span, T) error,
	read func(*bitspan.ReadOnlySpan) (T, error),
) {
	req := require.New(t)
	rnd := rand.New(rand.NewSource(7))
	width := bitspan.Width[T]()

	for _, v := range testValues() {
		value := T(v)
		for offset := 0; offset < 8; offset++ {
			data := randomBytes(rnd, 9)
			s, err := bitspan.New(data, offset, 72-offset)
			req.NoError(err)

			ws := s
			req.NoError(write(&ws, value))
			req.Equal(s.Len()-width, ws.Len())

			rs := s.ReadOnly()
			got, err := read(&rs)
			req.NoError(err)
			req.Equal(value, got)
			req.Equal(ws.Len(), rs.Len())
		}
	}
}

func TestFixedWidth(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		testFixedWidth(t, bitcodec.WriteInt8, bitcodec.ReadInt8[bitspan.ReadOnlySpan])
	})
	t.Run("uint8", func(t *testing.T) {
		testFixedWidth(t, bitcodec.WriteUint8, bitcodec.ReadUint8[bitspan.ReadOnlySpan])
	})
	t.Run("int16", func(t *testing.T) {
		testFixedWidth(t, bitcodec.WriteInt16, bitcodec.ReadInt16[bitspan.ReadOnlySpan])
	})
	t.Run("uint16", func(t *testing.T) {
		testFixedWidth(t, bitcodec.WriteUint16, bitcodec.ReadUint16[bitspan.ReadOnlySpan])
	})
	t.Run("int32", func(t *testing.T) {
		testFixedWidth(t, bitcodec.WriteInt32, bitcodec.ReadInt32[bitspan.ReadOnlySpan])
	})
	t.Run("uint32", func(t *testing.T) {
		testFixedWidth(t, bitcodec.WriteUint32, bitcodec.ReadUint32[bitspan.ReadOnlySpan])
	})
	t.Run("int64", func(t *testing.T) {
		testFixedWidth(t, bitcodec.WriteInt64, bitcodec.ReadInt64[bitspan.ReadOnlySpan])
	})
	t.Run("uint64", func(t *testing.T) {
		testFixedWidth(t, bitcodec.WriteUint64, bitcodec.ReadUint64[bitspan.ReadOnlySpan])
	})
}

func TestVariableWidth(t *testing.T) {
	req := require.New(t)
	data := make([]byte, 8)

	s := bitspan.Of(data)
	req.NoError(bitcodec.WriteUint8N(&s, 0b101, 3))
	req.NoError(bitcodec.WriteInt16N(&s, -3, 11))
	req.NoError(bitcodec.WriteUint32N(&s, 0x3FFFF, 18))
	req.NoError(bitcodec.WriteInt64N(&s, 1, 1))
	req.Equal(64-33, s.Len())

	rs := bitspan.Of(data)
	u8, err := bitcodec.ReadUint8N(&rs, 3)
	req.NoError(err)
	req.Equal(uint8(0b101), u8)

	i16, err := bitcodec.ReadInt16N(&rs, 11)
	req.NoError(err)
	// Zero-filled read; the caller restores the sign.
	req.Equal(int16(0x7FD), i16)
	req.Equal(int16(-3), bitcodec.SignExtend(i16, 11))

	u32, err := bitcodec.ReadUint32N(&rs, 18)
	req.NoError(err)
	req.Equal(uint32(0x3FFFF), u32)

	i64, err := bitcodec.ReadInt64N(&rs, 1)
	req.NoError(err)
	req.Equal(int64(1), i64)
}

func TestVariableWidthRange(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name string
		call func(s *bitspan.Span, numBits int) error
		max  int
	}{
		{"ReadInt8N", func(s *bitspan.Span, n int) error { _, err := bitcodec.ReadInt8N(s, n); return err }, 8},
		{"ReadUint16N", func(s *bitspan.Span, n int) error { _, err := bitcodec.ReadUint16N(s, n); return err }, 16},
		{"ReadInt32N", func(s *bitspan.Span, n int) error { _, err := bitcodec.ReadInt32N(s, n); return err }, 32},
		{"ReadUint64N", func(s *bitspan.Span, n int) error { _, err := bitcodec.ReadUint64N(s, n); return err }, 64},
		{"WriteUint8N", func(s *bitspan.Span, n int) error { return bitcodec.WriteUint8N(s, 0xFF, n) }, 8},
		{"WriteInt16N", func(s *bitspan.Span, n int) error { return bitcodec.WriteInt16N(s, -1, n) }, 16},
		{"WriteUint32N", func(s *bitspan.Span, n int) error { return bitcodec.WriteUint32N(s, 1, n) }, 32},
		{"WriteInt64N", func(s *bitspan.Span, n int) error { return bitcodec.WriteInt64N(s, -1, n) }, 64},
	}

	for _, tc := range tests {
		data := make([]byte, 16)
		s := bitspan.Of(data)

		err := tc.call(&s, 0)
		req.ErrorIs(err, bitspan.ErrOutOfRange, tc.name)
		req.EqualError(err, "requested 0 bits, minimum 1", tc.name)

		err = tc.call(&s, tc.max+1)
		req.ErrorIs(err, bitspan.ErrOutOfRange, tc.name)
		req.EqualError(err, fmt.Sprintf("requested %d bits, maximum %d", tc.max+1, tc.max), tc.name)

		// Failed calls neither advance the span nor touch the buffer.
		req.Equal(len(data)*8, s.Len(), tc.name)
		req.Equal(make([]byte, 16), data, tc.name)

		req.NoError(tc.call(&s, tc.max), tc.name)
	}
}

func TestShortSpan(t *testing.T) {
	req := require.New(t)
	data := make([]byte, 2)

	s, err := bitspan.New(data, 3, 12)
	req.NoError(err)

	_, err = bitcodec.ReadUint16(&s)
	req.ErrorIs(err, bitspan.ErrOutOfRange)
	req.ErrorIs(bitcodec.WriteUint16(&s, 0xFFFF), bitspan.ErrOutOfRange)
	req.Equal(12, s.Len())
	req.Equal([]byte{0, 0}, data)
}

func TestSignExtend(t *testing.T) {
	req := require.New(t)

	req.Equal(int8(-1), bitcodec.SignExtend(int8(0b1), 1))
	req.Equal(int8(1), bitcodec.SignExtend(int8(0b01), 2))
	req.Equal(int8(-4), bitcodec.SignExtend(int8(0b100), 3))
	req.Equal(int32(-1), bitcodec.SignExtend(int32(0xFFFF), 16))
	req.Equal(int64(math.MinInt64), bitcodec.SignExtend(int64(math.MinInt64), 64))
	req.Equal(int16(0x7F), bitcodec.SignExtend(int16(0x7F), 0))
}
