package bitstream_test

import (
	"io"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitspan/bitspan"
	"github.com/spacemeshos/bitspan/bitstream"
)

const (
	Zero = bitstream.Zero
	One  = bitstream.One
)

var (
	NewWriter = bitstream.NewWriter
	NewReader = bitstream.NewReader
)

func NumBits(v uint64) int {
	return bits.Len64(v)
}

func TestUint64BE(t *testing.T) {
	req := require.New(t)

	from := uint64(1)
	to := uint64(1 << 12)

	var total int
	for i := from; i < to; i++ {
		total += NumBits(i) + 64
	}
	data := make([]byte, (total+7)/8)

	w := NewWriter(bitspan.Of(data))
	for i := from; i < to; i++ {
		req.NoError(w.WriteUint64BE(i, NumBits(i)))
		req.NoError(w.WriteUint64BE(i, 64))
	}
	req.Equal(total, w.Written())

	// Flush pads the final byte, and the padding counts as written.
	req.NoError(w.Flush(Zero))
	req.Equal(len(data)*8, w.Written())
	req.Zero(w.Len())

	r := NewReader(bitspan.ReadOnlyOf(data))
	for i := from; i < to; i++ {
		num, err := r.ReadUint64BE(NumBits(i))
		req.NoError(err)
		req.Equal(i, num)
		num, err = r.ReadUint64BE(64)
		req.NoError(err)
		req.Equal(i, num)
	}
	req.Equal(len(data)*8-total, r.Len())
}

func TestUint64BE_Mixed(t *testing.T) {
	req := require.New(t)

	from := uint64(1)
	to := uint64(1 << 12)

	for i := from; i < to; i++ {
		numBits := NumBits(i)
		data := make([]byte, (3+numBits+3+numBits+3+7)/8)
		w := NewWriter(bitspan.Of(data))

		// Write 3 arbitrary bits.
		req.NoError(w.WriteBit(One))
		req.NoError(w.WriteBit(Zero))
		req.NoError(w.WriteBit(One))

		// Write i.
		req.NoError(w.WriteUint64BE(i, numBits))

		// Write the 3 LS bits of 0xFF.
		req.NoError(w.Write([]byte{0xFF}, 3))

		// Write i again.
		req.NoError(w.WriteUint64BE(i, numBits))

		// Write 3 arbitrary bits.
		req.NoError(w.WriteBit(One))
		req.NoError(w.WriteBit(Zero))
		req.NoError(w.WriteBit(One))

		req.NoError(w.Flush(Zero))

		// Read.
		r := NewReader(bitspan.ReadOnlyOf(data))

		bit, err := r.ReadBit()
		req.NoError(err)
		req.Equal(One, bit)

		bit, err = r.ReadBit()
		req.NoError(err)
		req.Equal(Zero, bit)

		bit, err = r.ReadBit()
		req.NoError(err)
		req.Equal(One, bit)

		num, err := r.ReadUint64BE(numBits)
		req.NoError(err)
		req.Equal(i, num)

		b, err := r.Read(3)
		req.NoError(err)
		req.Len(b, 1)
		req.Equal(uint8(0x07), b[0])

		num, err = r.ReadUint64BE(numBits)
		req.NoError(err)
		req.Equal(i, num)

		bit, err = r.ReadBit()
		req.NoError(err)
		req.Equal(One, bit)

		bit, err = r.ReadBit()
		req.NoError(err)
		req.Equal(Zero, bit)

		bit, err = r.ReadBit()
		req.NoError(err)
		req.Equal(One, bit)
	}
}

func TestString(t *testing.T) {
	req := require.New(t)

	s := []byte("a string")
	br := NewReader(bitspan.ReadOnlyOf(s))
	out := make([]byte, len(s))
	bw := NewWriter(bitspan.Of(out))

	for {
		bit, err := br.ReadBit()
		if err == io.EOF {
			break
		}
		req.NoError(err)
		req.NoError(bw.WriteBit(bit))
	}
	req.Equal(s, out)
}

func TestUnalignedBytes(t *testing.T) {
	req := require.New(t)

	s := []byte("a string")
	out := make([]byte, len(s)+1)

	// Start 5 bits into the buffer so that every byte straddles two.
	span, err := bitspan.New(out, 5, len(s)*8)
	req.NoError(err)
	bw := NewWriter(span)
	for _, b := range s {
		req.NoError(bw.WriteByte(b))
	}
	req.ErrorIs(bw.WriteBit(One), bitspan.ErrOverflow)

	rs, err := bitspan.NewReadOnly(out, 5, len(s)*8)
	req.NoError(err)
	br := NewReader(rs)
	for _, want := range s {
		b, err := br.ReadByte()
		req.NoError(err)
		req.Equal(want, b)
	}
	req.Zero(out[0] >> 3)
	req.Zero(out[len(out)-1] & 0x07)
}

func TestReadEOF(t *testing.T) {
	req := require.New(t)

	r := NewReader(bitspan.ReadOnlyOf([]byte{0xAB}))

	_, err := r.ReadUint64BE(12)
	req.ErrorIs(err, io.ErrUnexpectedEOF)
	req.Equal(8, r.Len(), "failed reads must not consume bits")

	b, err := r.Read(8)
	req.NoError(err)
	req.Equal([]byte{0xAB}, b)

	_, err = r.ReadBit()
	req.ErrorIs(err, io.EOF)
	_, err = r.ReadByte()
	req.ErrorIs(err, io.EOF)
	_, err = r.Read(1)
	req.ErrorIs(err, io.EOF)

	num, err := r.ReadUint64BE(0)
	req.NoError(err)
	req.Zero(num)
}

func TestFlush(t *testing.T) {
	req := require.New(t)

	data := make([]byte, 2)
	w := NewWriter(bitspan.Of(data))

	req.NoError(w.WriteBit(Zero))
	req.NoError(w.Flush(One))
	req.Equal(8, w.Written())
	req.NoError(w.WriteByte(0x5A))

	req.Equal([]byte{0x7F, 0x5A}, data)

	// Flushing at a byte boundary is a no-op.
	req.NoError(w.Flush(One))
	req.Equal(16, w.Written())
}

func TestFlushShortSpan(t *testing.T) {
	req := require.New(t)

	data := make([]byte, 1)
	span, err := bitspan.New(data, 0, 5)
	req.NoError(err)
	w := NewWriter(span)

	req.NoError(w.WriteBit(One))
	req.NoError(w.Flush(One))
	req.Equal(5, w.Written())
	req.Equal(byte(0xF8), data[0])
}

func TestWriteOverflow(t *testing.T) {
	req := require.New(t)

	data := make([]byte, 2)
	w := NewWriter(bitspan.Of(data))

	req.NoError(w.WriteUint64BE(0x3FF, 10))
	req.ErrorIs(w.WriteByte(0xFF), bitspan.ErrOverflow)
	req.ErrorIs(w.WriteUint64BE(0xFF, 7), bitspan.ErrOverflow)
	req.ErrorIs(w.Write([]byte{0xFF}, 7), bitspan.ErrOverflow)
	req.Equal(10, w.Written())
	req.Equal(6, w.Len())

	req.ErrorIs(w.Write([]byte{0xFF}, 9), bitspan.ErrOutOfRange)
	req.Equal([]byte{0xFF, 0xC0}, data)
}
