// Package bitcodec reads and writes integers, booleans, quantized floats and
// arrays at arbitrary bit positions of a bitspan.
//
// Every codec takes a pointer to a span, consumes the bits it touches from
// the front of the span and leaves the remainder in place, so consecutive
// calls lay fields out one after another. Spans are only advanced when the
// call succeeds.
package bitcodec

import (
	"github.com/spacemeshos/bitspan/bitspan"
)

// ReadBinary reads the next numBits bits of s as a T.
func ReadBinary[T bitspan.Binary, S bitspan.Bits[S]](s *S, numBits int) (T, error) {
	valueBits, rest, err := (*s).Split(numBits)
	if err != nil {
		return 0, err
	}

	v, err := bitspan.ReadAs[T](valueBits)
	if err != nil {
		return 0, err
	}

	*s = rest
	return v, nil
}

// WriteBinary writes the low numBits bits of v to the front of s.
func WriteBinary[T bitspan.Binary](s *bitspan.Span, v T, numBits int) error {
	valueBits, rest, err := s.Split(numBits)
	if err != nil {
		return err
	}

	if err := bitspan.Write(valueBits, v); err != nil {
		return err
	}

	*s = rest
	return nil
}

// Signed is the subset of bitspan.Binary holding signed integers.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// SignExtend treats the low numBits bits of v as a two's complement number
// and extends its sign bit through the rest of T. Reads are zero-filled, so
// variable-width signed fields need this to recover negative values.
func SignExtend[T Signed](v T, numBits int) T {
	shift := bitspan.Width[T]() - numBits
	if shift <= 0 || numBits <= 0 {
		return v
	}
	return (v << shift) >> shift
}
