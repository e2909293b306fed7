package bitcodec

import (
	"github.com/spacemeshos/bitspan/bitspan"
)

// ReadBool reads a single bit; any set bit is true.
func ReadBool[S bitspan.Bits[S]](s *S) (bool, error) {
	v, err := ReadBinary[uint8](s, 1)
	return v != 0, err
}

// WriteBool writes a single bit: 1 for true, 0 for false.
func WriteBool(s *bitspan.Span, v bool) error {
	var b uint8
	if v {
		b = 1
	}
	return WriteBinary(s, b, 1)
}
