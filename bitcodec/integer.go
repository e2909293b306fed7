package bitcodec

import (
	"github.com/spacemeshos/bitspan/bitspan"
)

// The fixed-width codecs consume exactly the width of their type. The N
// variants consume numBits bits, which must be in [1, width], and fail with a
// bitspan.BitWidthError otherwise.

// ReadInt8 reads the next int8 from s.
func ReadInt8[S bitspan.Bits[S]](s *S) (int8, error) {
	return ReadBinary[int8](s, 8)
}

// ReadInt8N reads the next numBits bits of s as a zero-filled int8.
func ReadInt8N[S bitspan.Bits[S]](s *S, numBits int) (int8, error) {
	if err := bitspan.CheckWidth(numBits, 1, 8); err != nil {
		return 0, err
	}
	return ReadBinary[int8](s, numBits)
}

// WriteInt8 writes v to the front of s.
func WriteInt8(s *bitspan.Span, v int8) error {
	return WriteBinary(s, v, 8)
}

// WriteInt8N writes the low numBits bits of v to the front of s.
func WriteInt8N(s *bitspan.Span, v int8, numBits int) error {
	if err := bitspan.CheckWidth(numBits, 1, 8); err != nil {
		return err
	}
	return WriteBinary(s, v, numBits)
}

// ReadUint8 reads the next uint8 from s.
func ReadUint8[S bitspan.Bits[S]](s *S) (uint8, error) {
	return ReadBinary[uint8](s, 8)
}

// ReadUint8N reads the next numBits bits of s as a zero-filled uint8.
func ReadUint8N[S bitspan.Bits[S]](s *S, numBits int) (uint8, error) {
	if err := bitspan.CheckWidth(numBits, 1, 8); err != nil {
		return 0, err
	}
	return ReadBinary[uint8](s, numBits)
}

// WriteUint8 writes v to the front of s.
func WriteUint8(s *bitspan.Span, v uint8) error {
	return WriteBinary(s, v, 8)
}

// WriteUint8N writes the low numBits bits of v to the front of s.
func WriteUint8N(s *bitspan.Span, v uint8, numBits int) error {
	if err := bitspan.CheckWidth(numBits, 1, 8); err != nil {
		return err
	}
	return WriteBinary(s, v, numBits)
}

// ReadInt16 reads the next int16 from s.
func ReadInt16[S bitspan.Bits[S]](s *S) (int16, error) {
	return ReadBinary[int16](s, 16)
}

// ReadInt16N reads the next numBits bits of s as a zero-filled int16.
func ReadInt16N[S bitspan.Bits[S]](s *S, numBits int) (int16, error) {
	if err := bitspan.CheckWidth(numBits, 1, 16); err != nil {
		return 0, err
	}
	return ReadBinary[int16](s, numBits)
}

// WriteInt16 writes v to the front of s.
func WriteInt16(s *bitspan.Span, v int16) error {
	return WriteBinary(s, v, 16)
}

// WriteInt16N writes the low numBits bits of v to the front of s.
func WriteInt16N(s *bitspan.Span, v int16, numBits int) error {
	if err := bitspan.CheckWidth(numBits, 1, 16); err != nil {
		return err
	}
	return WriteBinary(s, v, numBits)
}

// ReadUint16 reads the next uint16 from s.
func ReadUint16[S bitspan.Bits[S]](s *S) (uint16, error) {
	return ReadBinary[uint16](s, 16)
}

// ReadUint16N reads the next numBits bits of s as a zero-filled uint16.
func ReadUint16N[S bitspan.Bits[S]](s *S, numBits int) (uint16, error) {
	if err := bitspan.CheckWidth(numBits, 1, 16); err != nil {
		return 0, err
	}
	return ReadBinary[uint16](s, numBits)
}

// WriteUint16 writes v to the front of s.
func WriteUint16(s *bitspan.Span, v uint16) error {
	return WriteBinary(s, v, 16)
}

// WriteUint16N writes the low numBits bits of v to the front of s.
func WriteUint16N(s *bitspan.Span, v uint16, numBits int) error {
	if err := bitspan.CheckWidth(numBits, 1, 16); err != nil {
		return err
	}
	return WriteBinary(s, v, numBits)
}

// ReadInt32 reads the next int32 from s.
func ReadInt32[S bitspan.Bits[S]](s *S) (int32, error) {
	return ReadBinary[int32](s, 32)
}

// ReadInt32N reads the next numBits bits of s as a zero-filled int32.
func ReadInt32N[S bitspan.Bits[S]](s *S, numBits int) (int32, error) {
	if err := bitspan.CheckWidth(numBits, 1, 32); err != nil {
		return 0, err
	}
	return ReadBinary[int32](s, numBits)
}

// WriteInt32 writes v to the front of s.
func WriteInt32(s *bitspan.Span, v int32) error {
	return WriteBinary(s, v, 32)
}

// WriteInt32N writes the low numBits bits of v to the front of s.
func WriteInt32N(s *bitspan.Span, v int32, numBits int) error {
	if err := bitspan.CheckWidth(numBits, 1, 32); err != nil {
		return err
	}
	return WriteBinary(s, v, numBits)
}

// ReadUint32 reads the next uint32 from s.
func ReadUint32[S bitspan.Bits[S]](s *S) (uint32, error) {
	return ReadBinary[uint32](s, 32)
}

// ReadUint32N reads the next numBits bits of s as a zero-filled uint32.
func ReadUint32N[S bitspan.Bits[S]](s *S, numBits int) (uint32, error) {
	if err := bitspan.CheckWidth(numBits, 1, 32); err != nil {
		return 0, err
	}
	return ReadBinary[uint32](s, numBits)
}

// WriteUint32 writes v to the front of s.
func WriteUint32(s *bitspan.Span, v uint32) error {
	return WriteBinary(s, v, 32)
}

// WriteUint32N writes the low numBits bits of v to the front of s.
func WriteUint32N(s *bitspan.Span, v uint32, numBits int) error {
	if err := bitspan.CheckWidth(numBits, 1, 32); err != nil {
		return err
	}
	return WriteBinary(s, v, numBits)
}

// ReadInt64 reads the next int64 from s.
func ReadInt64[S bitspan.Bits[S]](s *S) (int64, error) {
	return ReadBinary[int64](s, 64)
}

// ReadInt64N reads the next numBits bits of s as a zero-filled int64.
func ReadInt64N[S bitspan.Bits[S]](s *S, numBits int) (int64, error) {
	if err := bitspan.CheckWidth(numBits, 1, 64); err != nil {
		return 0, err
	}
	return ReadBinary[int64](s, numBits)
}

// WriteInt64 writes v to the front of s.
func WriteInt64(s *bitspan.Span, v int64) error {
	return WriteBinary(s, v, 64)
}

// WriteInt64N writes the low numBits bits of v to the front of s.
func WriteInt64N(s *bitspan.Span, v int64, numBits int) error {
	if err := bitspan.CheckWidth(numBits, 1, 64); err != nil {
		return err
	}
	return WriteBinary(s, v, numBits)
}

// ReadUint64 reads the next uint64 from s.
func ReadUint64[S bitspan.Bits[S]](s *S) (uint64, error) {
	return ReadBinary[uint64](s, 64)
}

// ReadUint64N reads the next numBits bits of s as a zero-filled uint64.
func ReadUint64N[S bitspan.Bits[S]](s *S, numBits int) (uint64, error) {
	if err := bitspan.CheckWidth(numBits, 1, 64); err != nil {
		return 0, err
	}
	return ReadBinary[uint64](s, numBits)
}

// WriteUint64 writes v to the front of s.
func WriteUint64(s *bitspan.Span, v uint64) error {
	return WriteBinary(s, v, 64)
}

// WriteUint64N writes the low numBits bits of v to the front of s.
func WriteUint64N(s *bitspan.Span, v uint64, numBits int) error {
	if err := bitspan.CheckWidth(numBits, 1, 64); err != nil {
		return err
	}
	return WriteBinary(s, v, numBits)
}
