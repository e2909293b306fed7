package bitspan

// ByteMapping describes how a span touches a single boundary byte.
type ByteMapping struct {
	// Padding is the number of bits of the byte outside the span: the high
	// bits for the first byte, the low bits for the last byte.
	Padding int
	// Mask selects the bits of the byte that belong to the span.
	Mask byte
}

// NumBits returns the number of bits of the byte inside the span.
func (m ByteMapping) NumBits() int {
	return 8 - m.Padding
}

// Mapping describes which bytes a span touches and how its first and last
// byte are masked. When NumBytes is 1 both describe the same byte and the
// effective mask is First.Mask & Last.Mask.
type Mapping struct {
	First    ByteMapping
	Last     ByteMapping
	NumBytes int
}

// LastByteIndex returns the index of the last touched byte.
func (m Mapping) LastByteIndex() int {
	return m.NumBytes - 1
}

// Map computes the mapping of length bits starting at bit offset (0-7) of a
// buffer holding bufferBytes bytes.
func Map(offset, length, bufferBytes int) Mapping {
	full := 0xFF

	endPadding := (bufferBytes*8 - length - offset) % 8
	bitCount := length + offset

	return Mapping{
		First: ByteMapping{
			Padding: offset,
			Mask:    byte(^(full << (8 - offset)) & full),
		},
		Last: ByteMapping{
			Padding: endPadding,
			Mask:    byte((full << endPadding) & full),
		},
		NumBytes: (bitCount + 7) / 8,
	}
}
