package bitspan

// ReadOnlySpan is a view over a bit range of a byte slice that codecs only
// read from. The zero value is an empty span.
type ReadOnlySpan struct {
	w window
}

// NewReadOnly returns a read-only span of length bits starting at bitOffset
// (0-7) of data[0].
func NewReadOnly(data []byte, bitOffset, length int) (ReadOnlySpan, error) {
	w, err := newWindow(data, bitOffset, length)
	if err != nil {
		return ReadOnlySpan{}, err
	}
	return ReadOnlySpan{w: w}, nil
}

// ReadOnlyAt returns a read-only span of length bits starting at the absolute
// bit index of data.
func ReadOnlyAt(data []byte, bitIndex, length int) (ReadOnlySpan, error) {
	w, err := windowAt(data, bitIndex, length)
	if err != nil {
		return ReadOnlySpan{}, err
	}
	return ReadOnlySpan{w: w}, nil
}

// ReadOnlyOf returns a read-only span covering all of data.
func ReadOnlyOf(data []byte) ReadOnlySpan {
	return ReadOnlySpan{w: window{data: data, length: len(data) * 8}}
}

// Len returns the number of bits in the span.
func (s ReadOnlySpan) Len() int { return s.w.length }

// Offset returns the bit offset of the span within its first byte.
func (s ReadOnlySpan) Offset() int { return s.w.offset }

// Slice returns the span skipBits further in, covering the remaining bits.
func (s ReadOnlySpan) Slice(skipBits int) (ReadOnlySpan, error) {
	return s.SliceN(skipBits, s.w.length-skipBits)
}

// SliceN returns a span of length bits starting skipBits further in, bounded
// by the end of the buffer.
func (s ReadOnlySpan) SliceN(skipBits, length int) (ReadOnlySpan, error) {
	w, err := s.w.slice(skipBits, length)
	if err != nil {
		return ReadOnlySpan{}, err
	}
	return ReadOnlySpan{w: w}, nil
}

// Range returns the bits [from, to) of s.
func (s ReadOnlySpan) Range(from, to int) (ReadOnlySpan, error) {
	return s.SliceN(from, to-from)
}

// Split divides s at offset into the bits [0, offset) and [offset, Len()).
func (s ReadOnlySpan) Split(offset int) (ReadOnlySpan, ReadOnlySpan, error) {
	left, right, err := s.w.split(offset)
	if err != nil {
		return ReadOnlySpan{}, ReadOnlySpan{}, err
	}
	return ReadOnlySpan{w: left}, ReadOnlySpan{w: right}, nil
}

// ReadOnly returns s.
func (s ReadOnlySpan) ReadOnly() ReadOnlySpan {
	return s
}

// AlignedBytes returns the bytes of s if it starts on a byte boundary and
// covers whole bytes. The returned slice aliases the buffer and must not be
// modified.
func (s ReadOnlySpan) AlignedBytes() ([]byte, bool) {
	return s.w.aligned()
}

// String renders the bits of s as '0' and '1' characters.
func (s ReadOnlySpan) String() string {
	return s.w.String()
}
