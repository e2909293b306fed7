package bitspan

// Span is a mutable view over a bit range of a byte slice.
// The zero value is an empty span.
type Span struct {
	w window
}

// New returns a span of length bits starting at bitOffset (0-7) of data[0].
func New(data []byte, bitOffset, length int) (Span, error) {
	w, err := newWindow(data, bitOffset, length)
	if err != nil {
		return Span{}, err
	}
	return Span{w: w}, nil
}

// At returns a span of length bits starting at the absolute bit index of data.
func At(data []byte, bitIndex, length int) (Span, error) {
	w, err := windowAt(data, bitIndex, length)
	if err != nil {
		return Span{}, err
	}
	return Span{w: w}, nil
}

// Of returns a span covering all of data.
func Of(data []byte) Span {
	return Span{w: window{data: data, length: len(data) * 8}}
}

// Empty returns a zero-length span.
func Empty() Span {
	return Span{}
}

// Len returns the number of bits in the span.
func (s Span) Len() int { return s.w.length }

// Offset returns the bit offset of the span within its first byte.
func (s Span) Offset() int { return s.w.offset }

// Slice returns the span skipBits further in, covering the remaining bits.
func (s Span) Slice(skipBits int) (Span, error) {
	return s.SliceN(skipBits, s.w.length-skipBits)
}

// SliceN returns a span of length bits starting skipBits further in. The new
// span may extend past the end of s, but not past the end of the buffer.
func (s Span) SliceN(skipBits, length int) (Span, error) {
	w, err := s.w.slice(skipBits, length)
	if err != nil {
		return Span{}, err
	}
	return Span{w: w}, nil
}

// Range returns the bits [from, to) of s.
func (s Span) Range(from, to int) (Span, error) {
	return s.SliceN(from, to-from)
}

// Split divides s at offset into the bits [0, offset) and [offset, Len()).
func (s Span) Split(offset int) (Span, Span, error) {
	left, right, err := s.w.split(offset)
	if err != nil {
		return Span{}, Span{}, err
	}
	return Span{w: left}, Span{w: right}, nil
}

// ReadOnly returns a read-only view of the same bits.
func (s Span) ReadOnly() ReadOnlySpan {
	return ReadOnlySpan{w: s.w}
}

// AlignedBytes returns the bytes of s if it starts on a byte boundary and
// covers whole bytes. The returned slice aliases the buffer.
func (s Span) AlignedBytes() ([]byte, bool) {
	return s.w.aligned()
}

// String renders the bits of s as '0' and '1' characters.
func (s Span) String() string {
	return s.w.String()
}
