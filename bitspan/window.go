package bitspan

import (
	"fmt"
	"strings"
)

// window is the state shared by Span and ReadOnlySpan.
type window struct {
	data   []byte
	offset int
	length int
}

func newWindow(data []byte, bitOffset, length int) (window, error) {
	if bitOffset < 0 || bitOffset >= 8 {
		return window{}, fmt.Errorf("%w: bit offset %d, expected [0,8)", ErrOutOfRange, bitOffset)
	}
	if length < 0 {
		return window{}, fmt.Errorf("%w: negative length %d", ErrOutOfRange, length)
	}
	if bitOffset+length > len(data)*8 {
		return window{}, fmt.Errorf("%w: %d bits at offset %d exceed %d-byte buffer",
			ErrOutOfRange, length, bitOffset, len(data))
	}

	return window{data: data, offset: bitOffset, length: length}, nil
}

func windowAt(data []byte, bitIndex, length int) (window, error) {
	if bitIndex < 0 {
		return window{}, fmt.Errorf("%w: negative bit index %d", ErrOutOfRange, bitIndex)
	}
	if length < 0 || bitIndex+length > len(data)*8 {
		return window{}, fmt.Errorf("%w: %d bits at bit index %d exceed %d-byte buffer",
			ErrOutOfRange, length, bitIndex, len(data))
	}

	return window{data: data[bitIndex/8:], offset: bitIndex % 8, length: length}, nil
}

func (w window) slice(skipBits, length int) (window, error) {
	if skipBits < 0 || length < 0 || w.offset+skipBits+length > len(w.data)*8 {
		return window{}, fmt.Errorf("%w: %d bits after skipping %d exceed %d-bit capacity",
			ErrOverflow, length, skipBits, len(w.data)*8-w.offset)
	}

	start := w.offset + skipBits
	return window{data: w.data[start/8:], offset: start % 8, length: length}, nil
}

func (w window) split(offset int) (window, window, error) {
	if offset < 0 || offset > w.length {
		return window{}, window{}, fmt.Errorf("%w: split at %d of %d-bit span", ErrOutOfRange, offset, w.length)
	}

	start := w.offset + offset
	index := start / 8
	rightOffset := start % 8

	// The left half keeps its partial last byte; the right half starts there.
	leftBytes := index
	if rightOffset != 0 {
		leftBytes++
	}

	left := window{data: w.data[:leftBytes], offset: w.offset, length: offset}
	right := window{data: w.data[index:], offset: rightOffset, length: w.length - offset}
	return left, right, nil
}

func (w window) bit(i int) byte {
	pos := w.offset + i
	return (w.data[pos/8] >> (7 - pos%8)) & 1
}

func (w window) String() string {
	var sb strings.Builder
	sb.Grow(w.length)
	for i := 0; i < w.length; i++ {
		sb.WriteByte('0' + w.bit(i))
	}
	return sb.String()
}

func (w window) aligned() ([]byte, bool) {
	if w.offset != 0 || w.length%8 != 0 {
		return nil, false
	}
	return w.data[:w.length/8], true
}
