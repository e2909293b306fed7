// Package bitspan provides bit-addressable, non-owning views over byte slices.
// Bits are packed most-significant bit first: bit offset 0 is the top bit of
// the first byte.
//
// A span never owns its backing slice. The slice must not be resized or
// reused while spans over it are in use, and spans aliasing the same bytes
// are not safe for concurrent mutation.
package bitspan

import "unsafe"

// Binary is the closed set of integer types that spans can be read as and
// written from.
type Binary interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Bits is implemented by Span and ReadOnlySpan. It lets read-only codecs
// accept either.
type Bits[S any] interface {
	Span | ReadOnlySpan

	Len() int
	Offset() int
	Slice(skipBits int) (S, error)
	SliceN(skipBits, length int) (S, error)
	Split(offset int) (S, S, error)
	ReadOnly() ReadOnlySpan
}

// Width returns the bit width of T.
func Width[T Binary]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}
