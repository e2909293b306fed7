package bitcodec

import (
	"fmt"

	"github.com/spacemeshos/bitspan/bitspan"
)

// ReadArray reads count elements of numBitsPerElement bits each.
func ReadArray[T bitspan.Binary, S bitspan.Bits[S]](s *S, count, numBitsPerElement int) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative element count %d", bitspan.ErrOutOfRange, count)
	}

	dst := make([]T, count)
	if err := ReadArrayInto(s, dst, numBitsPerElement); err != nil {
		return nil, err
	}
	return dst, nil
}

// ReadArrayInto fills dst with elements of numBitsPerElement bits each.
func ReadArrayInto[T bitspan.Binary, S bitspan.Bits[S]](s *S, dst []T, numBitsPerElement int) error {
	cur := *s
	for i := range dst {
		v, err := ReadBinary[T](&cur, numBitsPerElement)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		dst[i] = v
	}

	*s = cur
	return nil
}

// WriteArray writes values in order, numBitsPerElement bits each. Nothing is
// written unless all elements fit in s.
func WriteArray[T bitspan.Binary](s *bitspan.Span, values []T, numBitsPerElement int) error {
	if err := bitspan.CheckWidth(numBitsPerElement, 0, bitspan.Width[T]()); err != nil {
		return err
	}
	if total := len(values) * numBitsPerElement; total > s.Len() {
		return fmt.Errorf("%w: %d elements of %d bits exceed %d-bit span",
			bitspan.ErrOutOfRange, len(values), numBitsPerElement, s.Len())
	}

	cur := *s
	for i, v := range values {
		if err := WriteBinary(&cur, v, numBitsPerElement); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	*s = cur
	return nil
}
