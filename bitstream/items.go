package bitstream

import (
	"fmt"

	"github.com/spacemeshos/bitspan/bitspan"
)

// ItemReader provides granularity-specific access to a span according to
// the defined item size, where bit-granular and byte-granular sizes are
// supported via a specialized code path.
type ItemReader struct {
	ReadNext       func() ([]byte, error)
	ReadNextUintBE func() (uint64, error)
}

func NewItemReader(s bitspan.ReadOnlySpan, itemBitSize uint) *ItemReader {
	itemReader := new(ItemReader)
	if itemBitSize%8 == 0 && s.Offset() == 0 {
		// Byte-granular reader is copying the underlying bytes directly.
		itemReader.ReadNext = func() ([]byte, error) {
			if err := need(s.Len(), int(itemBitSize)); err != nil {
				return nil, err
			}

			item, rest, err := s.Split(int(itemBitSize))
			if err != nil {
				return nil, err
			}
			aligned, _ := item.AlignedBytes()
			s = rest

			b := make([]byte, len(aligned))
			copy(b, aligned)
			return b, nil
		}
		itemReader.ReadNextUintBE = func() (uint64, error) {
			b, err := itemReader.ReadNext()
			if err != nil {
				return 0, err
			}
			return UintBE(b), nil
		}
	} else {
		// Bit-granular reader is using BitReader as a cursor over the span.
		br := NewReader(s)
		itemReader.ReadNext = func() ([]byte, error) {
			return br.Read(itemBitSize)
		}
		itemReader.ReadNextUintBE = func() (uint64, error) {
			return br.ReadUint64BE(int(itemBitSize))
		}
	}

	return itemReader
}

// ItemWriter provides granularity-specific access to a span according to
// the defined item size, where bit-granular and byte-granular sizes are
// supported via a specialized code path.
type ItemWriter struct {
	Write       func([]byte) error
	WriteUintBE func(uint64) error
	Flush       func() error
}

func NewItemWriter(s bitspan.Span, itemBitSize uint) *ItemWriter {
	itemWriter := new(ItemWriter)
	itemBytes := int(itemBitSize+7) / 8

	if itemBitSize%8 == 0 && s.Offset() == 0 {
		// Byte-granular writer is copying into the underlying bytes directly.
		itemWriter.Write = func(b []byte) error {
			if len(b) < itemBytes {
				return fmt.Errorf("%w: item of %d bytes, expected %d", bitspan.ErrOutOfRange, len(b), itemBytes)
			}
			if err := room(s.Len(), int(itemBitSize)); err != nil {
				return err
			}

			item, rest, err := s.Split(int(itemBitSize))
			if err != nil {
				return err
			}
			aligned, _ := item.AlignedBytes()
			copy(aligned, b)
			s = rest
			return nil
		}
		itemWriter.Flush = func() error { return nil }
	} else {
		// Bit-granular writer is using BitWriter as a cursor over the span.
		bw := NewWriter(s)
		itemWriter.Write = func(b []byte) error {
			return bw.Write(b, int(itemBitSize))
		}
		itemWriter.Flush = func() error {
			return bw.Flush(Zero)
		}
	}

	// Items are laid out Big-Endian; a trailing partial byte holds the low bits.
	itemWriter.WriteUintBE = func(v uint64) error {
		b := make([]byte, itemBytes)
		PutUintBE(b, v, itemBitSize)
		return itemWriter.Write(b)
	}

	return itemWriter
}

// UintBE decodes b as a Big-Endian integer.
func UintBE(b []byte) uint64 {
	var v uint64
	for _, byt := range b {
		v = v<<8 | uint64(byt)
	}
	return v
}

// PutUintBE encodes the low numBits bits of v into b in the layout read by
// BitReader.Read: whole bytes first, Big-Endian, with the remaining bits
// right-aligned in the last byte.
func PutUintBE(b []byte, v uint64, numBits uint) {
	if rem := numBits % 8; rem > 0 {
		b[len(b)-1] = byte(v) & (1<<rem - 1)
		v >>= rem
		b = b[:len(b)-1]
	}
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}
