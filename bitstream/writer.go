package bitstream

import (
	"fmt"

	"github.com/spacemeshos/bitspan/bitcodec"
	"github.com/spacemeshos/bitspan/bitspan"
)

// BitWriter writes bits to a span.
type BitWriter struct {
	span    bitspan.Span
	written int
}

// NewWriter returns a new instance of BitWriter.
func NewWriter(s bitspan.Span) *BitWriter {
	return &BitWriter{span: s}
}

// Len returns the number of bits left to write.
func (bw *BitWriter) Len() int {
	return bw.span.Len()
}

// Written returns the number of bits written so far.
func (bw *BitWriter) Written() int {
	return bw.written
}

func (bw *BitWriter) room(numBits int) error {
	return room(bw.span.Len(), numBits)
}

func room(left, numBits int) error {
	if numBits > left {
		return fmt.Errorf("%w: writing %d bits, %d left", bitspan.ErrOverflow, numBits, left)
	}
	return nil
}

// Write writes numBits of data, regardless of the alignment. Whole bytes are
// written first, followed by the low numBits%8 bits of the next byte.
func (bw *BitWriter) Write(data []byte, numBits int) error {
	if len(data)*8 < numBits {
		return fmt.Errorf("%w: %d bits requested from %d bytes", bitspan.ErrOutOfRange, numBits, len(data))
	}
	if err := bw.room(numBits); err != nil {
		return err
	}

	var idx int
	for numBits >= 8 {
		if err := bw.WriteByte(data[idx]); err != nil {
			return err
		}
		numBits -= 8
		idx++
	}

	if numBits > 0 {
		if err := bitcodec.WriteUint8N(&bw.span, data[idx], numBits); err != nil {
			return err
		}
		bw.written += numBits
	}

	return nil
}

// WriteUint64BE writes the numBits LS bits of val, in Big-Endian order,
// regardless of the alignment.
func (bw *BitWriter) WriteUint64BE(val uint64, numBits int) error {
	if numBits == 0 {
		return nil
	}
	if err := bw.room(numBits); err != nil {
		return err
	}
	if err := bitcodec.WriteUint64N(&bw.span, val, numBits); err != nil {
		return err
	}
	bw.written += numBits
	return nil
}

// WriteByte writes a single byte, regardless of the alignment.
func (bw *BitWriter) WriteByte(b byte) error {
	if err := bw.room(8); err != nil {
		return err
	}
	if err := bitcodec.WriteUint8(&bw.span, b); err != nil {
		return err
	}
	bw.written += 8
	return nil
}

// WriteBit writes a single bit.
func (bw *BitWriter) WriteBit(bit Bit) error {
	if err := bw.room(1); err != nil {
		return err
	}
	if err := bitcodec.WriteBool(&bw.span, bool(bit)); err != nil {
		return err
	}
	bw.written++
	return nil
}

// Flush fills the rest of the current byte with bit, stopping early at the
// end of the span.
func (bw *BitWriter) Flush(bit Bit) error {
	for bw.span.Offset() != 0 && bw.span.Len() > 0 {
		if err := bw.WriteBit(bit); err != nil {
			return err
		}
	}

	return nil
}
