package bitstream

import (
	"io"

	"github.com/spacemeshos/bitspan/bitcodec"
	"github.com/spacemeshos/bitspan/bitspan"
)

// BitReader reads bits from a read-only span.
type BitReader struct {
	span bitspan.ReadOnlySpan
}

// NewReader returns a new instance of BitReader.
func NewReader(s bitspan.ReadOnlySpan) *BitReader {
	return &BitReader{span: s}
}

// Len returns the number of unread bits.
func (br *BitReader) Len() int {
	return br.span.Len()
}

func (br *BitReader) need(numBits int) error {
	return need(br.span.Len(), numBits)
}

// need returns io.EOF if nothing is left to read, and io.ErrUnexpectedEOF if
// fewer than numBits bits are left.
func need(left, numBits int) error {
	switch {
	case numBits <= 0:
		return nil
	case left == 0:
		return io.EOF
	case left < numBits:
		return io.ErrUnexpectedEOF
	}
	return nil
}

// Read reads the next numBits bits, regardless of the alignment. Whole bytes
// come first; the remaining bits are right-aligned in the last byte.
func (br *BitReader) Read(numBits uint) ([]byte, error) {
	if err := br.need(int(numBits)); err != nil {
		return nil, err
	}

	size := numBits / 8
	if numBits%8 > 0 {
		size++
	}

	data := make([]byte, size)
	var idx int

	for numBits >= 8 {
		byt, err := bitcodec.ReadUint8(&br.span)
		if err != nil {
			return nil, err
		}

		data[idx] = byt
		idx++
		numBits -= 8
	}

	if numBits > 0 {
		lastByte, err := bitcodec.ReadUint8N(&br.span, int(numBits))
		if err != nil {
			return nil, err
		}
		data[idx] = lastByte
	}

	return data, nil
}

// ReadUint64BE reads the next numBits bits as uint64 in Big-Endian order,
// regardless of the alignment.
func (br *BitReader) ReadUint64BE(numBits int) (uint64, error) {
	if numBits == 0 {
		return 0, nil
	}
	if err := br.need(numBits); err != nil {
		return 0, err
	}
	return bitcodec.ReadUint64N(&br.span, numBits)
}

// ReadByte reads the next 8 bits, regardless of the alignment.
func (br *BitReader) ReadByte() (byte, error) {
	if err := br.need(8); err != nil {
		return 0, err
	}
	return bitcodec.ReadUint8(&br.span)
}

// ReadBit reads the next single bit.
func (br *BitReader) ReadBit() (Bit, error) {
	if err := br.need(1); err != nil {
		return Zero, err
	}
	v, err := bitcodec.ReadBool(&br.span)
	return Bit(v), err
}
