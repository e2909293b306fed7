package cmd

import (
	"fmt"
	"strconv"

	"github.com/spacemeshos/bitspan/bitcodec"
	"github.com/spacemeshos/bitspan/bitspan"
)

const valueTypes = "int8, int16, int32, int64, uint8, uint16, uint32, uint64, bool, float32, float64"

// valueFlags describe how the bits of a span are interpreted.
type valueFlags struct {
	typ        string
	min        float64
	max        float64
	signExtend bool
}

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func (f *valueFlags) read(s bitspan.ReadOnlySpan) (string, error) {
	n := s.Len()
	switch f.typ {
	case "int8":
		return readSigned(s, n, f.signExtend, bitcodec.ReadInt8N[bitspan.ReadOnlySpan])
	case "int16":
		return readSigned(s, n, f.signExtend, bitcodec.ReadInt16N[bitspan.ReadOnlySpan])
	case "int32":
		return readSigned(s, n, f.signExtend, bitcodec.ReadInt32N[bitspan.ReadOnlySpan])
	case "int64":
		return readSigned(s, n, f.signExtend, bitcodec.ReadInt64N[bitspan.ReadOnlySpan])
	case "uint8":
		return readUnsigned(s, n, bitcodec.ReadUint8N[bitspan.ReadOnlySpan])
	case "uint16":
		return readUnsigned(s, n, bitcodec.ReadUint16N[bitspan.ReadOnlySpan])
	case "uint32":
		return readUnsigned(s, n, bitcodec.ReadUint32N[bitspan.ReadOnlySpan])
	case "uint64":
		return readUnsigned(s, n, bitcodec.ReadUint64N[bitspan.ReadOnlySpan])
	case "bool":
		v, err := bitcodec.ReadBool(&s)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v), nil
	case "float32":
		v, err := bitcodec.ReadSingleRanged(&s, float32(f.min), float32(f.max), n)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case "float64":
		v, err := bitcodec.ReadDoubleRanged(&s, f.min, f.max, n)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}
	return "", f.unknownType()
}

func (f *valueFlags) write(s bitspan.Span, value string) error {
	n := s.Len()
	switch f.typ {
	case "int8":
		return writeSigned(s, value, n, bitcodec.WriteInt8N)
	case "int16":
		return writeSigned(s, value, n, bitcodec.WriteInt16N)
	case "int32":
		return writeSigned(s, value, n, bitcodec.WriteInt32N)
	case "int64":
		return writeSigned(s, value, n, bitcodec.WriteInt64N)
	case "uint8":
		return writeUnsigned(s, value, n, bitcodec.WriteUint8N)
	case "uint16":
		return writeUnsigned(s, value, n, bitcodec.WriteUint16N)
	case "uint32":
		return writeUnsigned(s, value, n, bitcodec.WriteUint32N)
	case "uint64":
		return writeUnsigned(s, value, n, bitcodec.WriteUint64N)
	case "bool":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid --value %q: %w", value, err)
		}
		return bitcodec.WriteBool(&s, v)
	case "float32":
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("invalid --value %q: %w", value, err)
		}
		return bitcodec.WriteSingleRanged(&s, float32(v), float32(f.min), float32(f.max), n)
	case "float64":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid --value %q: %w", value, err)
		}
		return bitcodec.WriteDoubleRanged(&s, v, f.min, f.max, n)
	}
	return f.unknownType()
}

func (f *valueFlags) unknownType() error {
	return fmt.Errorf("invalid --type %q; expected one of: %s", f.typ, valueTypes)
}

func readSigned[T bitcodec.Signed](s bitspan.ReadOnlySpan, numBits int, extend bool,
	read func(*bitspan.ReadOnlySpan, int) (T, error),
) (string, error) {
	v, err := read(&s, numBits)
	if err != nil {
		return "", err
	}
	if extend {
		v = bitcodec.SignExtend(v, numBits)
	}
	return strconv.FormatInt(int64(v), 10), nil
}

func readUnsigned[T unsigned](s bitspan.ReadOnlySpan, numBits int,
	read func(*bitspan.ReadOnlySpan, int) (T, error),
) (string, error) {
	v, err := read(&s, numBits)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(uint64(v), 10), nil
}

func writeSigned[T bitcodec.Signed](s bitspan.Span, value string, numBits int,
	write func(*bitspan.Span, T, int) error,
) error {
	v, err := strconv.ParseInt(value, 0, bitspan.Width[T]())
	if err != nil {
		return fmt.Errorf("invalid --value %q: %w", value, err)
	}
	return write(&s, T(v), numBits)
}

func writeUnsigned[T unsigned](s bitspan.Span, value string, numBits int,
	write func(*bitspan.Span, T, int) error,
) error {
	v, err := strconv.ParseUint(value, 0, bitspan.Width[T]())
	if err != nil {
		return fmt.Errorf("invalid --value %q: %w", value, err)
	}
	return write(&s, T(v), numBits)
}
