package bitcodec

import (
	"math"

	"github.com/spacemeshos/bitspan/bitspan"
)

// Floats are quantized linearly onto the unsigned integers [0, 2^numBits-1].
// Single precision values use a 32-bit carrier and double precision values a
// 64-bit one, which bounds numBits. Values outside the unit (or given) range
// are clamped to its ends. A degenerate range (minimum == maximum) always
// decodes to minimum. A range with maximum < minimum is accepted and encodes
// the values in reverse order.

type floating interface {
	~float32 | ~float64
}

type carrier interface {
	~uint32 | ~uint64
}

// maxBinValue returns the largest value representable in numBits bits.
func maxBinValue[B carrier](numBits int) B {
	if numBits >= bitspan.Width[B]() {
		return ^B(0)
	}
	return B(1)<<numBits - 1
}

func quantize[F floating, B carrier](value F, numBits int) B {
	maxBin := maxBinValue[B](numBits)
	maxRaw := F(maxBin)
	raw := value * maxRaw

	switch {
	case !(raw > 0): // also catches NaN
		return 0
	case raw >= maxRaw:
		return maxBin
	}

	bin := B(math.Round(float64(raw)))
	if bin > maxBin {
		bin = maxBin
	}
	return bin
}

func dequantize[F floating, B carrier](bin B, numBits int) F {
	return F(bin) / F(maxBinValue[B](numBits))
}

func toUnit[F floating](value, minimum, maximum F) F {
	span := maximum - minimum
	if span == 0 {
		return 0
	}
	return (value - minimum) / span
}

func fromUnit[F floating](pct, minimum, maximum F) F {
	return pct*(maximum-minimum) + minimum
}

// ReadSingle01 reads a float32 in [0, 1] quantized to numBits (1-32) bits.
func ReadSingle01[S bitspan.Bits[S]](s *S, numBits int) (float32, error) {
	bin, err := ReadUint32N(s, numBits)
	if err != nil {
		return 0, err
	}
	return dequantize[float32](bin, numBits), nil
}

// ReadDouble01 reads a float64 in [0, 1] quantized to numBits (1-64) bits.
func ReadDouble01[S bitspan.Bits[S]](s *S, numBits int) (float64, error) {
	bin, err := ReadUint64N(s, numBits)
	if err != nil {
		return 0, err
	}
	return dequantize[float64](bin, numBits), nil
}

// ReadSingleRanged reads a float32 in [minimum, maximum] quantized to numBits
// (1-32) bits.
func ReadSingleRanged[S bitspan.Bits[S]](s *S, minimum, maximum float32, numBits int) (float32, error) {
	pct, err := ReadSingle01(s, numBits)
	if err != nil {
		return 0, err
	}
	return fromUnit(pct, minimum, maximum), nil
}

// ReadDoubleRanged reads a float64 in [minimum, maximum] quantized to numBits
// (1-64) bits.
func ReadDoubleRanged[S bitspan.Bits[S]](s *S, minimum, maximum float64, numBits int) (float64, error) {
	pct, err := ReadDouble01(s, numBits)
	if err != nil {
		return 0, err
	}
	return fromUnit(pct, minimum, maximum), nil
}

// WriteSingle01 writes a float32 in [0, 1] quantized to numBits (1-32) bits.
func WriteSingle01(s *bitspan.Span, value float32, numBits int) error {
	if err := bitspan.CheckWidth(numBits, 1, 32); err != nil {
		return err
	}
	return WriteUint32N(s, quantize[float32, uint32](value, numBits), numBits)
}

// WriteDouble01 writes a float64 in [0, 1] quantized to numBits (1-64) bits.
func WriteDouble01(s *bitspan.Span, value float64, numBits int) error {
	if err := bitspan.CheckWidth(numBits, 1, 64); err != nil {
		return err
	}
	return WriteUint64N(s, quantize[float64, uint64](value, numBits), numBits)
}

// WriteSingleRanged writes a float32 in [minimum, maximum] quantized to
// numBits (1-32) bits.
func WriteSingleRanged(s *bitspan.Span, value, minimum, maximum float32, numBits int) error {
	return WriteSingle01(s, toUnit(value, minimum, maximum), numBits)
}

// WriteDoubleRanged writes a float64 in [minimum, maximum] quantized to
// numBits (1-64) bits.
func WriteDoubleRanged(s *bitspan.Span, value, minimum, maximum float64, numBits int) error {
	return WriteDouble01(s, toUnit(value, minimum, maximum), numBits)
}
