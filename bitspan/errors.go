package bitspan

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for invalid span construction (offset, length
	// or buffer bounds), split offsets outside the span, and bit widths
	// outside what a type or codec supports (see BitWidthError).
	ErrOutOfRange = errors.New("out of range")

	// ErrOverflow is returned when slicing past the end of the underlying
	// buffer, and by bitstream writers when a write does not fit.
	ErrOverflow = errors.New("overflow")
)

// BitWidthError reports a requested bit count outside [Min, Max].
type BitWidthError struct {
	Requested int
	Min       int
	Max       int
}

func (err BitWidthError) Error() string {
	if err.Requested < err.Min {
		return fmt.Sprintf("requested %d bits, minimum %d", err.Requested, err.Min)
	}
	return fmt.Sprintf("requested %d bits, maximum %d", err.Requested, err.Max)
}

func (err BitWidthError) Unwrap() error {
	return ErrOutOfRange
}

// CheckWidth returns a BitWidthError if numBits is outside [min, max].
func CheckWidth(numBits, min, max int) error {
	if numBits < min || numBits > max {
		return BitWidthError{Requested: numBits, Min: min, Max: max}
	}
	return nil
}
