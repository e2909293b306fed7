package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/spacemeshos/bitspan/bitspan"
)

// spanFlags select a span of a hex-encoded buffer.
type spanFlags struct {
	hex    string
	offset int
	bits   int
}

func (f *spanFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.hex, "hex", "", "buffer, in hex")
	flags.IntVar(&f.offset, "offset", 0, "absolute index of the first bit of the span")
	flags.IntVar(&f.bits, "bits", -1, "number of bits of the span (default: to the end of the buffer)")
}

func (f *spanFlags) decode() ([]byte, error) {
	data, err := hex.DecodeString(f.hex)
	if err != nil {
		return nil, fmt.Errorf("invalid --hex: %w", err)
	}
	return data, nil
}

func (f *spanFlags) length(data []byte) int {
	if f.bits < 0 {
		return len(data)*8 - f.offset
	}
	return f.bits
}

func (f *spanFlags) span(data []byte) (bitspan.Span, error) {
	return bitspan.At(data, f.offset, f.length(data))
}

func (f *spanFlags) readOnlySpan(data []byte) (bitspan.ReadOnlySpan, error) {
	return bitspan.ReadOnlyAt(data, f.offset, f.length(data))
}
