// Package bitstream provides cursors over bitspans that read and write
// consecutive bits, following the MSB pattern, where most-significant bits
// are written/read first.
package bitstream

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)
