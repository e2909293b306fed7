package cmd

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitspan/bitspan"
)

func newMapCmd(opts *options) *cobra.Command {
	var offset, bits, numBytes int

	mapCmd := &cobra.Command{
		Use:   "map",
		Short: "Print the bit-index mapping of a span",
		Long: `map prints which bytes a span of --bits bits starting at bit --offset (0-7) of
a --bytes long buffer touches, and how its first and last byte are masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate the geometry the same way span construction does.
			if _, err := bitspan.New(make([]byte, numBytes), offset, bits); err != nil {
				return err
			}

			m := bitspan.Map(offset, bits, numBytes)
			opts.logger.Debug("mapping computed", zap.Int("bytes", m.NumBytes))
			spew.Fdump(cmd.OutOrStdout(), m)
			return nil
		},
	}

	flags := mapCmd.Flags()
	flags.IntVar(&offset, "offset", 0, "bit offset of the span within its first byte (0-7)")
	flags.IntVar(&bits, "bits", 8, "number of bits of the span")
	flags.IntVar(&numBytes, "bytes", 1, "number of bytes of the buffer")
	return mapCmd
}
