package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitspan/bitspan"
)

func newSplitCmd(opts *options) *cobra.Command {
	var (
		sf spanFlags
		at int
	)

	splitCmd := &cobra.Command{
		Use:   "split",
		Short: "Split a span of the buffer in two",
		Long:  `split splits the bits selected by --offset and --bits at --at, and prints both halves.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := sf.decode()
			if err != nil {
				return err
			}
			s, err := sf.readOnlySpan(data)
			if err != nil {
				return err
			}

			left, right, err := s.Split(at)
			if err != nil {
				return err
			}
			opts.logger.Debug("span split", zap.Int("left", left.Len()), zap.Int("right", right.Len()))

			printHalf(cmd, "left", left)
			printHalf(cmd, "right", right)
			return nil
		},
	}

	flags := splitCmd.Flags()
	sf.register(flags)
	flags.IntVar(&at, "at", 0, "number of bits in the left half")
	return splitCmd
}

func printHalf(cmd *cobra.Command, name string, s bitspan.ReadOnlySpan) {
	fmt.Fprintf(cmd.OutOrStdout(), "%-5s offset=%d bits=%d %s\n", name, s.Offset(), s.Len(), s)
}
