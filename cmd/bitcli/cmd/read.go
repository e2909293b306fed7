package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newReadCmd(opts *options) *cobra.Command {
	var (
		sf spanFlags
		vf valueFlags
	)

	readCmd := &cobra.Command{
		Use:   "read",
		Short: "Decode a value from a span of the buffer",
		Long: `read decodes the bits selected by --offset and --bits as a value of --type.
Floats are dequantized into the range given by --min and --max.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := sf.decode()
			if err != nil {
				return err
			}
			s, err := sf.readOnlySpan(data)
			if err != nil {
				return err
			}

			opts.logger.Debug("reading value",
				zap.String("type", vf.typ),
				zap.Int("offset", sf.offset),
				zap.Int("bits", s.Len()),
			)
			v, err := vf.read(s)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}

	flags := readCmd.Flags()
	sf.register(flags)
	flags.StringVar(&vf.typ, "type", "uint64", "value type ("+valueTypes+")")
	flags.Float64Var(&vf.min, "min", 0, "lower bound of the float range")
	flags.Float64Var(&vf.max, "max", 1, "upper bound of the float range")
	flags.BoolVar(&vf.signExtend, "sign-extend", false, "extend the sign bit of signed values narrower than their type")
	return readCmd
}
