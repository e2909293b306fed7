package cmd

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWriteCmd(opts *options) *cobra.Command {
	var (
		sf    spanFlags
		vf    valueFlags
		value string
		out   string
	)

	writeCmd := &cobra.Command{
		Use:   "write",
		Short: "Encode a value into a span of the buffer",
		Long: `write encodes --value as --type into the bits selected by --offset and --bits,
and prints the updated buffer in hex. Bits outside the span are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if value == "" {
				return fmt.Errorf("--value is required")
			}

			data, err := sf.decode()
			if err != nil {
				return err
			}
			s, err := sf.span(data)
			if err != nil {
				return err
			}

			if err := vf.write(s, value); err != nil {
				return err
			}
			opts.logger.Debug("value written",
				zap.String("type", vf.typ),
				zap.String("value", value),
				zap.Int("offset", sf.offset),
				zap.Int("bits", s.Len()),
			)

			if out != "" {
				if err := atomic.WriteFile(out, bytes.NewReader(data)); err != nil {
					return fmt.Errorf("failed to write %s: %w", out, err)
				}
				opts.logger.Info("buffer saved", zap.String("file", out), zap.Int("bytes", len(data)))
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
			return nil
		},
	}

	flags := writeCmd.Flags()
	sf.register(flags)
	flags.StringVar(&vf.typ, "type", "uint64", "value type ("+valueTypes+")")
	flags.Float64Var(&vf.min, "min", 0, "lower bound of the float range")
	flags.Float64Var(&vf.max, "max", 1, "upper bound of the float range")
	flags.StringVar(&value, "value", "", "value to encode (required)")
	flags.StringVar(&out, "out", "", "also write the raw buffer to this file")
	return writeCmd
}
