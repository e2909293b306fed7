package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bitspan/config"
)

var (
	// Version is set by main.
	Version = "0.0.0"

	// Commit is set by main.
	Commit = ""
)

// options is shared by the root command and its subcommands.
type options struct {
	configFile string
	cfg        *config.Config
	logger     *zap.Logger
}

// Execute runs the root command and exits with a non-zero status on failure.
func Execute() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(opts *options) *cobra.Command {
	opts.cfg = config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "bitcli",
		Short: "Inspect and edit bit-packed buffers",
		Long: `bitcli reads and writes integers, booleans and quantized floats at arbitrary
bit positions of a hex-encoded buffer. For more details take a look at the subcommands.`,
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "path to configuration file (default "+config.DefaultConfigFile+")")
	flags.String("log-level", opts.cfg.LogLevel, "log level (debug, info, warn, error, dpanic, panic, fatal)")

	rootCmd.AddCommand(
		newReadCmd(opts),
		newWriteCmd(opts),
		newMapCmd(opts),
		newSplitCmd(opts),
	)
	return rootCmd
}

// load reads the config file, if any, and applies the flags on top of it.
func (opts *options) load(cmd *cobra.Command) error {
	vip := viper.New()
	if err := loadConfigFile(vip, opts.configFile); err != nil {
		return err
	}

	// Ensure cli args are higher priority than the config file.
	if err := vip.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	if err := vip.Unmarshal(opts.cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := opts.cfg.Validate(); err != nil {
		return err
	}

	if opts.logger == nil {
		lvl, _ := opts.cfg.Level()
		opts.logger = newLogger(cmd.ErrOrStderr(), lvl)
	}
	opts.logger.Debug("config loaded",
		zap.String("file", vip.ConfigFileUsed()),
		zap.String("version", Version),
		zap.String("commit", Commit),
	)
	return nil
}

// loadConfigFile tolerates a missing default config file, but not a missing
// explicitly requested one.
func loadConfigFile(vip *viper.Viper, path string) error {
	vip.SetConfigFile(config.ConfigFile(path))
	err := vip.ReadInConfig()
	switch {
	case err == nil:
		return nil
	case path == "" && errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("failed to read config file: %w", err)
	}
}

func newLogger(w io.Writer, lvl zapcore.Level) *zap.Logger {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		MessageKey:     "M",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), lvl)
	return zap.New(core).Named("bitcli")
}
