package config

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/spacemeshos/smutil"
	"go.uber.org/zap/zapcore"
)

const (
	MaxIterations = 1 << 30
	MinIterations = 1

	MaxPaddingBytes = 64
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultLogLevel       = "info"
	DefaultIterations     = 1 << 16
	DefaultPaddingBytes   = 1
)

var (
	DefaultHomeDir    = filepath.Join(smutil.GetUserHomeDirectory(), ".bitspan")
	DefaultConfigFile = filepath.Join(DefaultHomeDir, DefaultConfigFileName)
)

// Config holds the options shared by bitcli and the bench harness.
type Config struct {
	LogLevel string `mapstructure:"log-level"`

	// Bench params.
	Iterations   int `mapstructure:"iterations"`
	Workers      int `mapstructure:"workers"`
	PaddingBytes int `mapstructure:"padding-bytes"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:     DefaultLogLevel,
		Iterations:   DefaultIterations,
		Workers:      runtime.NumCPU(),
		PaddingBytes: DefaultPaddingBytes,
	}
}

// Level returns the parsed LogLevel.
func (cfg *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(cfg.LogLevel)
}

func (cfg *Config) Validate() error {
	if _, err := cfg.Level(); err != nil {
		return fmt.Errorf("invalid `LogLevel`; expected: one of debug, info, warn, error, dpanic, panic, fatal, given: %q", cfg.LogLevel)
	}

	if cfg.Iterations > MaxIterations {
		return fmt.Errorf("invalid `Iterations`; expected: <= %d, given: %d", MaxIterations, cfg.Iterations)
	}

	if cfg.Iterations < MinIterations {
		return fmt.Errorf("invalid `Iterations`; expected: >= %d, given: %d", MinIterations, cfg.Iterations)
	}

	if cfg.Workers < 1 {
		return fmt.Errorf("invalid `Workers`; expected: >= 1, given: %d", cfg.Workers)
	}

	if cfg.PaddingBytes < 0 || cfg.PaddingBytes > MaxPaddingBytes {
		return fmt.Errorf("invalid `PaddingBytes`; expected: 0 to %d, given: %d", MaxPaddingBytes, cfg.PaddingBytes)
	}

	return nil
}

// ConfigFile returns the canonical location of the config file, falling back
// to DefaultConfigFile when none is given.
func ConfigFile(path string) string {
	if path == "" {
		return DefaultConfigFile
	}
	return smutil.GetCanonicalPath(path)
}
