package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/spacemeshos/bitspan/bitcodec"
	"github.com/spacemeshos/bitspan/bitspan"
	"github.com/spacemeshos/bitspan/config"
)

type Config = config.Config

// codec round trips a value derived from i through a span of numBits bits.
type codec struct {
	name      string
	numBits   int
	roundTrip func(s bitspan.Span, i int) error
}

type testCase struct {
	codec  codec
	offset int
}

func main() {
	cfg := config.DefaultConfig()
	flag.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "number of write+read round trips per test")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of tests executed concurrently")
	flag.IntVar(&cfg.PaddingBytes, "padding", cfg.PaddingBytes, "extra bytes allocated after each span")
	flag.StringVar(&cfg.LogLevel, "logLevel", cfg.LogLevel, "log level (debug, info, warn, error, dpanic, panic, fatal)")
	single := flag.Bool("single", false, "whether to execute a single test instead of the complete set")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalln("invalid bench config:", err)
	}
	logger := newLogger(cfg)
	defer logger.Sync()

	logger.Info("bench config",
		zap.Int("iterations", cfg.Iterations),
		zap.Int("workers", cfg.Workers),
		zap.Int("padding", cfg.PaddingBytes),
	)

	cases := genTestCases(*single)
	data := make([][]string, len(cases))

	var eg errgroup.Group
	eg.SetLimit(cfg.Workers)
	for i, tc := range cases {
		i, tc := i, tc
		eg.Go(func() error {
			logger.Debug("test starting", zap.Int("test", i+1), zap.String("codec", tc.codec.name), zap.Int("offset", tc.offset))
			row, err := run(cfg, tc)
			if err != nil {
				return fmt.Errorf("test %v/%v (%s, offset %d): %w", i+1, len(cases), tc.codec.name, tc.offset, err)
			}
			data[i] = row
			logger.Debug("test completed", zap.Int("test", i+1), zap.String("elapsed", row[len(row)-2]))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logger.Fatal("bench failed", zap.Error(err))
	}

	header := []string{"codec", "offset", "bits", "buffer", "moved", "elapsed", "ops/s"}
	report(cfg, header, data)
}

func newLogger(cfg *Config) *zap.Logger {
	lvl, _ := cfg.Level()
	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(lvl),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalln("failed to initialize zap logger:", err)
	}
	return logger.Named("bench")
}

func run(cfg *Config, tc testCase) ([]string, error) {
	numBytes := (tc.offset+tc.codec.numBits+7)/8 + cfg.PaddingBytes
	buf := make([]byte, numBytes)
	s, err := bitspan.New(buf, tc.offset, tc.codec.numBits)
	if err != nil {
		return nil, err
	}

	t := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		if err := tc.codec.roundTrip(s, i); err != nil {
			return nil, err
		}
	}
	elapsed := time.Since(t)

	moved := uint64(tc.codec.numBits) * uint64(cfg.Iterations) * 2 / 8
	opsPerSec := float64(cfg.Iterations) / math.Max(elapsed.Seconds(), 1e-9)

	return []string{
		tc.codec.name,
		strconv.Itoa(tc.offset),
		strconv.Itoa(tc.codec.numBits),
		bytefmt.ByteSize(uint64(numBytes)),
		bytefmt.ByteSize(moved),
		elapsed.Round(time.Microsecond).String(),
		strconv.FormatFloat(opsPerSec, 'f', 0, 64),
	}, nil
}

func report(cfg *Config, header []string, data [][]string) {
	fmt.Printf("\n\nBENCHMARKS: iterations=%v, workers=%v\n", cfg.Iterations, cfg.Workers)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetBorder(true)
	table.AppendBulk(data)
	table.Render()
}

func genTestCases(single bool) []testCase {
	if single {
		return []testCase{{codec: binaryCodec[uint32]("uint32"), offset: 3}}
	}

	codecs := []codec{
		binaryCodec[int8]("int8"),
		binaryCodec[uint8]("uint8"),
		binaryCodec[int16]("int16"),
		binaryCodec[uint16]("uint16"),
		binaryCodec[int32]("int32"),
		binaryCodec[uint32]("uint32"),
		binaryCodec[int64]("int64"),
		binaryCodec[uint64]("uint64"),
		boolCodec(),
		singleCodec(20),
		doubleCodec(40),
	}

	cases := make([]testCase, 0, len(codecs)*8)
	for _, c := range codecs {
		for offset := 0; offset < 8; offset++ {
			cases = append(cases, testCase{codec: c, offset: offset})
		}
	}
	return cases
}

func binaryCodec[T bitspan.Binary](name string) codec {
	numBits := bitspan.Width[T]()
	return codec{
		name:    name,
		numBits: numBits,
		roundTrip: func(s bitspan.Span, i int) error {
			v := T(i)
			w := s
			if err := bitcodec.WriteBinary(&w, v, numBits); err != nil {
				return err
			}
			r := s.ReadOnly()
			got, err := bitcodec.ReadBinary[T](&r, numBits)
			if err != nil {
				return err
			}
			if got != v {
				return fmt.Errorf("read %v, wrote %v", got, v)
			}
			return nil
		},
	}
}

func boolCodec() codec {
	return codec{
		name:    "bool",
		numBits: 1,
		roundTrip: func(s bitspan.Span, i int) error {
			v := i%2 == 1
			w := s
			if err := bitcodec.WriteBool(&w, v); err != nil {
				return err
			}
			r := s.ReadOnly()
			got, err := bitcodec.ReadBool(&r)
			if err != nil {
				return err
			}
			if got != v {
				return fmt.Errorf("read %v, wrote %v", got, v)
			}
			return nil
		},
	}
}

func singleCodec(numBits int) codec {
	const minimum, maximum = -100, 100
	step := float64(maximum-minimum) / float64(uint64(1)<<numBits-1)
	return codec{
		name:    "float32/" + strconv.Itoa(numBits),
		numBits: numBits,
		roundTrip: func(s bitspan.Span, i int) error {
			v := float32(minimum + i%(maximum-minimum))
			w := s
			if err := bitcodec.WriteSingleRanged(&w, v, minimum, maximum, numBits); err != nil {
				return err
			}
			r := s.ReadOnly()
			got, err := bitcodec.ReadSingleRanged(&r, minimum, maximum, numBits)
			if err != nil {
				return err
			}
			if math.Abs(float64(got-v)) > step {
				return fmt.Errorf("read %v, wrote %v", got, v)
			}
			return nil
		},
	}
}

func doubleCodec(numBits int) codec {
	const minimum, maximum = -1e6, 1e6
	step := (maximum - minimum) / float64(uint64(1)<<numBits-1)
	return codec{
		name:    "float64/" + strconv.Itoa(numBits),
		numBits: numBits,
		roundTrip: func(s bitspan.Span, i int) error {
			v := minimum + float64(i%int(maximum-minimum))
			w := s
			if err := bitcodec.WriteDoubleRanged(&w, v, minimum, maximum, numBits); err != nil {
				return err
			}
			r := s.ReadOnly()
			got, err := bitcodec.ReadDoubleRanged(&r, minimum, maximum, numBits)
			if err != nil {
				return err
			}
			if math.Abs(got-v) > step {
				return fmt.Errorf("read %v, wrote %v", got, v)
			}
			return nil
		},
	}
}
