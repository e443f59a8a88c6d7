package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("aoc: invalid configuration")

// Config holds runner settings filled from command-line flags.
type Config struct {
	// Day selects one puzzle. 0 runs every registered day.
	Day int
	// Input overrides the input file path. Only valid with a single Day.
	Input string
	// DataDir holds dayNN.txt input files.
	DataDir string
	// Repeat runs each day this many times and reports the fastest run.
	Repeat int
	// LogLevel is a logrus level name.
	LogLevel string
	// LogFormat is "text" or "json".
	LogFormat string
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		DataDir:   "data",
		Repeat:    1,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// ParseFlags fills a Config from args, writing usage errors to out.
func ParseFlags(args []string, out io.Writer) (Config, error) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&cfg.Day, "day", cfg.Day, "puzzle day to run; 0 runs every registered day")
	fs.StringVar(&cfg.Input, "input", cfg.Input, "input file; defaults to <data-dir>/dayNN.txt")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory holding dayNN.txt inputs")
	fs.IntVar(&cfg.Repeat, "repeat", cfg.Repeat, "runs per day; the fastest is reported")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text or json)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks field ranges and combinations.
func (c Config) Validate() error {
	switch {
	case c.Day < 0 || c.Day > 25:
		return fmt.Errorf("%w: day %d not in 0..25", ErrInvalidConfig, c.Day)
	case c.Input != "" && c.Day == 0:
		return fmt.Errorf("%w: -input requires -day", ErrInvalidConfig)
	case c.Repeat < 1:
		return fmt.Errorf("%w: repeat must be at least 1 (%d)", ErrInvalidConfig, c.Repeat)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// InputPath returns the input file for day.
func (c Config) InputPath(day int) string {
	if c.Input != "" {
		return c.Input
	}
	return filepath.Join(c.DataDir, fmt.Sprintf("day%02d.txt", day))
}
