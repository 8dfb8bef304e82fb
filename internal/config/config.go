// Package config provides configuration for the chesscore command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Starting position
	Variant chess.Variant
	Seed    uint64 // Chess960 setup number, reduced modulo 960
	FEN     string // Overrides the variant's initial position when set
	Moves   string // Long algebraic moves played before anything else

	Verbosity int // 0=nothing, 1=summaries, 2=running commentary
	Workers   int // Worker goroutines for perft and suites

	Output *OutputConfig
	Perft  *PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Variant:    chess.Standard,
		Seed:       518,
		Verbosity:  1,
		Workers:    1,
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks the configuration for values no command can use.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity (%d) must not be negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return c.Perft.Validate()
}
