package config

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// MaxPerftDepth bounds requested perft depths.
const MaxPerftDepth = 12

// PerftConfig holds settings for node counting and move verification.
type PerftConfig struct {
	// Depth of a single perft run (0 = none)
	Depth int

	// Divide reports the count below each root move
	Divide bool

	// SuiteFile names a perft suite to run; "default" selects the built-in one
	SuiteFile string

	// Verify compares legal moves with the reference generators
	Verify bool

	// VerifyDepth is how many plies below the position to verify
	VerifyDepth int
}

// NewPerftConfig creates a PerftConfig with default values.
// All fields use Go zero values: no perft, no suite, no verification.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth (%d) outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.VerifyDepth < 0 || p.VerifyDepth > MaxPerftDepth {
		return fmt.Errorf("verify depth (%d) outside 0..%d: %w", p.VerifyDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Divide && p.Depth == 0 {
		return fmt.Errorf("divide needs a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
