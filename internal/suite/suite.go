// Package suite loads and runs perft suites: lists of positions with the
// expected leaf-node counts at increasing depths.
package suite

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Suite is a named list of perft cases.
type Suite struct {
	Name  string `toml:"name,omitempty" yaml:"name,omitempty"`
	Cases []Case `toml:"case" yaml:"cases"`
}

// Case is one position with expected perft counts. Nodes[d-1] is the
// expected count at depth d.
type Case struct {
	Name    string   `toml:"name" yaml:"name"`
	FEN     string   `toml:"fen" yaml:"fen"`
	Variant string   `toml:"variant,omitempty" yaml:"variant,omitempty"`
	Nodes   []uint64 `toml:"nodes" yaml:"nodes,flow"`
}

// Position decodes the case's FEN under its variant.
func (c Case) Position() (*chess.Position, error) {
	variant, ok := chess.ParseVariant(c.Variant)
	if !ok {
		return nil, fmt.Errorf("%q: %w", c.Variant, errors.ErrInvalidVariant)
	}
	return engine.DecodeFEN(c.FEN, variant)
}

// MaxDepth returns the deepest depth with an expected count.
func (c Case) MaxDepth() int {
	return len(c.Nodes)
}

// Validate checks every case, naming unnamed ones after their index.
// The source names the file (or other input) in errors.
func (s *Suite) Validate(source string) error {
	if len(s.Cases) == 0 {
		return &errors.ParseError{Err: errors.ErrInvalidSuite, Input: source, Expected: "at least one case"}
	}
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case %d", i+1)
		}
		field := fmt.Sprintf("case %q", c.Name)
		if c.FEN == "" {
			return &errors.ParseError{Err: errors.ErrInvalidSuite, Input: source, Field: field, Expected: "a fen"}
		}
		if len(c.Nodes) == 0 {
			return &errors.ParseError{Err: errors.ErrInvalidSuite, Input: source, Field: field, Expected: "node counts"}
		}
		if _, err := c.Position(); err != nil {
			return &errors.ParseError{
				Err:   fmt.Errorf("%w: %w", errors.ErrInvalidSuite, err),
				Input: source,
				Field: field,
			}
		}
	}
	return nil
}
