// Package crosscheck compares this engine's legal moves with independent
// move generators. The references only know classical chess, so only
// Standard positions can be checked.
package crosscheck

import (
	"context"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Diff lists the moves one reference disagrees on.
type Diff struct {
	Reference string
	Missing   []string // Generated by the reference but not by us
	Extra     []string // Generated by us but not by the reference
}

// Agrees reports whether the move sets were identical.
func (d Diff) Agrees() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0
}

// Report is the comparison of one position against every reference.
type Report struct {
	FEN   string
	Ours  []string
	Diffs []Diff
}

// Agrees reports whether every reference agreed.
func (r *Report) Agrees() bool {
	for _, d := range r.Diffs {
		if !d.Agrees() {
			return false
		}
	}
	return true
}

// Compare checks the legal moves of pos against each reference.
func Compare(pos *chess.Position, refs ...Reference) (*Report, error) {
	if pos.Variant != chess.Standard {
		return nil, fmt.Errorf("crosscheck %s: %w", pos.Variant, errors.ErrInvalidVariant)
	}

	report := &Report{FEN: engine.EncodeFEN(pos), Ours: moveStrings(engine.LegalMoves(pos))}
	for _, ref := range refs {
		theirs, err := ref.LegalMoves(report.FEN)
		if err != nil {
			return nil, err
		}
		slices.Sort(theirs)
		report.Diffs = append(report.Diffs, Diff{
			Reference: ref.Name(),
			Missing:   difference(theirs, report.Ours),
			Extra:     difference(report.Ours, theirs),
		})
	}
	return report, nil
}

// Walk compares every position reachable from pos within depth plies. It
// returns the reports that disagree and the number of positions compared,
// stopping early when ctx is done.
func Walk(ctx context.Context, pos *chess.Position, depth int, refs ...Reference) ([]*Report, int, error) {
	var (
		failures []*Report
		checked  int
	)
	var walk func(p *chess.Position, depth int) error
	walk = func(p *chess.Position, depth int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		report, err := Compare(p, refs...)
		if err != nil {
			return err
		}
		checked++
		if !report.Agrees() {
			failures = append(failures, report)
		}
		if depth <= 0 {
			return nil
		}
		for _, mv := range engine.LegalMoves(p) {
			next := p.Clone()
			engine.ApplyMove(next, mv)
			if err := walk(next, depth-1); err != nil {
				return err
			}
		}
		return nil
	}
	err := walk(pos, depth)
	return failures, checked, err
}

func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, mv := range moves {
		out[i] = mv.String()
	}
	slices.Sort(out)
	return out
}

// difference returns the elements of a missing from b. Both are sorted.
func difference(a, b []string) []string {
	var out []string
	for _, s := range a {
		if !slices.Contains(b, s) {
			out = append(out, s)
		}
	}
	return out
}
