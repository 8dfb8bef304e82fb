package suite

import (
	"context"
	"time"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// Result is the outcome of one case at one depth.
type Result struct {
	Case    string
	Variant chess.Variant
	Depth   int
	Want    uint64
	Got     uint64
}

// Passed reports whether the count matched.
func (r Result) Passed() bool {
	return r.Got == r.Want
}

// Report collects the results of a suite run in case and depth order.
type Report struct {
	Suite    string
	Results  []Result
	Failures int
	Elapsed  time.Duration
}

// Nodes returns the total number of leaf nodes counted.
func (r *Report) Nodes() uint64 {
	var total uint64
	for _, result := range r.Results {
		total += result.Got
	}
	return total
}

// Run counts every case at every depth it lists, spreading the work over
// the given number of workers.
func Run(ctx context.Context, s *Suite, workers int) (*Report, error) {
	start := time.Now()

	var (
		items   []worker.WorkItem
		results []Result
	)
	for _, c := range s.Cases {
		pos, err := c.Position()
		if err != nil {
			return nil, err
		}
		for depth := 1; depth <= c.MaxDepth(); depth++ {
			items = append(items, worker.WorkItem{
				Position: pos,
				Depth:    depth,
				Label:    c.Name,
				Index:    len(items),
			})
			results = append(results, Result{
				Case:    c.Name,
				Variant: pos.Variant,
				Depth:   depth,
				Want:    c.Nodes[depth-1],
			})
		}
	}

	counted, err := worker.Run(ctx, items, workers, engine.PerftItem)
	if err != nil {
		return nil, err
	}

	report := &Report{Suite: s.Name, Results: results}
	for _, done := range counted {
		report.Results[done.Index].Got = done.Nodes
		if !report.Results[done.Index].Passed() {
			report.Failures++
		}
	}
	report.Elapsed = time.Since(start)
	return report, nil
}
