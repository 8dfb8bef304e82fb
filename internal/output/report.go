package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/crosscheck"
	"github.com/lgbarn/chesscore-go/internal/suite"
)

// WriteDivide writes one "move: nodes" line per root move in move order,
// followed by the total.
func WriteDivide(w io.Writer, divide map[string]uint64) {
	moves := maps.Keys(divide)
	slices.Sort(moves)

	var total uint64
	for _, mv := range moves {
		fmt.Fprintf(w, "%s: %d\n", mv, divide[mv])
		total += divide[mv]
	}
	fmt.Fprintf(w, "\nMoves: %d\nNodes: %d\n", len(moves), total)
}

// WriteSuiteReport writes a line per case and depth, then a summary.
func WriteSuiteReport(w io.Writer, report *suite.Report) {
	width := 0
	for _, result := range report.Results {
		if len(result.Case) > width {
			width = len(result.Case)
		}
	}

	for _, result := range report.Results {
		status := "ok"
		if !result.Passed() {
			status = fmt.Sprintf("FAIL (want %d)", result.Want)
		}
		fmt.Fprintf(w, "%-*s  %-9s  depth %d  %12d  %s\n",
			width, result.Case, result.Variant, result.Depth, result.Got, status)
	}

	seconds := report.Elapsed.Seconds()
	rate := 0.0
	if seconds > 0 {
		rate = float64(report.Nodes()) / seconds
	}
	fmt.Fprintf(w, "\n%d checks, %d failed, %d nodes in %.2fs (%.0f nps)\n",
		len(report.Results), report.Failures, report.Nodes(), seconds, rate)
}

// WriteCrosscheck writes each disagreement, or a single line when every
// reference agreed.
func WriteCrosscheck(w io.Writer, positions int, failures []*crosscheck.Report) {
	if len(failures) == 0 {
		fmt.Fprintf(w, "crosscheck: %d positions agree with all references\n", positions)
		return
	}
	for _, report := range failures {
		fmt.Fprintf(w, "%s\n", report.FEN)
		for _, d := range report.Diffs {
			if d.Agrees() {
				continue
			}
			fmt.Fprintf(w, "  %s: missing [%s] extra [%s]\n",
				d.Reference, strings.Join(d.Missing, " "), strings.Join(d.Extra, " "))
		}
	}
	fmt.Fprintf(w, "crosscheck: %d of %d positions disagree\n", len(failures), positions)
}
