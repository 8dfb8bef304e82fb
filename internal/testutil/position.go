package testutil

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// Perft reference positions shared by several packages' tests.
const (
	Kiwipete  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3 = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Position4 = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	Position5 = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

// MoveStrings returns the long algebraic text of moves, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, mv := range moves {
		out[i] = mv.String()
	}
	sort.Strings(out)
	return out
}

// AssertMoveSet fails unless moves and want contain the same long algebraic
// moves, in any order.
func AssertMoveSet(t testing.TB, moves []chess.Move, want []string) {
	t.Helper()
	sorted := append([]string(nil), want...)
	sort.Strings(sorted)
	if diff := cmp.Diff(sorted, MoveStrings(moves)); diff != "" {
		t.Errorf("move set mismatch (-want +got):\n%s", diff)
	}
}

// AssertHasMove fails unless moves contains text.
func AssertHasMove(t testing.TB, moves []chess.Move, text string) {
	t.Helper()
	if FindMove(moves, text) == nil {
		t.Errorf("moves %v do not contain %s", MoveStrings(moves), text)
	}
}

// AssertNoMove fails if moves contains text.
func AssertNoMove(t testing.TB, moves []chess.Move, text string) {
	t.Helper()
	if FindMove(moves, text) != nil {
		t.Errorf("moves %v unexpectedly contain %s", MoveStrings(moves), text)
	}
}

// FindMove returns the first move whose text is text, or nil.
func FindMove(moves []chess.Move, text string) *chess.Move {
	for i := range moves {
		if moves[i].String() == text {
			return &moves[i]
		}
	}
	return nil
}

// AssertPieces checks the occupant of each listed square. Keys are
// algebraic squares; values are FEN letters, or "." for an empty square.
func AssertPieces(t testing.TB, pos *chess.Position, want map[string]string) {
	t.Helper()
	got := make(map[string]string, len(want))
	for name := range want {
		sq := chess.MustParseSquare(name)
		got[name] = string(pos.Get(sq).FENLetter())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pieces mismatch (-want +got):\n%s", diff)
	}
}

// Diagram renders the board as eight lines of FEN letters, rank 8 first.
// It makes position mismatches readable in cmp diffs.
func Diagram(pos *chess.Position) string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(pos.Get(chess.SquareAt(file, rank)).FENLetter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
