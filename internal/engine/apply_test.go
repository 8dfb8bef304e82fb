package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestApplyMove_IllegalLeavesPositionUnchanged(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move chess.Move
	}{
		{"pawn three squares", InitialFEN, chess.NewMove(chess.MustParseSquare("e2"), chess.MustParseSquare("e5"))},
		{"wrong side", InitialFEN, chess.NewMove(chess.MustParseSquare("e7"), chess.MustParseSquare("e5"))},
		{"empty square", InitialFEN, chess.NewMove(chess.MustParseSquare("e4"), chess.MustParseSquare("e5"))},
		{"pinned piece", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", chess.NewMove(chess.MustParseSquare("e2"), chess.MustParseSquare("d3"))},
		{"castle flag on plain move", InitialFEN, chess.Move{From: chess.MustParseSquare("e2"), To: chess.MustParseSquare("e4"), CastleKingside: true}},
		{"promotion on non-promoting move", InitialFEN, chess.NewPromotion(chess.MustParseSquare("e2"), chess.MustParseSquare("e4"), chess.Queen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustDecode(t, tt.fen, chess.Standard)
			before := pos.Clone()
			if ApplyMove(pos, tt.move) {
				t.Fatalf("ApplyMove(%v) = true, want false", tt.move)
			}
			if diff := cmp.Diff(before, pos); diff != "" {
				t.Errorf("position changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestApplyMove_EnPassantLifecycle(t *testing.T) {
	pos := StandardPosition()

	steps := []struct {
		move   string
		wantEP string
	}{
		{"e2e4", "e3"},
		{"g8f6", "-"},
		{"e4e5", "-"},
		{"d7d5", "d6"},
	}
	for _, step := range steps {
		if err := ApplyMoveText(pos, step.move); err != nil {
			t.Fatalf("ApplyMoveText(%s) error: %v", step.move, err)
		}
		if got := pos.EnPassant.String(); got != step.wantEP {
			t.Errorf("after %s: EnPassant = %s, want %s", step.move, got, step.wantEP)
		}
	}

	if err := ApplyMoveText(pos, "e5d6"); err != nil {
		t.Fatalf("ApplyMoveText(e5d6) error: %v", err)
	}
	testutil.AssertPieces(t, pos, map[string]string{"d6": "P", "d5": ".", "e5": "."})
	if pos.EnPassant != chess.NoSquare {
		t.Errorf("EnPassant = %v after capture, want none", pos.EnPassant)
	}
}

func TestApplyMove_EnPassantFixture(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", chess.Standard)

	var epMoves []chess.Move
	for _, mv := range LegalMoves(pos) {
		if mv.EnPassant {
			epMoves = append(epMoves, mv)
		}
	}
	testutil.AssertMoveSet(t, epMoves, []string{"e5d6"})

	if !ApplyMove(pos, epMoves[0]) {
		t.Fatal("ApplyMove(e5d6) = false")
	}
	testutil.AssertPieces(t, pos, map[string]string{"d6": "P", "d5": ".", "e5": "."})
	if pos.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0", pos.HalfmoveClock)
	}
}

func TestApplyMove_Promotion(t *testing.T) {
	tests := []struct {
		name string
		move chess.Move
		want string
	}{
		{"default is queen", chess.NewMove(chess.MustParseSquare("a7"), chess.MustParseSquare("a8")), "Q"},
		{"underpromotion", chess.NewPromotion(chess.MustParseSquare("a7"), chess.MustParseSquare("a8"), chess.Knight), "N"},
		{"rook", chess.NewPromotion(chess.MustParseSquare("a7"), chess.MustParseSquare("a8"), chess.Rook), "R"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustDecode(t, "8/P7/8/8/8/8/8/k6K w - - 5 40", chess.Standard)
			if !ApplyMove(pos, tt.move) {
				t.Fatalf("ApplyMove(%v) = false", tt.move)
			}
			testutil.AssertPieces(t, pos, map[string]string{"a8": tt.want, "a7": "."})
		})
	}
}

func TestApplyMove_Clocks(t *testing.T) {
	pos := StandardPosition()
	for _, text := range []string{"g1f3", "g8f6", "f3g1"} {
		if err := ApplyMoveText(pos, text); err != nil {
			t.Fatalf("ApplyMoveText(%s) error: %v", text, err)
		}
	}
	if pos.HalfmoveClock != 3 {
		t.Errorf("HalfmoveClock = %d, want 3", pos.HalfmoveClock)
	}
	if pos.MoveNumber != 2 {
		t.Errorf("MoveNumber = %d, want 2", pos.MoveNumber)
	}
	if pos.ToMove != chess.Black {
		t.Errorf("ToMove = %v, want Black", pos.ToMove)
	}

	if err := ApplyMoveText(pos, "e7e5"); err != nil {
		t.Fatalf("ApplyMoveText(e7e5) error: %v", err)
	}
	if pos.HalfmoveClock != 0 || pos.MoveNumber != 3 {
		t.Errorf("clocks = %d %d, want 0 3", pos.HalfmoveClock, pos.MoveNumber)
	}
}

func TestApplyMoveText_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"syntax", "e2", errors.ErrInvalidMove},
		{"bad square", "e9e4", errors.ErrInvalidMove},
		{"bad promotion", "e7e8k", errors.ErrInvalidMove},
		{"illegal", "e2e5", errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ApplyMoveText(StandardPosition(), tt.text)
			if !errors.Is(err, tt.want) {
				t.Errorf("ApplyMoveText(%q) error = %v, want %v", tt.text, err, tt.want)
			}
		})
	}
}

func TestMatchLegalMove(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", chess.Standard)

	plain := chess.NewMove(chess.MustParseSquare("e5"), chess.MustParseSquare("d6"))
	got, ok := MatchLegalMove(pos, plain)
	if !ok || !got.EnPassant {
		t.Errorf("MatchLegalMove(e5d6) = %+v, %v; want the en passant move", got, ok)
	}

	wrongFlag := chess.Move{From: plain.From, To: plain.To, CastleKingside: true}
	if _, ok := MatchLegalMove(pos, wrongFlag); ok {
		t.Error("MatchLegalMove accepted a castle flag on an en passant capture")
	}
}
