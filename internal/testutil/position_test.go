package testutil

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

func sampleMoves() []chess.Move {
	return []chess.Move{
		chess.NewMove(chess.MustParseSquare("g1"), chess.MustParseSquare("f3")),
		chess.NewMove(chess.MustParseSquare("e2"), chess.MustParseSquare("e4")),
		chess.NewPromotion(chess.MustParseSquare("a7"), chess.MustParseSquare("a8"), chess.Knight),
	}
}

func TestMoveStrings(t *testing.T) {
	AssertEqual(t, MoveStrings(sampleMoves()), []string{"a7a8n", "e2e4", "g1f3"})
	AssertEqual(t, MoveStrings(nil), []string{})
}

func TestAssertMoveSet_Success(t *testing.T) {
	AssertMoveSet(t, sampleMoves(), []string{"e2e4", "a7a8n", "g1f3"})
	AssertHasMove(t, sampleMoves(), "e2e4")
	AssertNoMove(t, sampleMoves(), "e2e3")
}

func TestFindMove(t *testing.T) {
	moves := sampleMoves()
	found := FindMove(moves, "a7a8n")
	if found == nil {
		t.Fatal("FindMove(a7a8n) = nil")
	}
	if found.Promotion != chess.Knight {
		t.Errorf("Promotion = %v; want Knight", found.Promotion)
	}
	if FindMove(moves, "a7a8q") != nil {
		t.Error("FindMove(a7a8q) should be nil")
	}
}

func TestAssertPiecesAndDiagram(t *testing.T) {
	pos := chess.NewEmptyPosition(chess.Standard)
	pos.Set(chess.MustParseSquare("e1"), chess.W(chess.King))
	pos.Set(chess.MustParseSquare("e8"), chess.B(chess.King))

	AssertPieces(t, pos, map[string]string{"e1": "K", "e8": "k", "d4": "."})

	want := "....k...\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"....K...\n"
	AssertEqual(t, Diagram(pos), want)
}
