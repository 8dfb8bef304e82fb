package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

const castlingFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

func TestCastling_Standard(t *testing.T) {
	pos := mustDecode(t, castlingFEN, chess.Standard)
	moves := LegalMoves(pos)

	kingside := testutil.FindMove(moves, "e1g1")
	queenside := testutil.FindMove(moves, "e1c1")
	if kingside == nil || !kingside.CastleKingside {
		t.Fatalf("kingside castle missing or unflagged: %v", kingside)
	}
	if queenside == nil || !queenside.CastleQueenside {
		t.Fatalf("queenside castle missing or unflagged: %v", queenside)
	}

	if !ApplyMove(pos, *kingside) {
		t.Fatal("ApplyMove(e1g1) = false")
	}
	testutil.AssertPieces(t, pos, map[string]string{"g1": "K", "f1": "R", "e1": ".", "h1": ".", "a1": "R"})
	if pos.Castling.Has(chess.White, chess.Kingside) || pos.Castling.Has(chess.White, chess.Queenside) {
		t.Error("white castling rights not cleared")
	}
	if !pos.Castling.Has(chess.Black, chess.Kingside) || !pos.Castling.Has(chess.Black, chess.Queenside) {
		t.Error("black castling rights changed")
	}
	if pos.ToMove != chess.Black {
		t.Errorf("ToMove = %v, want Black", pos.ToMove)
	}
}

func TestCastling_FlaglessMoveMatches(t *testing.T) {
	pos := mustDecode(t, castlingFEN, chess.Standard)
	if !ApplyMove(pos, chess.NewMove(chess.MustParseSquare("e1"), chess.MustParseSquare("c1"))) {
		t.Fatal("ApplyMove(e1c1) = false")
	}
	testutil.AssertPieces(t, pos, map[string]string{"c1": "K", "d1": "R", "a1": ".", "e1": "."})
}

func TestCastling_Blocked(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		absent  []string
		present []string
	}{
		{"through attacked f1", "r3k2r/5r2/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1g1"}, []string{"e1c1"}},
		{"onto attacked c1", "r3k2r/2r5/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1c1"}, []string{"e1g1"}},
		{"out of check", "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1", []string{"e1g1", "e1c1"}, nil},
		{"piece in the way", "r3k2r/8/8/8/8/8/8/RN2K1NR w KQkq - 0 1", []string{"e1g1", "e1c1"}, nil},
		{"b1 attacked is fine", "r3k2r/1r6/8/8/8/8/8/R3K2R w KQkq - 0 1", nil, []string{"e1c1", "e1g1"}},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1", []string{"e1g1", "e1c1"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves := LegalMoves(mustDecode(t, tt.fen, chess.Standard))
			for _, text := range tt.absent {
				testutil.AssertNoMove(t, moves, text)
			}
			for _, text := range tt.present {
				testutil.AssertHasMove(t, moves, text)
			}
		})
	}
}

func TestCastling_RightsRevoked(t *testing.T) {
	tests := []struct {
		name string
		move string
		want chess.CastlingRights
	}{
		{"king moves", "e1e2", chess.CastlingRights{{false, false}, {true, true}}},
		{"kingside rook moves", "h1h5", chess.CastlingRights{{false, true}, {true, true}}},
		{"queenside rook moves", "a1b1", chess.CastlingRights{{true, false}, {true, true}}},
		{"rook captures rook", "a1a8", chess.CastlingRights{{true, false}, {true, false}}},
		{"other rook captured", "h1h8", chess.CastlingRights{{false, true}, {false, true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustDecode(t, castlingFEN, chess.Standard)
			if err := ApplyMoveText(pos, tt.move); err != nil {
				t.Fatalf("ApplyMoveText(%s) error: %v", tt.move, err)
			}
			testutil.AssertEqual(t, pos.Castling, tt.want)
		})
	}
}

func TestCastling_Chess960InPlace(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/8/8/8/8/R1K4R w KQ - 0 1", chess.Chess960)
	moves := LegalMoves(pos)

	inPlace := testutil.FindMove(moves, "c1c1")
	if inPlace == nil {
		t.Fatalf("castle in place missing from %v", testutil.MoveStrings(moves))
	}
	if !inPlace.CastleQueenside || inPlace.From != inPlace.To {
		t.Errorf("move %+v, want queenside castle with From == To", *inPlace)
	}
	testutil.AssertHasMove(t, moves, "c1g1")

	if !ApplyMove(pos, *inPlace) {
		t.Fatal("ApplyMove(c1c1) = false")
	}
	testutil.AssertPieces(t, pos, map[string]string{"c1": "K", "d1": "R", "a1": ".", "b1": ".", "h1": "R"})
	if pos.Castling.Has(chess.White, chess.Kingside) {
		t.Error("kingside right survived castling")
	}
}

func TestCastling_Chess960KingOntoRookSquare(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/8/8/8/8/1K4R1 w G - 0 1", chess.Chess960)
	if err := ApplyMoveText(pos, "b1g1"); err != nil {
		t.Fatalf("ApplyMoveText(b1g1) error: %v", err)
	}
	testutil.AssertPieces(t, pos, map[string]string{"g1": "K", "f1": "R", "b1": "."})
}

func TestCastling_Chess960RookBlockedDestination(t *testing.T) {
	// King b1 and rook a1: the rook must reach d1, which holds a knight.
	pos := mustDecode(t, "4k3/8/8/8/8/8/8/RK1N4 w A - 0 1", chess.Chess960)
	for _, mv := range LegalMoves(pos) {
		if mv.IsCastle() {
			t.Errorf("unexpected castling move %v", mv)
		}
	}
}
