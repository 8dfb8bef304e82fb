package hashing

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

func decode(t testing.TB, fen string) *chess.Position {
	t.Helper()
	pos, err := engine.DecodeFEN(fen, chess.Standard)
	if err != nil {
		t.Fatalf("DecodeFEN(%q) error: %v", fen, err)
	}
	return pos
}

func play(t testing.TB, pos *chess.Position, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		if err := engine.ApplyMoveText(pos, mv); err != nil {
			t.Fatalf("ApplyMoveText(%s) error: %v", mv, err)
		}
	}
}

func TestKey_Deterministic(t *testing.T) {
	a := engine.StandardPosition()
	b := engine.StandardPosition()
	if Key(a) != Key(b) {
		t.Error("identical positions have different keys")
	}
	if Key(a) == 0 {
		t.Error("initial position key is zero")
	}
}

func TestKey_TranspositionsMatch(t *testing.T) {
	a := engine.StandardPosition()
	play(t, a, "g1f3", "g8f6", "b1c3", "b8c6")

	b := engine.StandardPosition()
	play(t, b, "b1c3", "b8c6", "g1f3", "g8f6")

	if Key(a) != Key(b) {
		t.Error("transposed move orders give different keys")
	}
}

func TestKey_Differences(t *testing.T) {
	base := decode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	tests := []struct {
		name string
		fen  string
	}{
		{"side to move", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1"},
		{"castling rights", "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1"},
		{"piece placement", "r3k2r/8/8/8/8/8/8/R3K1R1 w Qkq - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Key(decode(t, tt.fen)) == Key(base) {
				t.Errorf("key of %q equals the base key", tt.fen)
			}
		})
	}
}

func TestKey_IgnoresClocks(t *testing.T) {
	a := decode(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	b := decode(t, "4k3/8/8/8/8/8/8/4K2R w K - 37 60")
	if Key(a) != Key(b) {
		t.Error("clocks changed the key")
	}
}

func TestKey_EnPassant(t *testing.T) {
	// No black pawn can take on e3, so the target square is irrelevant.
	withTarget := decode(t, "4k3/8/8/8/4P3/8/8/4K3 b - e3 0 1")
	without := decode(t, "4k3/8/8/8/4P3/8/8/4K3 b - - 0 1")
	if Key(withTarget) != Key(without) {
		t.Error("uncapturable en passant target changed the key")
	}

	// A black pawn on d4 can capture, so the target matters.
	capturable := decode(t, "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1")
	noTarget := decode(t, "4k3/8/8/8/3pP3/8/8/4K3 b - - 0 1")
	if Key(capturable) == Key(noTarget) {
		t.Error("capturable en passant target did not change the key")
	}
}

func TestKey_EdgeFileEnPassant(t *testing.T) {
	// The neighbour check must not wrap from the a-file to the h-file.
	pos := decode(t, "4k3/8/8/P6p/8/8/8/4K3 w - h6 0 1")
	if enPassantCapturable(pos) {
		t.Error("a5 pawn reported able to capture on h6")
	}
	pos = decode(t, "4k3/8/8/6Pp/8/8/8/4K3 w - h6 0 1")
	if !enPassantCapturable(pos) {
		t.Error("g5 pawn should be able to capture on h6")
	}
}

func TestPRNG_Distinct(t *testing.T) {
	seen := make(map[uint64]bool)
	for colour := range zobristPiece {
		for kind := chess.Pawn; kind <= chess.King; kind++ {
			for _, key := range zobristPiece[colour][kind] {
				if seen[key] {
					t.Fatalf("duplicate zobrist key %#x", key)
				}
				seen[key] = true
			}
		}
	}
}
