package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

func assertStartCounts(t *testing.T, pos *chess.Position) {
	t.Helper()
	for colour := chess.White; colour <= chess.Black; colour++ {
		if got := pos.PieceCount(colour); got != 16 {
			t.Errorf("PieceCount(%v) = %d, want 16", colour, got)
		}
		if got := pos.CountKind(colour, chess.Pawn); got != 8 {
			t.Errorf("CountKind(%v, Pawn) = %d, want 8", colour, got)
		}
	}
	if pos.ToMove != chess.White {
		t.Errorf("ToMove = %v, want White", pos.ToMove)
	}
}

func TestStandardPosition(t *testing.T) {
	pos := StandardPosition()
	assertStartCounts(t, pos)
	if pos.Variant != chess.Standard || pos.Ruleset() != chess.ClassicalRules {
		t.Errorf("variant/ruleset = %v/%v", pos.Variant, pos.Ruleset())
	}
	if got := EncodeFEN(pos); got != InitialFEN {
		t.Errorf("EncodeFEN() = %q, want %q", got, InitialFEN)
	}
}

func TestAtomicPosition(t *testing.T) {
	pos := AtomicPosition()
	assertStartCounts(t, pos)
	if pos.Variant != chess.Atomic || pos.Ruleset() != chess.AtomicRules {
		t.Errorf("variant/ruleset = %v/%v", pos.Variant, pos.Ruleset())
	}
	if got := EncodeFEN(pos); got != InitialFEN {
		t.Errorf("EncodeFEN() = %q, want %q", got, InitialFEN)
	}
}

func TestChess960Position(t *testing.T) {
	for _, seed := range []uint64{0, 7, 42, 311, 518, 959, 123456789} {
		pos := Chess960Position(seed)
		assertStartCounts(t, pos)

		want := Chess960BackRankFromSeed(seed)
		for colour := chess.White; colour <= chess.Black; colour++ {
			if got := pos.BackRank(colour); got != want {
				t.Errorf("seed %d: BackRank(%v) = %s, want %s", seed, colour, got, want)
			}
			for file, kind := range want {
				sq := chess.SquareAt(file, colour.HomeRank())
				if !pos.Get(sq).Is(colour, kind) {
					t.Errorf("seed %d: %v holds %v, want %v %v", seed, sq, pos.Get(sq), colour, kind)
				}
			}
			for side := chess.Kingside; side <= chess.Queenside; side++ {
				if !pos.Castling.Has(colour, side) {
					t.Errorf("seed %d: missing %v %v right", seed, colour, side)
				}
				if rook := pos.CastleRookSquare(colour, side); !pos.Get(rook).Is(colour, chess.Rook) {
					t.Errorf("seed %d: %v %v right bound to %v, no rook there", seed, colour, side, rook)
				}
			}
		}
		if pos.Ruleset() != chess.ClassicalRules {
			t.Errorf("seed %d: Ruleset() = %v, want Classical", seed, pos.Ruleset())
		}
	}
}

func TestNewPosition(t *testing.T) {
	if got := NewPosition(chess.Standard, 3).Variant; got != chess.Standard {
		t.Errorf("NewPosition(Standard).Variant = %v", got)
	}
	if got := NewPosition(chess.Atomic, 3).Variant; got != chess.Atomic {
		t.Errorf("NewPosition(Atomic).Variant = %v", got)
	}
	pos := NewPosition(chess.Chess960, 3)
	if got, want := pos.BackRank(chess.White), Chess960BackRankFromSeed(3); got != want {
		t.Errorf("NewPosition(Chess960, 3) back rank = %s, want %s", got, want)
	}
}
