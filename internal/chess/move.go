package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Move is a single move of the side to move.
//
// Castling is encoded as the king's move: From is the king's square and To
// is its final square (c- or g-file). In Chess960 the two may be equal when
// the king already stands on its final square; the rook still relocates.
// The three flags are mutually exclusive, and all false for a plain move.
type Move struct {
	From Square
	To   Square

	// Promotion is the piece a pawn becomes on the last rank (NoPiece otherwise).
	Promotion PieceKind

	CastleKingside  bool
	CastleQueenside bool
	EnPassant       bool
}

// NewMove constructs a plain (non-special) move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion constructs a pawn move that promotes to the given kind.
func NewPromotion(from, to Square, kind PieceKind) Move {
	return Move{From: from, To: to, Promotion: kind}
}

// IsCastle reports whether the move is a castling move on either side.
func (m Move) IsCastle() bool {
	return m.CastleKingside || m.CastleQueenside
}

// IsSpecial reports whether any of the special-move flags is set.
func (m Move) IsSpecial() bool {
	return m.CastleKingside || m.CastleQueenside || m.EnPassant
}

// CastlingSide returns the side of a castling move. Only meaningful when IsCastle.
func (m Move) CastlingSide() CastlingSide {
	if m.CastleQueenside {
		return Queenside
	}
	return Kingside
}

// String returns long algebraic notation: "e2e4", "e7e8q", "e1g1".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPiece {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// ParseMove parses long algebraic text ("e2e4", "a7a8q") into a plain move.
// Only the syntax is validated; legality is decided when the move is applied.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMove)
	}
	from, err := SquareFromString(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w: %w", text, errors.ErrInvalidMove, err)
	}
	to, err := SquareFromString(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w: %w", text, errors.ErrInvalidMove, err)
	}
	m := NewMove(from, to)
	if len(text) == 5 {
		kind := PieceKindFromLetter(text[4])
		switch kind {
		case Queen, Rook, Bishop, Knight:
			m.Promotion = kind
		default:
			return Move{}, fmt.Errorf("move %q: bad promotion piece: %w", text, errors.ErrInvalidMove)
		}
	}
	return m, nil
}
