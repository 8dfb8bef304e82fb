package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// MoveText returns the long algebraic text of a move legal in pos.
//
// Chess960 castling is written king-takes-rook ("b1a1"), as UCI_Chess960
// does: with the king already next to its destination the king-to-square
// form would collide with a plain king move. Other moves use mv.String.
func MoveText(pos *chess.Position, mv chess.Move) string {
	if pos.Variant != chess.Chess960 || !mv.IsCastle() {
		return mv.String()
	}
	return mv.From.String() + pos.CastleRookSquare(pos.ToMove, mv.CastlingSide()).String()
}

// MoveTexts returns MoveText for each of moves, in order.
func MoveTexts(pos *chess.Position, moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, mv := range moves {
		out[i] = MoveText(pos, mv)
	}
	return out
}

// matchKingTakesRook maps Chess960 castling text, a flagless king move onto
// the square of its own castling rook, to the legal castling move.
func matchKingTakesRook(pos *chess.Position, legal []chess.Move, mv chess.Move) (chess.Move, bool) {
	if pos.Variant != chess.Chess960 || mv.IsSpecial() || mv.Promotion != chess.NoPiece {
		return chess.Move{}, false
	}
	for _, candidate := range legal {
		if candidate.IsCastle() && candidate.From == mv.From &&
			pos.CastleRookSquare(pos.ToMove, candidate.CastlingSide()) == mv.To {
			return candidate, true
		}
	}
	return chess.Move{}, false
}
