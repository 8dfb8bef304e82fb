package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Offsets as (file delta, rank delta) pairs.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is attacked by any
// opposing piece. Whose turn it is does not matter. A colour without a king
// (destroyed in an atomic explosion) is never in check.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	kingSq := pos.KingSquare(colour)
	if kingSq == chess.NoSquare {
		return false
	}
	return IsSquareAttacked(pos, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack from one rank behind, seen from their own side.
	pawnRank := -byColour.PawnDirection()
	for _, df := range [2]int{-1, 1} {
		if from, ok := sq.Offset(df, pawnRank); ok && pos.Board[from].Is(byColour, chess.Pawn) {
			return true
		}
	}

	for _, off := range knightOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok && pos.Board[from].Is(byColour, chess.Knight) {
			return true
		}
	}

	for _, off := range kingOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok && pos.Board[from].Is(byColour, chess.King) {
			return true
		}
	}

	if rayHits(pos, sq, byColour, diagonalDirs[:], chess.Bishop) {
		return true
	}
	return rayHits(pos, sq, byColour, straightDirs[:], chess.Rook)
}

// rayHits walks each direction from sq to the first occupied square and
// reports whether it holds a byColour slider of the given kind or a queen.
func rayHits(pos *chess.Position, sq chess.Square, byColour chess.Colour, dirs [][2]int, slider chess.PieceKind) bool {
	for _, dir := range dirs {
		cur, ok := sq.Offset(dir[0], dir[1])
		for ok {
			piece := pos.Board[cur]
			if !piece.IsEmpty() {
				if piece.Colour == byColour && (piece.Kind == slider || piece.Kind == chess.Queen) {
					return true
				}
				break // Blocked
			}
			cur, ok = cur.Offset(dir[0], dir[1])
		}
	}
	return false
}
