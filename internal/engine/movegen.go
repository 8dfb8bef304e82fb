package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// promotionKinds lists the pieces a pawn may become, strongest first.
var promotionKinds = [4]chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// GeneratePseudoLegalMoves enumerates every geometrically valid move of the
// side to move, ignoring whether it leaves the mover's own king attacked.
// Castling moves are included only when the right is held, the path is
// clear and the king does not start on or cross an attacked square.
func GeneratePseudoLegalMoves(pos *chess.Position) []chess.Move {
	colour := pos.ToMove
	moves := make([]chess.Move, 0, 48)

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Board[sq]
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}

		switch piece.Kind {
		case chess.Pawn:
			moves = appendPawnMoves(moves, pos, sq, colour)
		case chess.Knight:
			moves = appendStepMoves(moves, pos, sq, colour, knightOffsets[:])
		case chess.King:
			moves = appendStepMoves(moves, pos, sq, colour, kingOffsets[:])
		case chess.Bishop:
			moves = appendSlidingMoves(moves, pos, sq, colour, diagonalDirs[:])
		case chess.Rook:
			moves = appendSlidingMoves(moves, pos, sq, colour, straightDirs[:])
		case chess.Queen:
			moves = appendSlidingMoves(moves, pos, sq, colour, diagonalDirs[:])
			moves = appendSlidingMoves(moves, pos, sq, colour, straightDirs[:])
		}
	}

	return appendCastlingMoves(moves, pos, colour)
}

// appendStepMoves adds knight or king moves: fixed offsets that stay on the
// board and do not land on a piece of the mover's colour.
func appendStepMoves(moves []chess.Move, pos *chess.Position, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, off := range offsets {
		to, ok := from.Offset(off[0], off[1])
		if !ok {
			continue
		}
		target := pos.Board[to]
		if target.IsEmpty() || target.Colour != colour {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// appendSlidingMoves adds moves along each ray until the first blocker,
// including the blocker's square when it holds an enemy piece.
func appendSlidingMoves(moves []chess.Move, pos *chess.Position, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := pos.Board[to]
			if !target.IsEmpty() {
				if target.Colour != colour {
					moves = append(moves, chess.NewMove(from, to))
				}
				break // Blocked
			}
			moves = append(moves, chess.NewMove(from, to))
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// appendPawnMoves adds pushes, double pushes, captures, en passant and promotions.
func appendPawnMoves(moves []chess.Move, pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Move {
	dir := colour.PawnDirection()
	startRank := 1
	if colour == chess.Black {
		startRank = 6
	}

	// Forward moves
	if one, ok := from.Offset(0, dir); ok && pos.Board[one].IsEmpty() {
		moves = appendPawnAdvance(moves, from, one, colour)
		if chess.RankOf(from) == startRank {
			if two, ok := from.Offset(0, 2*dir); ok && pos.Board[two].IsEmpty() {
				moves = append(moves, chess.NewMove(from, two))
			}
		}
	}

	// Captures
	for _, df := range [2]int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		target := pos.Board[to]
		switch {
		case !target.IsEmpty():
			if target.Colour != colour {
				moves = appendPawnAdvance(moves, from, to, colour)
			}
		case to == pos.EnPassant && isEnPassantVictim(pos, from, to, colour):
			moves = append(moves, chess.Move{From: from, To: to, EnPassant: true})
		}
	}
	return moves
}

// appendPawnAdvance adds a pawn move, expanded into the four promotions when
// the destination is the last rank.
func appendPawnAdvance(moves []chess.Move, from, to chess.Square, colour chess.Colour) []chess.Move {
	if chess.RankOf(to) != colour.Opposite().HomeRank() {
		return append(moves, chess.NewMove(from, to))
	}
	for _, kind := range promotionKinds {
		moves = append(moves, chess.NewPromotion(from, to, kind))
	}
	return moves
}

// isEnPassantVictim reports whether an enemy pawn stands on the square
// passed by the capturing pawn (same file as the target, the capturer's rank).
func isEnPassantVictim(pos *chess.Position, from, to chess.Square, colour chess.Colour) bool {
	return pos.Board[enPassantVictimSquare(from, to)].Is(colour.Opposite(), chess.Pawn)
}

// enPassantVictimSquare returns the square of the pawn removed by an en
// passant capture from `from` onto `to`.
func enPassantVictimSquare(from, to chess.Square) chess.Square {
	return chess.SquareAt(chess.FileOf(to), chess.RankOf(from))
}
