package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// appendCastlingMoves adds the castling moves available to colour.
func appendCastlingMoves(moves []chess.Move, pos *chess.Position, colour chess.Colour) []chess.Move {
	if !pos.Castling.Has(colour, chess.Kingside) && !pos.Castling.Has(colour, chess.Queenside) {
		return moves
	}
	kingSq := pos.KingSquare(colour)
	if kingSq == chess.NoSquare || chess.RankOf(kingSq) != colour.HomeRank() {
		return moves
	}
	for side := chess.Kingside; side <= chess.Queenside; side++ {
		if !pos.Castling.Has(colour, side) {
			continue
		}
		if mv, ok := castlingMove(pos, colour, side, kingSq); ok {
			moves = append(moves, mv)
		}
	}
	return moves
}

// castlingMove builds the castling move for one side if it is currently
// possible. The king always lands on the c- or g-file and the rook on the d-
// or f-file; in Chess960 the king may already stand on its final square.
func castlingMove(pos *chess.Position, colour chess.Colour, side chess.CastlingSide, kingSq chess.Square) (chess.Move, bool) {
	rank := colour.HomeRank()
	rookSq := pos.CastleRookSquare(colour, side)
	if !pos.Board[rookSq].Is(colour, chess.Rook) {
		return chess.Move{}, false
	}
	if (side == chess.Kingside && rookSq <= kingSq) || (side == chess.Queenside && rookSq >= kingSq) {
		return chess.Move{}, false
	}

	kingTo := chess.SquareAt(side.KingDestinationFile(), rank)
	rookTo := chess.SquareAt(side.RookDestinationFile(), rank)

	// Everything between king and rook, and every square either piece
	// travels over or lands on, must be empty apart from the two castlers.
	spans := [3][2]chess.Square{{kingSq, rookSq}, {kingSq, kingTo}, {rookSq, rookTo}}
	for _, span := range spans {
		lo, hi := span[0], span[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		for sq := lo; sq <= hi; sq++ {
			if sq == kingSq || sq == rookSq {
				continue
			}
			if !pos.Board[sq].IsEmpty() {
				return chess.Move{}, false
			}
		}
	}

	// The king may not start on, pass through or land on an attacked square.
	enemy := colour.Opposite()
	step := chess.Square(1)
	if kingTo < kingSq {
		step = -1
	}
	for sq := kingSq; ; sq += step {
		if IsSquareAttacked(pos, sq, enemy) {
			return chess.Move{}, false
		}
		if sq == kingTo {
			break
		}
	}

	mv := chess.NewMove(kingSq, kingTo)
	if side == chess.Kingside {
		mv.CastleKingside = true
	} else {
		mv.CastleQueenside = true
	}
	return mv, true
}

// applyCastle relocates king and rook for a castling move and clears both
// of the mover's castling rights.
func applyCastle(pos *chess.Position, colour chess.Colour, mv chess.Move) {
	side := mv.CastlingSide()
	rank := colour.HomeRank()
	rookSq := pos.CastleRookSquare(colour, side)
	kingTo := chess.SquareAt(side.KingDestinationFile(), rank)
	rookTo := chess.SquareAt(side.RookDestinationFile(), rank)

	king := pos.Board[mv.From]
	rook := pos.Board[rookSq]

	// Lift both first: in Chess960 the destinations may overlap the origins.
	pos.Clear(mv.From)
	pos.Clear(rookSq)
	pos.Set(kingTo, king)
	pos.Set(rookTo, rook)

	pos.Castling.ClearColour(colour)
}

// updateCastlingRightsForRook removes a castling right when the rook bound to
// it leaves, or is removed from, its original square.
func updateCastlingRightsForRook(pos *chess.Position, colour chess.Colour, sq chess.Square) {
	if chess.RankOf(sq) != colour.HomeRank() {
		return
	}
	file := int8(chess.FileOf(sq))
	for side := chess.Kingside; side <= chess.Queenside; side++ {
		if pos.CastleRookFile[colour][side] == file {
			pos.Castling[colour][side] = false
		}
	}
}
