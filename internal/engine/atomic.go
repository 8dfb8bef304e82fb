package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// explode resolves an atomic capture on centre. The capturing piece,
// now standing there, is destroyed together with every non-pawn piece on
// the eight surrounding squares. Pawns next to the blast survive.
func explode(pos *chess.Position, centre chess.Square) {
	destroy(pos, centre)
	for _, sq := range BlastSquares(centre)[1:] {
		piece := pos.Board[sq]
		if piece.IsEmpty() || piece.Kind == chess.Pawn {
			continue
		}
		destroy(pos, sq)
	}
}

// destroy removes the piece on sq, revoking any castling right it carried.
func destroy(pos *chess.Position, sq chess.Square) {
	piece := pos.Board[sq]
	switch piece.Kind {
	case chess.King:
		pos.Castling.ClearColour(piece.Colour)
	case chess.Rook:
		updateCastlingRightsForRook(pos, piece.Colour, sq)
	}
	pos.Clear(sq)
}

// BlastSquares returns the squares an atomic capture on sq would affect:
// sq itself followed by its on-board neighbours.
func BlastSquares(sq chess.Square) []chess.Square {
	squares := []chess.Square{sq}
	for _, off := range kingOffsets {
		if n, ok := sq.Offset(off[0], off[1]); ok {
			squares = append(squares, n)
		}
	}
	return squares
}
