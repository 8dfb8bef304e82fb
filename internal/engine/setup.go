package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// StandardPosition returns the standard starting position.
func StandardPosition() *chess.Position {
	return positionFromBackRank(chess.Standard, chess.StandardBackRank)
}

// AtomicPosition returns the Atomic starting position, which has the same
// setup as Standard chess.
func AtomicPosition() *chess.Position {
	return positionFromBackRank(chess.Atomic, chess.StandardBackRank)
}

// Chess960Position returns the Fischer-Random starting position for seed.
// Both colours get the same back rank, mirrored, and all four castling
// rights bound to its rooks.
func Chess960Position(seed uint64) *chess.Position {
	return positionFromBackRank(chess.Chess960, Chess960BackRankFromSeed(seed))
}

// NewPosition returns the starting position of a variant. The seed is only
// used by Chess960.
func NewPosition(variant chess.Variant, seed uint64) *chess.Position {
	switch variant {
	case chess.Chess960:
		return Chess960Position(seed)
	case chess.Atomic:
		return AtomicPosition()
	default:
		return StandardPosition()
	}
}

// positionFromBackRank sets up both armies from a back rank.
func positionFromBackRank(variant chess.Variant, rank chess.BackRank) *chess.Position {
	pos := chess.NewEmptyPosition(variant)

	for colour := chess.White; colour <= chess.Black; colour++ {
		home := colour.HomeRank()
		pawnRank := home + colour.PawnDirection()
		kingFile := -1
		var rookFiles []int

		for file, kind := range rank {
			pos.Set(chess.SquareAt(file, home), chess.MakePiece(colour, kind))
			pos.Set(chess.SquareAt(file, pawnRank), chess.MakePiece(colour, chess.Pawn))
			switch kind {
			case chess.King:
				kingFile = file
			case chess.Rook:
				rookFiles = append(rookFiles, file)
			}
		}

		for _, file := range rookFiles {
			side := chess.Queenside
			if file > kingFile {
				side = chess.Kingside
			}
			pos.Castling[colour][side] = true
			pos.CastleRookFile[colour][side] = int8(file)
		}
		pos.BackRanks[colour] = rank
	}
	return pos
}
