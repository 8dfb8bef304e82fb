package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// SeventyFiveMoveHalfmoves is the halfmove clock value at which the game is
// drawn automatically: 75 moves by each side without a pawn move or capture.
const SeventyFiveMoveHalfmoves = 150

// FiftyMoveHalfmoves is the halfmove clock value from which a draw may be claimed.
const FiftyMoveHalfmoves = 100

// CanClaimFiftyMoves reports whether the fifty-move rule may be claimed.
func CanClaimFiftyMoves(pos *chess.Position) bool {
	return pos.HalfmoveClock >= FiftyMoveHalfmoves
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(pos *chess.Position) bool {
	var whitePieces, blackPieces []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Board[sq]
		if piece.IsEmpty() || piece.Kind == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if piece.Kind == chess.Pawn || piece.Kind == chess.Rook || piece.Kind == chess.Queen {
			return false
		}

		if piece.Colour == chess.White {
			whitePieces = append(whitePieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				whiteBishopOnLight = sq.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				blackBishopOnLight = sq.IsLight()
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}
