package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// ApplyMove applies a move to the position and updates the position state.
// Returns true if the move was applied. A move that is not currently legal
// for the side to move leaves the position untouched and returns false.
//
// Callers may pass a bare from/to move (as built by chess.NewMove) for a
// castling or en passant move; it is matched to the legal special move with
// the same squares. A pawn reaching the last rank without a promotion piece
// promotes to a queen.
func ApplyMove(pos *chess.Position, mv chess.Move) bool {
	legal, ok := MatchLegalMove(pos, mv)
	if !ok {
		return false
	}
	makeMove(pos, legal)
	return true
}

// ApplyMoveText parses long algebraic move text ("e2e4", "e7e8n", or "b1a1"
// for Chess960 castling) and applies it.
func ApplyMoveText(pos *chess.Position, text string) error {
	mv, err := chess.ParseMove(text)
	if err != nil {
		return err
	}
	if !ApplyMove(pos, mv) {
		return fmt.Errorf("%s in %q: %w", text, EncodeFEN(pos), errors.ErrIllegalMove)
	}
	return nil
}

// MatchLegalMove finds the legal move that mv denotes. Exact matches
// (squares, flags and promotion) win. A flagless move then matches Chess960
// castling written king-takes-rook, and finally a legal special move with
// the same squares.
func MatchLegalMove(pos *chess.Position, mv chess.Move) (chess.Move, bool) {
	legal := LegalMoves(pos)
	for _, candidate := range legal {
		if sameSquares(candidate, mv) && candidate.CastleKingside == mv.CastleKingside &&
			candidate.CastleQueenside == mv.CastleQueenside && candidate.EnPassant == mv.EnPassant {
			return candidate, true
		}
	}
	if mv.IsSpecial() {
		return chess.Move{}, false
	}
	if castle, ok := matchKingTakesRook(pos, legal, mv); ok {
		return castle, true
	}
	for _, candidate := range legal {
		if sameSquares(candidate, mv) {
			return candidate, true
		}
	}
	return chess.Move{}, false
}

// sameSquares compares from, to and promotion, treating a missing promotion
// piece as a queen.
func sameSquares(candidate, mv chess.Move) bool {
	if candidate.From != mv.From || candidate.To != mv.To {
		return false
	}
	if candidate.Promotion == mv.Promotion {
		return true
	}
	return mv.Promotion == chess.NoPiece && candidate.Promotion == chess.Queen
}

// makeMove plays a pre-validated move: piece relocation, captures, castling,
// en passant, promotion, atomic explosions and all state bookkeeping.
func makeMove(pos *chess.Position, mv chess.Move) {
	colour := pos.ToMove
	mover := pos.Board[mv.From]
	var captured chess.Piece

	if mv.IsCastle() {
		applyCastle(pos, colour, mv)
	} else {
		capturedSq := mv.To
		if mv.EnPassant {
			capturedSq = enPassantVictimSquare(mv.From, mv.To)
		}
		captured = pos.Board[capturedSq]
		pos.Clear(capturedSq)

		pos.Clear(mv.From)
		placed := mover
		if mv.Promotion != chess.NoPiece {
			placed = chess.MakePiece(colour, mv.Promotion)
		}
		pos.Set(mv.To, placed)

		switch mover.Kind {
		case chess.King:
			pos.Castling.ClearColour(colour)
		case chess.Rook:
			updateCastlingRightsForRook(pos, colour, mv.From)
		}
		if captured.Kind == chess.Rook {
			updateCastlingRightsForRook(pos, captured.Colour, capturedSq)
		}

		if !captured.IsEmpty() && pos.Ruleset() == chess.AtomicRules {
			explode(pos, mv.To)
		}
	}

	// The en passant target lives for exactly one ply.
	pos.EnPassant = chess.NoSquare
	if mover.Kind == chess.Pawn && abs(chess.RankOf(mv.To)-chess.RankOf(mv.From)) == 2 {
		pos.EnPassant = chess.SquareAt(chess.FileOf(mv.From), (chess.RankOf(mv.From)+chess.RankOf(mv.To))/2)
	}

	if mover.Kind == chess.Pawn || !captured.IsEmpty() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if colour == chess.Black {
		pos.MoveNumber++
	}
	pos.ToMove = colour.Opposite()
}
