package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// LegalMoves returns every legal move of the side to move.
//
// Each pseudo-legal candidate is played on a copy of the position and kept
// only if it survives the ruleset's safety rules. Under the atomic ruleset a
// position whose king has been blown up is over, so no moves are returned.
func LegalMoves(pos *chess.Position) []chess.Move {
	if pos.Ruleset() == chess.AtomicRules && (!pos.HasKing(chess.White) || !pos.HasKing(chess.Black)) {
		return nil
	}

	candidates := GeneratePseudoLegalMoves(pos)
	legal := candidates[:0]
	for _, mv := range candidates {
		if isLegal(pos, mv) {
			legal = append(legal, mv)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	if pos.Ruleset() == chess.AtomicRules && (!pos.HasKing(chess.White) || !pos.HasKing(chess.Black)) {
		return false
	}
	for _, mv := range GeneratePseudoLegalMoves(pos) {
		if isLegal(pos, mv) {
			return true
		}
	}
	return false
}

// isLegal applies the ruleset's safety filter to a pseudo-legal move.
func isLegal(pos *chess.Position, mv chess.Move) bool {
	// Kings leave the board only through terminal states, never by capture.
	if !mv.IsCastle() && pos.Board[mv.To].Kind == chess.King {
		return false
	}

	switch pos.Ruleset() {
	case chess.AtomicRules:
		return isLegalAtomic(pos, mv)
	default:
		return tryMove(pos, mv)
	}
}

// tryMove makes a move on a copied position and checks that it does not
// leave the mover's king in check.
func tryMove(pos *chess.Position, mv chess.Move) bool {
	colour := pos.ToMove
	next := pos.Clone()
	makeMove(next, mv)
	return !IsInCheck(next, colour)
}

// isLegalAtomic applies the atomic rules:
//   - the king may never capture, since the blast would destroy it;
//   - castling is not allowed out of check;
//   - a capture that blows up the mover's own king is illegal;
//   - a capture that blows up the enemy king ends the game and is legal
//     whatever it leaves behind;
//   - everything else follows the classical self-check rule.
func isLegalAtomic(pos *chess.Position, mv chess.Move) bool {
	colour := pos.ToMove
	mover := pos.Board[mv.From]

	if mv.IsCastle() && IsInCheck(pos, colour) {
		return false
	}
	capture := isCapture(pos, mv)
	if capture && mover.Kind == chess.King {
		return false
	}

	next := pos.Clone()
	makeMove(next, mv)
	if !capture {
		return !IsInCheck(next, colour)
	}
	if !next.HasKing(colour) {
		return false
	}
	if !next.HasKing(colour.Opposite()) {
		return true
	}
	return !IsInCheck(next, colour)
}

// isCapture reports whether mv removes an enemy piece. Castling never
// captures, even when the king's destination holds the castling rook.
func isCapture(pos *chess.Position, mv chess.Move) bool {
	if mv.EnPassant {
		return true
	}
	if mv.IsCastle() {
		return false
	}
	target := pos.Board[mv.To]
	return !target.IsEmpty() && target.Colour != pos.ToMove
}
