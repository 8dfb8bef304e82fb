package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// TerminalKind classifies how a game ended.
type TerminalKind int

const (
	Checkmate TerminalKind = iota + 1
	Stalemate
	InsufficientMaterial
	SeventyFiveMoveRule
	FivefoldRepetition
)

// String returns the string representation of a terminal kind.
func (k TerminalKind) String() string {
	switch k {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case InsufficientMaterial:
		return "Insufficient material"
	case SeventyFiveMoveRule:
		return "75-move rule"
	case FivefoldRepetition:
		return "Fivefold repetition"
	}
	return "Unknown"
}

// TerminalState describes a finished game. Winner is only meaningful for
// Checkmate; every other kind is a draw.
type TerminalState struct {
	Kind   TerminalKind
	Winner chess.Colour
}

// IsDraw reports whether the game ended without a winner.
func (t TerminalState) IsDraw() bool {
	return t.Kind != Checkmate
}

// Result returns the PGN-style result string: "1-0", "0-1" or "1/2-1/2".
func (t TerminalState) Result() string {
	if t.IsDraw() {
		return "1/2-1/2"
	}
	if t.Winner == chess.White {
		return "1-0"
	}
	return "0-1"
}

// String returns e.g. "Checkmate (White wins)" or "Stalemate".
func (t TerminalState) String() string {
	if t.Kind == Checkmate {
		return t.Kind.String() + " (" + t.Winner.String() + " wins)"
	}
	return t.Kind.String()
}

// Terminal classifies the position. The second result is false while the
// game is still in play.
//
// Under the atomic ruleset a missing king means it was destroyed by the
// last explosion, and the side that set it off has won.
func Terminal(pos *chess.Position) (TerminalState, bool) {
	if pos.Ruleset() == chess.AtomicRules {
		whiteKing, blackKing := pos.HasKing(chess.White), pos.HasKing(chess.Black)
		switch {
		case whiteKing && !blackKing:
			return TerminalState{Kind: Checkmate, Winner: chess.White}, true
		case blackKing && !whiteKing:
			return TerminalState{Kind: Checkmate, Winner: chess.Black}, true
		}
	}

	colour := pos.ToMove
	if !HasLegalMoves(pos) {
		if IsInCheck(pos, colour) {
			return TerminalState{Kind: Checkmate, Winner: colour.Opposite()}, true
		}
		return TerminalState{Kind: Stalemate}, true
	}

	if pos.Ruleset() == chess.ClassicalRules && HasInsufficientMaterial(pos) {
		return TerminalState{Kind: InsufficientMaterial}, true
	}
	if pos.HalfmoveClock >= SeventyFiveMoveHalfmoves {
		return TerminalState{Kind: SeventyFiveMoveRule}, true
	}
	return TerminalState{}, false
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	colour := pos.ToMove
	return IsInCheck(pos, colour) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	colour := pos.ToMove
	return !IsInCheck(pos, colour) && !HasLegalMoves(pos)
}
