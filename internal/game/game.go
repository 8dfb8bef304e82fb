// Package game tracks a game in progress: the current position, the moves
// played to reach it and how often each position has occurred.
package game

import (
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/hashing"
)

// FivefoldCount is the number of occurrences of one position that ends
// the game.
const FivefoldCount = 5

// Game is a sequence of moves from a starting position.
type Game struct {
	// The current position. Treat as read-only; use Play to advance.
	Position *chess.Position

	// Moves played so far, as applied (castling and en passant flags set).
	History []chess.Move

	// Positions before each move in History, for Undo.
	previous []*chess.Position

	positions *hashing.RepetitionTracker
}

// New starts a game from the variant's initial position. The seed only
// matters for Chess960.
func New(variant chess.Variant, seed uint64) *Game {
	return fromPosition(engine.NewPosition(variant, seed))
}

// FromFEN starts a game from a FEN position.
func FromFEN(fen string, variant chess.Variant) (*Game, error) {
	pos, err := engine.DecodeFEN(fen, variant)
	if err != nil {
		return nil, err
	}
	return fromPosition(pos), nil
}

func fromPosition(pos *chess.Position) *Game {
	g := &Game{
		Position:  pos,
		positions: hashing.NewRepetitionTracker(),
	}
	g.positions.Push(hashing.Key(pos))
	return g
}

// Play applies mv. It fails with ErrGameOver once the game has finished and
// with ErrIllegalMove when mv is not legal; in both cases the game is
// unchanged.
func (g *Game) Play(mv chess.Move) error {
	if state, over := g.Status(); over {
		return g.moveError(engine.MoveText(g.Position, mv), errors.Wrap(errors.ErrGameOver, state.String()))
	}
	legal, ok := engine.MatchLegalMove(g.Position, mv)
	if !ok {
		return g.moveError(engine.MoveText(g.Position, mv), errors.ErrIllegalMove)
	}

	g.previous = append(g.previous, g.Position.Clone())
	engine.ApplyMove(g.Position, legal)
	g.History = append(g.History, legal)
	g.positions.Push(hashing.Key(g.Position))
	return nil
}

// PlayText parses and plays space-separated moves in long algebraic
// notation, stopping at the first failure.
func (g *Game) PlayText(text string) error {
	for _, field := range strings.Fields(text) {
		mv, err := chess.ParseMove(field)
		if err != nil {
			return g.moveError(field, err)
		}
		if err := g.Play(mv); err != nil {
			return err
		}
	}
	return nil
}

// Undo takes back the last move. It returns false when no moves have been
// played.
func (g *Game) Undo() bool {
	n := len(g.previous)
	if n == 0 {
		return false
	}
	g.Position = g.previous[n-1]
	g.previous = g.previous[:n-1]
	g.History = g.History[:len(g.History)-1]
	g.positions.Pop()
	return true
}

// Status classifies the current position, adding fivefold repetition to
// the position-only rules of engine.Terminal.
func (g *Game) Status() (engine.TerminalState, bool) {
	if state, over := engine.Terminal(g.Position); over {
		return state, true
	}
	if g.RepetitionCount() >= FivefoldCount {
		return engine.TerminalState{Kind: engine.FivefoldRepetition}, true
	}
	return engine.TerminalState{}, false
}

// RepetitionCount returns how many times the current position has occurred.
func (g *Game) RepetitionCount() int {
	return g.positions.Current()
}

// DistinctPositions returns how many different positions the game has
// visited.
func (g *Game) DistinctPositions() int {
	return g.positions.UniqueCount()
}

// LegalMoves returns the legal moves in the current position, or nil once
// the game is over.
func (g *Game) LegalMoves() []chess.Move {
	if _, over := g.Status(); over {
		return nil
	}
	return engine.LegalMoves(g.Position)
}

// FEN returns the FEN of the current position.
func (g *Game) FEN() string {
	return engine.EncodeFEN(g.Position)
}

// MoveText returns the history as space-separated long algebraic moves.
// PlayText on a fresh game accepts it back.
func (g *Game) MoveText() string {
	return strings.Join(g.HistoryText(), " ")
}

// HistoryText returns engine.MoveText of each move played, in order.
func (g *Game) HistoryText() []string {
	moves := make([]string, len(g.History))
	for i, mv := range g.History {
		moves[i] = engine.MoveText(g.previous[i], mv)
	}
	return moves
}

func (g *Game) moveError(text string, err error) error {
	return &errors.MoveError{
		Err:      err,
		PlyNum:   len(g.History) + 1,
		MoveText: text,
		FEN:      g.FEN(),
	}
}
