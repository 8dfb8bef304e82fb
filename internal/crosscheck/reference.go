package crosscheck

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	notnil "github.com/notnil/chess"
)

// Reference is an independent move generator that lists the legal moves
// of a FEN position in long algebraic notation.
type Reference interface {
	Name() string
	LegalMoves(fen string) ([]string, error)
}

// References returns every built-in reference generator.
func References() []Reference {
	return []Reference{Dragontooth{}, Notnil{}}
}

// Dragontooth wraps github.com/dylhunn/dragontoothmg.
type Dragontooth struct{}

// Name returns "dragontoothmg".
func (Dragontooth) Name() string { return "dragontoothmg" }

// LegalMoves lists the moves dragontoothmg generates, promotion letters
// lower-cased. Its FEN parser
// panics on malformed input, which is reported as an error.
func (Dragontooth) LegalMoves(fen string) (moves []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dragontoothmg: parse %q: %v", fen, r)
		}
	}()

	board := dragontoothmg.ParseFen(fen)
	for _, mv := range board.GenerateLegalMoves() {
		moves = append(moves, strings.ToLower(mv.String()))
	}
	return moves, nil
}

// Notnil wraps github.com/notnil/chess.
type Notnil struct{}

// Name returns "notnil/chess".
func (Notnil) Name() string { return "notnil/chess" }

// LegalMoves lists the moves notnil/chess considers valid.
func (Notnil) LegalMoves(fen string) ([]string, error) {
	opt, err := notnil.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("notnil/chess: %w", err)
	}
	game := notnil.NewGame(opt, notnil.UseNotation(notnil.UCINotation{}))

	valid := game.ValidMoves()
	moves := make([]string, 0, len(valid))
	for _, mv := range valid {
		moves = append(moves, strings.ToLower(mv.String()))
	}
	return moves, nil
}
