package output

import (
	"io"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// MoveStrings returns the text of moves legal in pos, sorted.
func MoveStrings(pos *chess.Position, moves []chess.Move) []string {
	out := engine.MoveTexts(pos, moves)
	slices.Sort(out)
	return out
}

// WriteMoves writes the sorted moves space-separated, wrapping lines at
// maxLineLength.
func WriteMoves(w io.Writer, pos *chess.Position, moves []chess.Move, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	for _, text := range MoveStrings(pos, moves) {
		ow.Write(text)
	}
	ow.NewLine()
}
