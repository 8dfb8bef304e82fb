package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// BoardPrinter draws positions as text diagrams, rank 8 at the top.
type BoardPrinter struct {
	useColor bool
}

// NewBoardPrinter creates a printer. Without colour, empty squares are
// drawn as dots; with colour, squares get a light or dark background.
func NewBoardPrinter(useColor bool) *BoardPrinter {
	return &BoardPrinter{useColor: useColor}
}

// Render returns the diagram of pos.
func (bp *BoardPrinter) Render(pos *chess.Position) string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.SquareAt(file, rank)
			sb.WriteString(bp.square(sq, pos.Get(sq)))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for file := 0; file < chess.BoardSize; file++ {
		if bp.useColor {
			fmt.Fprintf(&sb, " %c ", 'a'+file)
		} else {
			fmt.Fprintf(&sb, "%c ", 'a'+file)
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Print writes the diagram of pos to w.
func (bp *BoardPrinter) Print(w io.Writer, pos *chess.Position) error {
	_, err := io.WriteString(w, bp.Render(pos))
	return err
}

func (bp *BoardPrinter) square(sq chess.Square, piece chess.Piece) string {
	if !bp.useColor {
		if piece.IsEmpty() {
			return ". "
		}
		return string(piece.FENLetter()) + " "
	}

	attrs := []color.Attribute{color.BgYellow}
	if sq.IsLight() {
		attrs[0] = color.BgHiYellow
	}
	text := "   "
	if !piece.IsEmpty() {
		fg := color.FgHiWhite
		if piece.Colour == chess.Black {
			fg = color.FgBlack
		}
		attrs = append(attrs, fg, color.Bold)
		text = " " + string(piece.FENLetter()) + " "
	}

	// Enabled per cell, overriding color.NoColor.
	cell := color.New(attrs...)
	cell.EnableColor()
	return cell.Sprint(text)
}
