package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Square is a board index in [0,64): a1 = 0, b1 = 1, ..., h8 = 63.
type Square int8

// NoSquare marks the absence of a square (e.g. no en-passant target).
const NoSquare Square = -1

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Named squares used throughout the engine and its tests.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A8 Square = 56 + iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// SquareAt builds a square from zero-based file and rank.
func SquareAt(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

// FileOf returns the zero-based file (0 = a) of a square.
func FileOf(sq Square) int {
	return int(sq) % BoardSize
}

// RankOf returns the zero-based rank (0 = rank 1) of a square.
func RankOf(sq Square) int {
	return int(sq) / BoardSize
}

// IsValid reports whether the square lies on the board.
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < NumSquares
}

// Offset returns the square df files and dr ranks away, and false when that
// falls off the board.
func (sq Square) Offset(df, dr int) (Square, bool) {
	file := FileOf(sq) + df
	rank := RankOf(sq) + dr
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare, false
	}
	return SquareAt(file, rank), true
}

// IsLight reports whether the square is a light square (h1 is light).
func (sq Square) IsLight() bool {
	return (FileOf(sq)+RankOf(sq))%2 == 1
}

// String returns algebraic notation such as "e4", or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + FileOf(sq)), byte('1' + RankOf(sq))})
}

// ParseSquare parses algebraic text such as "e1". It returns false for
// anything that is not exactly a file letter followed by a rank digit.
func ParseSquare(text string) (Square, bool) {
	if len(text) != 2 {
		return NoSquare, false
	}
	col, rank := text[0], text[1]
	if col < 'a' || col > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return SquareAt(int(col-'a'), int(rank-'1')), true
}

// SquareFromString is ParseSquare reporting failure as an error wrapping
// ErrInvalidSquare.
func SquareFromString(text string) (Square, error) {
	sq, ok := ParseSquare(text)
	if !ok {
		return NoSquare, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for fixed square names in tables and tests.
func MustParseSquare(text string) Square {
	sq, ok := ParseSquare(text)
	if !ok {
		panic("chess: malformed square " + text)
	}
	return sq
}
