// Package errors defines the sentinel errors of the rules engine and the two
// wrapper types, MoveError and ParseError, that attach position or input
// context to them.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Callers match these with Is; wrappers below never hide them.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates malformed algebraic square text.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMove indicates move text that cannot be parsed.
	ErrInvalidMove = errors.New("invalid move text")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move was attempted in a finished game.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidVariant indicates an unknown variant name.
	ErrInvalidVariant = errors.New("invalid variant")

	// ErrInvalidSuite indicates a malformed perft suite file.
	ErrInvalidSuite = errors.New("invalid perft suite")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError records where in a game a move was rejected.
type MoveError struct {
	Err      error  // The underlying error
	PlyNum   int    // 1-based ply number (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	FEN      string // The position the move was tried in (if known)
}

func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError locates a failure inside FEN text, a suite file or a config
// file. Field names the FEN field or suite key that was rejected.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed (or the file name)
	Field    string // Which part of the input failed (e.g. "castling")
	Line     int    // Line number (1-based, 0 if not applicable)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is forwards to the standard library errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As forwards to the standard library errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap prefixes err with context. A nil err stays nil.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf is Wrap with a formatted prefix.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
