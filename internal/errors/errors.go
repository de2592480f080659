// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not in the legal set for its origin.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates a square outside the 8x8 board or unparseable square text.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrEmptySquare indicates a selection of a square with no piece on it.
	ErrEmptySquare = errors.New("empty square")

	// ErrWrongSide indicates a selection of a piece that does not belong to the side to move.
	ErrWrongSide = errors.New("piece does not belong to side to move")

	// ErrGameOver indicates a move submitted after the game reached a terminal verdict.
	ErrGameOver = errors.New("game is over")

	// ErrNoHistory indicates an undo or redo with nothing to step over.
	ErrNoHistory = errors.New("no move to undo or redo")

	// ErrParseFailure indicates move text that could not be parsed.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates an unknown game id in a registry lookup.
	ErrGameNotFound = errors.New("game not found")
)

// IllegalMoveError reports a move rejected by the executor. It always unwraps
// to ErrIllegalMove so callers can test with errors.Is.
type IllegalMoveError struct {
	Move   string // The move in coordinate form (e.g. "e2e5")
	Reason string // Why it was rejected (optional)
}

// Error returns a formatted error message.
func (e *IllegalMoveError) Error() string {
	var parts []string
	parts = append(parts, ErrIllegalMove.Error())
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Move))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns ErrIllegalMove.
func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}

// SquareError attaches a square to a selection or lookup failure.
type SquareError struct {
	Err    error  // The underlying error
	Square string // Algebraic name of the square, or the raw input
}

// Error returns the square followed by the underlying error.
func (e *SquareError) Error() string {
	if e.Err == nil {
		return "square " + e.Square
	}
	return fmt.Sprintf("square %s: %v", e.Square, e.Err)
}

// Unwrap returns the underlying error.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with position context.
// It's used for FEN and move-text parsing errors.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Pos      int    // Byte offset (1-based, 0 if unknown)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Pos > 0 {
			loc += fmt.Sprintf(" at %d", e.Pos)
		}
		parts = append(parts, loc)
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

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
