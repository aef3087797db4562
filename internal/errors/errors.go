// Package errors provides sentinel errors and error types for the rules engine.
// Expected absences (no castle for a wing, no en passant target) are never
// errors; these values cover misuse, broken invariants and missing features.
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

	// ErrInvalidSquare indicates square text that is not on the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMoveText indicates a move string that cannot be parsed.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrSquareOccupied indicates an attempt to put two pieces on one square.
	ErrSquareOccupied = errors.New("square occupied")

	// ErrUnknownEntity indicates an entity that is not on the board.
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrIllegalSelection indicates a selected move that is not available.
	ErrIllegalSelection = errors.New("illegal selection")

	// ErrWrongPhase indicates an operation attempted in the wrong turn phase.
	ErrWrongPhase = errors.New("wrong turn phase")

	// ErrUnreachable indicates a broken programming invariant.
	ErrUnreachable = errors.New("unreachable")

	// ErrNotImplemented indicates a feature that does not exist.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// TurnError wraps errors with turn context: the phase, the half-move
// number and the piece and square involved. It supports unwrapping via
// errors.Is() and errors.As().
type TurnError struct {
	Err    error  // The underlying error
	Phase  string // Turn phase in which the error occurred
	Ply    int    // Half-move number (0 before the first move)
	Entity string // Piece entity involved (if applicable)
	Square string // Square involved (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *TurnError) Error() string {
	var parts []string

	if e.Phase != "" {
		parts = append(parts, "phase "+e.Phase)
	}

	parts = append(parts, fmt.Sprintf("ply %d", e.Ply))

	if e.Entity != "" {
		parts = append(parts, "entity "+e.Entity)
	}

	if e.Square != "" {
		parts = append(parts, "square "+e.Square)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the TurnError wrapper.
func (e *TurnError) Unwrap() error {
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

// Is is errors.Is, re-exported so callers need a single errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As, re-exported so callers need a single errors import.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
