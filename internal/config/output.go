package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Notation selects how moves are written.
type Notation int

const (
	SAN Notation = iota // Algebraic notation as shown in the history (e4, Nf3, 0-0)
	UCI                 // Long algebraic coordinates (e2e4, e7e8q)
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Notation is the move format for history output
	Notation Notation

	// MaxLineLength is the maximum line length for move text; 0 disables wrapping
	MaxLineLength uint

	// JSONFormat enables JSON output instead of move text
	JSONFormat bool

	// Colour enables ANSI colours in board diagrams
	Colour bool

	// Symbols draws Unicode chess symbols in board diagrams
	Symbols bool

	// ShowBoard prints the board after the game
	ShowBoard bool

	// ShowSelectable lists the pieces the side to move can select
	ShowSelectable bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Notation:      SAN,
		MaxLineLength: 80,
		ShowBoard:     true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Notation != SAN && o.Notation != UCI {
		return fmt.Errorf("unknown notation %d: %w", o.Notation, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength != 0 && o.MaxLineLength < 10 {
		return fmt.Errorf("max line length %d too short: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
