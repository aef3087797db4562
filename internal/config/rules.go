package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// RulesConfig holds the optional rule checks.
type RulesConfig struct {
	// KingSafety filters moves that leave the mover's king attacked, refuses
	// castling through check and ends the game on checkmate or stalemate.
	// Off by default.
	KingSafety bool

	// AutoPromotion is the piece a pawn becomes when a move is selected
	// without naming one.
	AutoPromotion chess.Kind
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{AutoPromotion: chess.Queen}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	if !r.AutoPromotion.CanPromoteTo() {
		return fmt.Errorf("pawns cannot promote to %v: %w", r.AutoPromotion, errors.ErrInvalidConfig)
	}
	return nil
}
