package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// EnPassantState says whether an en passant capture is possible this turn.
// The zero value is Unavailable.
type EnPassantState struct {
	Available bool

	// Target is the square the capturing pawn moves to: the square the
	// double-stepping pawn skipped.
	Target chess.Square

	// Captured is the pawn that double-stepped.
	Captured chess.EntityID
}

// ResolveEnPassant derives the en passant state from the latest move only.
// It is fully recomputed every turn, so the opportunity lapses after one ply.
// seed stands in for the latest move while the history is empty, e.g. the
// double step implied by a FEN en passant square; it may be nil.
func ResolveEnPassant(h *MoveHistory, seed *chess.MoveInfo) EnPassantState {
	last := h.Latest()
	if last == nil {
		last = seed
	}
	if last == nil {
		return EnPassantState{}
	}
	return EnPassantAfter(*last)
}

// EnPassantAfter returns the en passant state created by a single move.
func EnPassantAfter(m chess.MoveInfo) EnPassantState {
	if _, ok := m.Kind.(chess.FirstMove); !ok {
		return EnPassantState{}
	}
	target, ok := m.To.Offset(0, -m.Piece.Colour.Forward())
	if !ok {
		return EnPassantState{}
	}
	return EnPassantState{Available: true, Target: target, Captured: m.Entity}
}

// String returns the target square in FEN form, or "-".
func (s EnPassantState) String() string {
	if !s.Available {
		return "-"
	}
	return s.Target.String()
}
