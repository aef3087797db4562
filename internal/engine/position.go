package engine

import (
	"github.com/lgbarn/chessrules-go/internal/board"
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Rules switches optional rule checks on.
type Rules struct {
	// KingSafety drops moves that leave the mover's king attacked, refuses
	// castling out of, through or onto an attacked square, and detects
	// checkmate and stalemate.
	KingSafety bool
}

// Outcome is the state of the game for the side to move.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "Ongoing"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Unknown"
	}
}

// Position is the state derived for one turn.
type Position struct {
	Side      chess.Colour
	EnPassant EnPassantState
	Castles   CastleAvailability
	Moves     AvailableMoves
	Attacked  AttackedSquares

	// InCheck and Outcome are only computed under Rules.KingSafety.
	InCheck bool
	Outcome Outcome
}

// ResolveCastling returns the castle availability for this turn. Under
// king safety, wings whose king is in check or would cross an attacked
// square are removed.
func ResolveCastling(b *board.Board, rules Rules) CastleAvailability {
	ca := ResolveCastleAvailability(b)
	if rules.KingSafety {
		ca = RestrictCastlingForSafety(b, ca)
	}
	return ca
}

// ResolveMoves builds the move table for the turn of side. Under king
// safety the moves of side that expose its king are dropped.
func ResolveMoves(b *board.Board, ca CastleAvailability, ep EnPassantState, side chess.Colour, rules Rules) AvailableMoves {
	am := GenerateMoves(b, ca, ep)
	if rules.KingSafety {
		am = FilterKingSafety(b, am, ca, side)
	}
	return am
}

// ResolveOutcome reports whether side is in check and whether the game is
// over for it. am must already be filtered for king safety.
func ResolveOutcome(b *board.Board, am AvailableMoves, side chess.Colour) (bool, Outcome) {
	inCheck := IsInCheck(b, side)
	if len(am.Selectable(b, side)) > 0 {
		return inCheck, Ongoing
	}
	if inCheck {
		return true, Checkmate
	}
	return false, Stalemate
}

// FilterKingSafety removes the moves of side that would leave its own king
// attacked. Moves of the other side are kept as generated.
func FilterKingSafety(b *board.Board, am AvailableMoves, ca CastleAvailability, side chess.Colour) AvailableMoves {
	out := make(AvailableMoves, len(am))
	for id, moves := range am {
		if p, ok := b.Piece(id); !ok || p.Colour != side {
			out[id] = moves
			continue
		}
		kept := make([]chess.MoveInfo, 0, len(moves))
		for _, m := range moves {
			if LeavesKingSafe(b, m, ca) {
				kept = append(kept, m)
			}
		}
		out[id] = kept
	}
	return out
}

// LeavesKingSafe plays the move on a copy of the board and reports whether
// the mover's king is unattacked afterwards.
func LeavesKingSafe(b *board.Board, m chess.MoveInfo, ca CastleAvailability) bool {
	trial := b.Copy()
	if _, err := ApplyMove(trial, m, ca); err != nil {
		return false
	}
	return !IsInCheck(trial, m.Piece.Colour)
}

// HasLegalMoves reports whether side has any move that keeps its king safe
// given the en passant state for its turn.
func HasLegalMoves(b *board.Board, side chess.Colour, ep EnPassantState) bool {
	ca := RestrictCastlingForSafety(b, ResolveCastleAvailability(b))
	for _, id := range b.Entities() {
		if p, _ := b.Piece(id); p.Colour != side {
			continue
		}
		for _, m := range MovesForEntity(b, id, ca, ep) {
			if LeavesKingSafe(b, m, ca) {
				return true
			}
		}
	}
	return false
}

// AnnotateCheck sets IsCheck and IsCheckmate on a move that has just been
// applied to b.
func AnnotateCheck(b *board.Board, m chess.MoveInfo) chess.MoveInfo {
	opponent := m.Piece.Colour.Opposite()
	m.IsCheck = IsInCheck(b, opponent)
	m.IsCheckmate = m.IsCheck && !HasLegalMoves(b, opponent, EnPassantAfter(m))
	return m
}
