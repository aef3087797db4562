package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/board"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Motion asks the presentation layer to move an entity to a square.
type Motion struct {
	Entity chess.EntityID
	To     chess.Square
}

// Applied describes the board changes made by ApplyMove.
type Applied struct {
	// Move is the move as applied. After a promotion its Entity is the
	// replacement piece.
	Move chess.MoveInfo

	// Motions lists the pieces to animate: the mover, then the castling rook.
	Motions []Motion

	Captured chess.EntityID
	Promoted chess.EntityID
}

// ApplyMove performs a move on the board: removes the captured piece,
// relocates the mover and bumps its tracker, relocates the rook when
// castling, and replaces a promoting pawn with the promoted piece, which
// inherits the pawn's tracker. The move is validated before the board is
// touched; a move that does not fit the board is ErrUnreachable.
func ApplyMove(b *board.Board, m chess.MoveInfo, ca CastleAvailability) (Applied, error) {
	if err := checkApplicable(b, m, ca); err != nil {
		return Applied{}, err
	}

	applied := Applied{Move: m, Captured: chess.NoEntity, Promoted: chess.NoEntity}

	if captured, ok := chess.CapturedEntity(m.Kind); ok {
		if err := b.Despawn(captured); err != nil {
			return Applied{}, errors.Wrap(err, "remove captured piece")
		}
		applied.Captured = captured
	}

	if err := b.Relocate(m.Entity, m.To); err != nil {
		return Applied{}, fmt.Errorf("move %v to %v: %v: %w", m.Entity, m.To, err, errors.ErrUnreachable)
	}
	if err := b.RecordMove(m.Entity); err != nil {
		return Applied{}, fmt.Errorf("record move of %v: %v: %w", m.Entity, err, errors.ErrUnreachable)
	}
	applied.Motions = append(applied.Motions, Motion{Entity: m.Entity, To: m.To})

	if castle, ok := m.Kind.(chess.Castle); ok {
		ce := ca.Get(castle.Wing)
		if err := b.Relocate(ce.Rook, ce.RookDestination); err != nil {
			return Applied{}, fmt.Errorf("castle rook to %v: %v: %w", ce.RookDestination, err, errors.ErrUnreachable)
		}
		if err := b.RecordMove(ce.Rook); err != nil {
			return Applied{}, fmt.Errorf("record move of castle rook %v: %v: %w", ce.Rook, err, errors.ErrUnreachable)
		}
		applied.Motions = append(applied.Motions, Motion{Entity: ce.Rook, To: ce.RookDestination})
	}

	if promoted, ok := m.PromotedPiece(); ok {
		id, err := promote(b, m.Entity, promoted)
		if err != nil {
			return Applied{}, err
		}
		applied.Promoted = id
		applied.Move.Entity = id
		applied.Motions[0].Entity = id
	}

	return applied, nil
}

// checkApplicable verifies a move against the board before any mutation.
func checkApplicable(b *board.Board, m chess.MoveInfo, ca CastleAvailability) error {
	p, ok := b.Piece(m.Entity)
	if !ok {
		return fmt.Errorf("mover %v not on board: %w", m.Entity, errors.ErrUnreachable)
	}
	if sq, _ := b.Square(m.Entity); sq != m.From || p != m.Piece {
		return fmt.Errorf("mover %v is %#v on %v, move says %#v on %v: %w",
			m.Entity, p, sq, m.Piece, m.From, errors.ErrUnreachable)
	}
	if captured, ok := chess.CapturedEntity(m.Kind); ok && !b.Contains(captured) {
		return fmt.Errorf("captured piece %v not on board: %w", captured, errors.ErrUnreachable)
	}
	if castle, ok := m.Kind.(chess.Castle); ok {
		ce := ca.Get(castle.Wing)
		if ce == nil || ce.King != m.Entity || !b.Contains(ce.Rook) {
			return fmt.Errorf("castle %v not available: %w", castle.Wing, errors.ErrUnreachable)
		}
	}
	if m.Promotion != chess.NoKind && (m.Piece.Kind != chess.Pawn || !m.Promotion.CanPromoteTo()) {
		return fmt.Errorf("%#v cannot promote to %v: %w", m.Piece, m.Promotion, errors.ErrUnreachable)
	}
	return nil
}

// promote swaps a pawn for a new piece on the same square.
func promote(b *board.Board, pawn chess.EntityID, promoted chess.Piece) (chess.EntityID, error) {
	sq, _ := b.Square(pawn)
	tracker, _ := b.Tracker(pawn)
	if err := b.Despawn(pawn); err != nil {
		return chess.NoEntity, errors.Wrap(err, "promote")
	}
	id, err := b.Spawn(promoted, sq)
	if err != nil {
		return chess.NoEntity, errors.Wrap(err, "promote")
	}
	if err := b.SetTracker(id, tracker); err != nil {
		return chess.NoEntity, fmt.Errorf("promote %v: %v: %w", id, err, errors.ErrUnreachable)
	}
	return id, nil
}
