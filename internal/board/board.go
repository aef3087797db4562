// Package board holds the pieces in play. Each piece is an entity: an opaque
// chess.EntityID whose piece value, square and move tracker live in parallel
// maps. A square index keeps at most one entity per square.
package board

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

type slot struct {
	generation uint32
	alive      bool
}

// Board is the entity registry. The zero value is not usable; call NewBoard.
type Board struct {
	slots []slot
	free  []uint32

	pieces    map[chess.EntityID]chess.Piece
	squares   map[chess.EntityID]chess.Square
	trackers  map[chess.EntityID]MoveTracker
	occupancy map[chess.Square]chess.EntityID
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		pieces:    make(map[chess.EntityID]chess.Piece),
		squares:   make(map[chess.EntityID]chess.Square),
		trackers:  make(map[chess.EntityID]MoveTracker),
		occupancy: make(map[chess.Square]chess.EntityID),
	}
}

// Spawn places a new piece on an empty square and returns its entity.
func (b *Board) Spawn(p chess.Piece, sq chess.Square) (chess.EntityID, error) {
	if !sq.Valid() {
		return chess.NoEntity, fmt.Errorf("spawn %#v: %w", p, errors.ErrInvalidSquare)
	}
	if other, ok := b.occupancy[sq]; ok {
		return chess.NoEntity, fmt.Errorf("spawn %#v on %v (held by %v): %w", p, sq, other, errors.ErrSquareOccupied)
	}

	id := b.allocate()
	b.pieces[id] = p
	b.squares[id] = sq
	b.trackers[id] = 0
	b.occupancy[sq] = id
	return id, nil
}

func (b *Board) allocate() chess.EntityID {
	if n := len(b.free); n > 0 {
		index := b.free[n-1]
		b.free = b.free[:n-1]
		b.slots[index].alive = true
		return chess.NewEntityID(index, b.slots[index].generation)
	}
	b.slots = append(b.slots, slot{generation: 1, alive: true})
	return chess.NewEntityID(uint32(len(b.slots)-1), 1)
}

// Contains reports whether the entity is live on this board.
func (b *Board) Contains(id chess.EntityID) bool {
	index := id.Index()
	if int(index) >= len(b.slots) {
		return false
	}
	s := b.slots[index]
	return s.alive && s.generation == id.Generation()
}

// Despawn removes an entity and frees its square.
func (b *Board) Despawn(id chess.EntityID) error {
	if !b.Contains(id) {
		return fmt.Errorf("despawn %v: %w", id, errors.ErrUnknownEntity)
	}
	delete(b.occupancy, b.squares[id])
	delete(b.pieces, id)
	delete(b.squares, id)
	delete(b.trackers, id)

	index := id.Index()
	b.slots[index].alive = false
	b.slots[index].generation++
	b.free = append(b.free, index)
	return nil
}

// Relocate moves an entity to a square. The destination must be empty or
// already hold the entity; captures are resolved by the caller first.
func (b *Board) Relocate(id chess.EntityID, sq chess.Square) error {
	if !b.Contains(id) {
		return fmt.Errorf("relocate %v: %w", id, errors.ErrUnknownEntity)
	}
	if !sq.Valid() {
		return fmt.Errorf("relocate %v: %w", id, errors.ErrInvalidSquare)
	}
	if other, ok := b.occupancy[sq]; ok {
		if other == id {
			return nil
		}
		return fmt.Errorf("relocate %v to %v (held by %v): %w", id, sq, other, errors.ErrSquareOccupied)
	}
	delete(b.occupancy, b.squares[id])
	b.squares[id] = sq
	b.occupancy[sq] = id
	return nil
}

// RecordMove increments the entity's move tracker.
func (b *Board) RecordMove(id chess.EntityID) error {
	t, ok := b.trackers[id]
	if !ok {
		return fmt.Errorf("record move %v: %w", id, errors.ErrUnknownEntity)
	}
	b.trackers[id] = t.Inc()
	return nil
}

// SetTracker overwrites the entity's move tracker. It is used when loading
// positions and when a promoted piece inherits the pawn's history.
func (b *Board) SetTracker(id chess.EntityID, t MoveTracker) error {
	if _, ok := b.trackers[id]; !ok {
		return fmt.Errorf("set tracker %v: %w", id, errors.ErrUnknownEntity)
	}
	b.trackers[id] = t
	return nil
}

// Piece returns the entity's piece.
func (b *Board) Piece(id chess.EntityID) (chess.Piece, bool) {
	p, ok := b.pieces[id]
	return p, ok
}

// Square returns the entity's square.
func (b *Board) Square(id chess.EntityID) (chess.Square, bool) {
	sq, ok := b.squares[id]
	return sq, ok
}

// Tracker returns the entity's move tracker.
func (b *Board) Tracker(id chess.EntityID) (MoveTracker, bool) {
	t, ok := b.trackers[id]
	return t, ok
}

// At returns the entity on a square.
func (b *Board) At(sq chess.Square) (chess.EntityID, bool) {
	id, ok := b.occupancy[sq]
	return id, ok
}

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq chess.Square) (chess.Piece, bool) {
	id, ok := b.occupancy[sq]
	if !ok {
		return chess.Piece{}, false
	}
	return b.pieces[id], true
}

// Find returns the entity holding exactly piece p on square sq.
func (b *Board) Find(p chess.Piece, sq chess.Square) (chess.EntityID, bool) {
	id, ok := b.occupancy[sq]
	if !ok || b.pieces[id] != p {
		return chess.NoEntity, false
	}
	return id, true
}

// King returns the king of the given colour.
func (b *Board) King(c chess.Colour) (chess.EntityID, chess.Square, bool) {
	king := chess.Piece{Colour: c, Kind: chess.King}
	for _, id := range b.Entities() {
		if b.pieces[id] == king {
			return id, b.squares[id], true
		}
	}
	return chess.NoEntity, chess.Square{}, false
}

// Entities returns every live entity in spawn-slot order.
func (b *Board) Entities() []chess.EntityID {
	ids := make([]chess.EntityID, 0, len(b.pieces))
	for id := range b.pieces {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Index() < ids[j].Index() })
	return ids
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return len(b.pieces)
}

// Copy creates a deep copy of the board. Entity IDs are preserved, so moves
// generated for the original apply to the copy.
func (b *Board) Copy() *Board {
	c := &Board{
		slots:     append([]slot(nil), b.slots...),
		free:      append([]uint32(nil), b.free...),
		pieces:    make(map[chess.EntityID]chess.Piece, len(b.pieces)),
		squares:   make(map[chess.EntityID]chess.Square, len(b.squares)),
		trackers:  make(map[chess.EntityID]MoveTracker, len(b.trackers)),
		occupancy: make(map[chess.Square]chess.EntityID, len(b.occupancy)),
	}
	for id, p := range b.pieces {
		c.pieces[id] = p
	}
	for id, sq := range b.squares {
		c.squares[id] = sq
	}
	for id, t := range b.trackers {
		c.trackers[id] = t
	}
	for sq, id := range b.occupancy {
		c.occupancy[sq] = id
	}
	return c
}
