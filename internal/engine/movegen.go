package engine

import (
	"sort"

	"github.com/lgbarn/chessrules-go/internal/board"
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// SquareState classifies a destination square relative to the moving piece.
type SquareState int

const (
	Vacant SquareState = iota
	Friendly
	Opposing
)

// String returns the state name.
func (s SquareState) String() string {
	switch s {
	case Vacant:
		return "Vacant"
	case Friendly:
		return "Friendly"
	case Opposing:
		return "Opposing"
	default:
		return "Unknown"
	}
}

// AvailableMoves maps each entity to its moves for the current turn, in
// catalog order then range order. It is rebuilt from scratch every turn.
type AvailableMoves map[chess.EntityID][]chess.MoveInfo

// Get returns the moves of one entity.
func (am AvailableMoves) Get(id chess.EntityID) []chess.MoveInfo {
	return am[id]
}

// All returns every move, grouped by entity in ascending entity order.
func (am AvailableMoves) All() []chess.MoveInfo {
	ids := make([]chess.EntityID, 0, len(am))
	for id := range am {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var all []chess.MoveInfo
	for _, id := range ids {
		all = append(all, am[id]...)
	}
	return all
}

// Count returns the total number of moves.
func (am AvailableMoves) Count() int {
	n := 0
	for _, moves := range am {
		n += len(moves)
	}
	return n
}

// ContainsMoveTo reports whether any entity can move to sq.
func (am AvailableMoves) ContainsMoveTo(sq chess.Square) bool {
	for _, moves := range am {
		for _, m := range moves {
			if m.To == sq {
				return true
			}
		}
	}
	return false
}

// EntityHasMoveTo reports whether the entity can move to sq.
func (am AvailableMoves) EntityHasMoveTo(id chess.EntityID, sq chess.Square) bool {
	_, ok := am.MoveTo(id, sq)
	return ok
}

// MoveTo returns the entity's move to sq.
func (am AvailableMoves) MoveTo(id chess.EntityID, sq chess.Square) (chess.MoveInfo, bool) {
	for _, m := range am[id] {
		if m.To == sq {
			return m, true
		}
	}
	return chess.MoveInfo{}, false
}

// Destinations returns the squares the entity can move to.
func (am AvailableMoves) Destinations(id chess.EntityID) []chess.Square {
	moves := am[id]
	squares := make([]chess.Square, 0, len(moves))
	for _, m := range moves {
		squares = append(squares, m.To)
	}
	return squares
}

// Selectable returns the entities of the given side with at least one move,
// in ascending entity order.
func (am AvailableMoves) Selectable(b *board.Board, side chess.Colour) []chess.EntityID {
	var ids []chess.EntityID
	for _, id := range b.Entities() {
		p, _ := b.Piece(id)
		if p.Colour == side && len(am[id]) > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// ForSide returns the subset of the table belonging to one side.
func (am AvailableMoves) ForSide(b *board.Board, side chess.Colour) AvailableMoves {
	out := make(AvailableMoves)
	for id, moves := range am {
		if p, ok := b.Piece(id); ok && p.Colour == side {
			out[id] = moves
		}
	}
	return out
}

// GenerateMoves builds the move table for every entity on the board, both
// sides included. Castling and en passant eligibility come from the
// resolvers and are not re-verified here.
func GenerateMoves(b *board.Board, ca CastleAvailability, ep EnPassantState) AvailableMoves {
	am := make(AvailableMoves, b.Len())
	for _, id := range b.Entities() {
		am[id] = MovesForEntity(b, id, ca, ep)
	}
	return am
}

// MovesForEntity walks the movement catalog of one entity.
func MovesForEntity(b *board.Board, id chess.EntityID, ca CastleAvailability, ep EnPassantState) []chess.MoveInfo {
	piece, ok := b.Piece(id)
	if !ok {
		return nil
	}
	from, _ := b.Square(id)
	tracker, _ := b.Tracker(id)

	g := generator{b: b, id: id, piece: piece, from: from, moved: tracker.HasMoved(), castles: ca, ep: ep}
	moves := make([]chess.MoveInfo, 0)
	start := from.Vec3()
	for _, mv := range chess.Movements(piece) {
		for step := 1; step <= mv.Range; step++ {
			to, ok := chess.SquareFromVec3(start.Add(mv.Direction.Scale(step)))
			if !ok {
				break
			}
			kind, ok := g.resolve(mv, to)
			if !ok {
				break
			}
			moves = append(moves, chess.MoveInfo{
				Entity:    id,
				Piece:     piece,
				From:      from,
				To:        to,
				Kind:      kind,
				Promotion: promotionFor(piece, to),
			})
			if _, captured := chess.CapturedEntity(kind); captured {
				break
			}
		}
	}
	return moves
}

// generator carries the per-entity inputs of the resolution rules.
type generator struct {
	b       *board.Board
	id      chess.EntityID
	piece   chess.Piece
	from    chess.Square
	moved   bool
	castles CastleAvailability
	ep      EnPassantState
}

func (g generator) classify(sq chess.Square) (SquareState, chess.EntityID) {
	other, ok := g.b.At(sq)
	if !ok {
		return Vacant, chess.NoEntity
	}
	if p, _ := g.b.Piece(other); p.Colour == g.piece.Colour {
		return Friendly, other
	}
	return Opposing, other
}

// resolve applies the rule table to one destination. It returns false when
// the movement does not resolve, which also ends the ray.
func (g generator) resolve(mv chess.Movement, to chess.Square) (chess.MoveKind, bool) {
	state, occupant := g.classify(to)

	switch mv.Tag {
	case chess.Step:
		switch state {
		case Vacant:
			return chess.Move{}, true
		case Opposing:
			return chess.Capture{Captured: occupant}, true
		}
	case chess.PawnMove:
		if state == Vacant {
			return chess.Move{}, true
		}
	case chess.PawnFirstMove:
		if state != Vacant || g.moved {
			break
		}
		skipped, ok := g.from.Offset(0, g.piece.Colour.Forward())
		if _, blocked := g.b.At(skipped); ok && !blocked {
			return chess.FirstMove{}, true
		}
	case chess.PawnCapture:
		if state == Opposing {
			return chess.Capture{Captured: occupant}, true
		}
	case chess.EnPassantCapture:
		if state == Vacant && g.ep.Available && g.ep.Target == to {
			return chess.CaptureEnPassant{Captured: g.ep.Captured}, true
		}
	case chess.CastleKingside:
		return g.castle(chess.WingFor(g.piece.Colour, true))
	case chess.CastleQueenside:
		return g.castle(chess.WingFor(g.piece.Colour, false))
	}
	return nil, false
}

func (g generator) castle(w chess.Wing) (chess.MoveKind, bool) {
	ce := g.castles.Get(w)
	if ce == nil || ce.King != g.id {
		return nil, false
	}
	return chess.Castle{Wing: w}, true
}

// promotionFor returns Queen for a pawn reaching its promotion rank.
func promotionFor(p chess.Piece, to chess.Square) chess.Kind {
	if p.Kind == chess.Pawn && to.Rank == p.Colour.PromotionRank() {
		return chess.Queen
	}
	return chess.NoKind
}
