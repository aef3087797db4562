package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/board"
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// CastleEntities names the pieces taking part in one castling option.
type CastleEntities struct {
	King            chess.EntityID
	Rook            chess.EntityID
	RookDestination chess.Square
}

// CastleAvailability holds the castling options for this turn. A nil wing
// cannot castle.
type CastleAvailability struct {
	WhiteKingside  *CastleEntities
	WhiteQueenside *CastleEntities
	BlackKingside  *CastleEntities
	BlackQueenside *CastleEntities
}

// Get returns the entities for a wing, or nil.
func (ca CastleAvailability) Get(w chess.Wing) *CastleEntities {
	switch w {
	case chess.WhiteKingside:
		return ca.WhiteKingside
	case chess.WhiteQueenside:
		return ca.WhiteQueenside
	case chess.BlackKingside:
		return ca.BlackKingside
	case chess.BlackQueenside:
		return ca.BlackQueenside
	default:
		return nil
	}
}

func (ca *CastleAvailability) set(w chess.Wing, ce *CastleEntities) {
	switch w {
	case chess.WhiteKingside:
		ca.WhiteKingside = ce
	case chess.WhiteQueenside:
		ca.WhiteQueenside = ce
	case chess.BlackKingside:
		ca.BlackKingside = ce
	case chess.BlackQueenside:
		ca.BlackQueenside = ce
	}
}

// String returns the available wings in FEN form, e.g. "KQkq", or "-".
func (ca CastleAvailability) String() string {
	var sb strings.Builder
	for _, w := range chess.Wings {
		if ca.Get(w) != nil {
			sb.WriteString(w.String())
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// ResolveCastleAvailability checks each wing independently: the king must
// stand unmoved on its home square, the rook unmoved on its corner, and
// every square between them must be vacant.
func ResolveCastleAvailability(b *board.Board) CastleAvailability {
	var ca CastleAvailability
	for _, w := range chess.Wings {
		ca.set(w, resolveWing(b, w))
	}
	return ca
}

func resolveWing(b *board.Board, w chess.Wing) *CastleEntities {
	king, ok := unmovedAt(b, chess.Piece{Colour: w.Colour(), Kind: chess.King}, w.KingHome())
	if !ok {
		return nil
	}
	rook, ok := unmovedAt(b, chess.Piece{Colour: w.Colour(), Kind: chess.Rook}, w.RookHome())
	if !ok {
		return nil
	}
	for _, sq := range w.Gap() {
		if _, occupied := b.At(sq); occupied {
			return nil
		}
	}
	return &CastleEntities{King: king, Rook: rook, RookDestination: w.RookDestination()}
}

func unmovedAt(b *board.Board, p chess.Piece, sq chess.Square) (chess.EntityID, bool) {
	id, ok := b.Find(p, sq)
	if !ok {
		return chess.NoEntity, false
	}
	if t, _ := b.Tracker(id); t.HasMoved() {
		return chess.NoEntity, false
	}
	return id, true
}

// RestrictCastlingForSafety removes the wings whose king is in check or
// would cross or land on a square the opponent attacks.
func RestrictCastlingForSafety(b *board.Board, ca CastleAvailability) CastleAvailability {
	for _, w := range chess.Wings {
		if ca.Get(w) == nil {
			continue
		}
		for _, sq := range w.KingPath() {
			if IsSquareAttacked(b, sq, w.Colour().Opposite()) {
				ca.set(w, nil)
				break
			}
		}
	}
	return ca
}
