// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// BackRank is the rank the colour's king and rooks start on.
func (c Colour) BackRank() Rank {
	if c == White {
		return Rank1
	}
	return Rank8
}

// PawnRank is the rank the colour's pawns start on.
func (c Colour) PawnRank() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// PromotionRank is the rank on which the colour's pawns promote.
func (c Colour) PromotionRank() Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // No piece (used for absent promotions)
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'K', 'Q', 'R', 'B', 'N', 'P'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// CanPromoteTo reports whether a pawn may promote to the kind.
func (k Kind) CanPromoteTo() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// KindFromLetter converts a piece letter (either case) to a Kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// Piece combines a colour and a kind. Pieces are values and never change;
// a promotion replaces the piece rather than mutating it.
type Piece struct {
	Colour Colour
	Kind   Kind
}

var (
	WhiteKing   = Piece{White, King}
	WhiteQueen  = Piece{White, Queen}
	WhiteRook   = Piece{White, Rook}
	WhiteBishop = Piece{White, Bishop}
	WhiteKnight = Piece{White, Knight}
	WhitePawn   = Piece{White, Pawn}
	BlackKing   = Piece{Black, King}
	BlackQueen  = Piece{Black, Queen}
	BlackRook   = Piece{Black, Rook}
	BlackBishop = Piece{Black, Bishop}
	BlackKnight = Piece{Black, Knight}
	BlackPawn   = Piece{Black, Pawn}
)

// String returns the piece letter used in move notation.
func (p Piece) String() string {
	return string(p.Kind.Letter())
}

// GoString includes the colour, for debugging output.
func (p Piece) GoString() string {
	return fmt.Sprintf("%s %s", p.Colour, p.Kind)
}

// FEN returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) FEN() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// Symbol returns the Unicode chess symbol for the piece.
func (p Piece) Symbol() string {
	white := []string{"", "♔", "♕", "♖", "♗", "♘", "♙"}
	black := []string{"", "♚", "♛", "♜", "♝", "♞", "♟"}
	if p.Kind <= NoKind || int(p.Kind) >= len(white) {
		return "?"
	}
	if p.Colour == White {
		return white[p.Kind]
	}
	return black[p.Kind]
}

// EntityID is an opaque handle for a piece on the board. It packs a slot
// index and a generation so a stale handle never aliases a newer piece that
// reused the slot.
type EntityID uint64

// NoEntity is the zero EntityID; it never refers to a live piece.
const NoEntity EntityID = 0

// NewEntityID builds an EntityID from a slot index and generation.
// Generations start at 1, keeping every live ID distinct from NoEntity.
func NewEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index.
func (id EntityID) Index() uint32 {
	return uint32(id)
}

// Generation returns the slot generation.
func (id EntityID) Generation() uint32 {
	return uint32(id >> 32)
}

// String returns a short debugging form such as "#3v1".
func (id EntityID) String() string {
	if id == NoEntity {
		return "#none"
	}
	return fmt.Sprintf("#%dv%d", id.Index(), id.Generation())
}
