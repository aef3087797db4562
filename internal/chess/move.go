package chess

import "strings"

// Wing is one castling option for one colour.
type Wing int

const (
	WhiteKingside Wing = iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Wings lists the four wings in FEN order (KQkq).
var Wings = []Wing{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside}

// WingFor returns the wing for a colour and side of the board.
func WingFor(c Colour, kingside bool) Wing {
	switch {
	case c == White && kingside:
		return WhiteKingside
	case c == White:
		return WhiteQueenside
	case kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// String returns the FEN castling letter.
func (w Wing) String() string {
	return [...]string{"K", "Q", "k", "q"}[w]
}

// Colour returns the colour that castles on this wing.
func (w Wing) Colour() Colour {
	if w == WhiteKingside || w == WhiteQueenside {
		return White
	}
	return Black
}

// Kingside reports whether the wing is on the king's side.
func (w Wing) Kingside() bool {
	return w == WhiteKingside || w == BlackKingside
}

// KingHome is the square the king must stand on, unmoved, to castle.
func (w Wing) KingHome() Square {
	return Square{FileE, w.Colour().BackRank()}
}

// KingDestination is where the king lands after castling.
func (w Wing) KingDestination() Square {
	if w.Kingside() {
		return Square{FileG, w.Colour().BackRank()}
	}
	return Square{FileC, w.Colour().BackRank()}
}

// RookHome is the corner the rook must stand on, unmoved, to castle.
func (w Wing) RookHome() Square {
	if w.Kingside() {
		return Square{FileH, w.Colour().BackRank()}
	}
	return Square{FileA, w.Colour().BackRank()}
}

// RookDestination is where the rook lands after castling.
func (w Wing) RookDestination() Square {
	if w.Kingside() {
		return Square{FileF, w.Colour().BackRank()}
	}
	return Square{FileD, w.Colour().BackRank()}
}

// Gap returns the squares between king and rook, all of which must be vacant.
func (w Wing) Gap() []Square {
	rank := w.Colour().BackRank()
	if w.Kingside() {
		return []Square{{FileF, rank}, {FileG, rank}}
	}
	return []Square{{FileB, rank}, {FileC, rank}, {FileD, rank}}
}

// KingPath returns the squares the king stands on or crosses while castling,
// home square first.
func (w Wing) KingPath() []Square {
	rank := w.Colour().BackRank()
	if w.Kingside() {
		return []Square{{FileE, rank}, {FileF, rank}, {FileG, rank}}
	}
	return []Square{{FileE, rank}, {FileD, rank}, {FileC, rank}}
}

// MoveKind is the kind of a generated move. The concrete types are Move,
// FirstMove, Capture, CaptureEnPassant and Castle; the set is closed.
type MoveKind interface {
	moveKind()
}

// Move puts a piece on an unoccupied square.
type Move struct{}

// FirstMove is a pawn's initial double step.
type FirstMove struct{}

// Capture takes the opposing piece standing on the destination square.
type Capture struct {
	Captured EntityID
}

// CaptureEnPassant takes a pawn that just double-stepped past the destination.
type CaptureEnPassant struct {
	Captured EntityID
}

// Castle moves the king two squares toward a rook that jumps over it.
type Castle struct {
	Wing Wing
}

func (Move) moveKind()             {}
func (FirstMove) moveKind()        {}
func (Capture) moveKind()          {}
func (CaptureEnPassant) moveKind() {}
func (Castle) moveKind()           {}

// CapturedEntity returns the piece taken by a move kind, if any.
func CapturedEntity(k MoveKind) (EntityID, bool) {
	switch k := k.(type) {
	case Capture:
		return k.Captured, true
	case CaptureEnPassant:
		return k.Captured, true
	default:
		return NoEntity, false
	}
}

// IsAttack reports whether a move of this kind threatens its destination.
// Pawn double steps and castling never do.
func IsAttack(k MoveKind) bool {
	switch k.(type) {
	case Move, Capture, CaptureEnPassant:
		return true
	default:
		return false
	}
}

// MoveInfo describes one legal move for one piece.
type MoveInfo struct {
	Entity EntityID
	Piece  Piece
	From   Square
	To     Square
	Kind   MoveKind

	// Promotion is the kind the pawn becomes, or NoKind.
	Promotion Kind

	IsCheck     bool
	IsCheckmate bool
	DrawOffered bool
}

// IsCapture returns true if this move is a capture.
func (m MoveInfo) IsCapture() bool {
	_, ok := CapturedEntity(m.Kind)
	return ok
}

// IsCastle returns true if this move is a castling move.
func (m MoveInfo) IsCastle() bool {
	_, ok := m.Kind.(Castle)
	return ok
}

// IsPromotion returns true if this move is a pawn promotion.
func (m MoveInfo) IsPromotion() bool {
	return m.Promotion != NoKind
}

// PromotedPiece returns the piece that replaces the pawn, if any.
func (m MoveInfo) PromotedPiece() (Piece, bool) {
	if m.Promotion == NoKind {
		return Piece{}, false
	}
	return Piece{m.Piece.Colour, m.Promotion}, true
}

// String returns the move in algebraic-like notation: "e4", "Nf3", "Qxd5",
// "exd5", "exd6 e.p.", "0-0", "0-0-0", "e8=Q", with "#" for mate, or "+"
// for check and "=" for a draw offer.
func (m MoveInfo) String() string {
	var sb strings.Builder

	switch k := m.Kind.(type) {
	case Castle:
		if k.Wing.Kingside() {
			sb.WriteString("0-0")
		} else {
			sb.WriteString("0-0-0")
		}
	case Capture, CaptureEnPassant:
		if m.Piece.Kind == Pawn {
			sb.WriteString(m.From.File.String())
		} else {
			sb.WriteByte(m.Piece.Kind.Letter())
		}
		sb.WriteByte('x')
		sb.WriteString(m.To.String())
		if _, ep := k.(CaptureEnPassant); ep {
			sb.WriteString(" e.p.")
		}
	default:
		if m.Piece.Kind != Pawn {
			sb.WriteByte(m.Piece.Kind.Letter())
		}
		sb.WriteString(m.To.String())
	}

	if m.Promotion != NoKind {
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Letter())
	}

	if m.IsCheckmate {
		sb.WriteByte('#')
	} else {
		if m.IsCheck {
			sb.WriteByte('+')
		}
		if m.DrawOffered {
			sb.WriteByte('=')
		}
	}
	return sb.String()
}

// UCI returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m MoveInfo) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}
