package chess

// MovementTag says how a catalog movement may resolve into a move.
type MovementTag int

const (
	Step             MovementTag = iota // Ordinary move or capture
	PawnMove                            // Pawn single step, vacant square only
	PawnFirstMove                       // Pawn double step from an unmoved pawn
	PawnCapture                         // Pawn diagonal capture
	EnPassantCapture                    // Pawn diagonal onto the en passant target
	CastleKingside                      // King two files toward the h-rook
	CastleQueenside                     // King two files toward the a-rook
)

// String returns the tag name.
func (t MovementTag) String() string {
	names := []string{"Step", "PawnMove", "PawnFirstMove", "PawnCapture",
		"EnPassantCapture", "CastleKingside", "CastleQueenside"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Unbounded is the range of a sliding piece: the board diameter.
const Unbounded = BoardSize

// Movement is one catalog entry: a direction walked up to Range steps.
type Movement struct {
	Direction Vec3
	Range     int
	Tag       MovementTag
}

var (
	orthogonal = []Vec3{{X: 1}, {Z: 1}, {X: -1}, {Z: -1}}
	diagonal   = []Vec3{{X: 1, Z: 1}, {X: 1, Z: -1}, {X: -1, Z: 1}, {X: -1, Z: -1}}
	lShape     = []Vec3{
		{X: 1, Z: 2}, {X: 1, Z: -2}, {X: -1, Z: 2}, {X: -1, Z: -2},
		{X: 2, Z: 1}, {X: 2, Z: -1}, {X: -2, Z: 1}, {X: -2, Z: -1},
	}
)

func movements(dirs []Vec3, rng int, tag MovementTag) []Movement {
	ms := make([]Movement, 0, len(dirs))
	for _, d := range dirs {
		ms = append(ms, Movement{Direction: d, Range: rng, Tag: tag})
	}
	return ms
}

// Movements returns the ordered movement catalog for a piece. The result is
// built on each call; only the pawn's forward direction depends on colour.
func Movements(p Piece) []Movement {
	switch p.Kind {
	case King:
		ms := movements(orthogonal, 1, Step)
		ms = append(ms, movements(diagonal, 1, Step)...)
		return append(ms,
			Movement{Direction: Vec3{X: 2}, Range: 1, Tag: CastleKingside},
			Movement{Direction: Vec3{X: -2}, Range: 1, Tag: CastleQueenside},
		)
	case Queen:
		ms := movements(orthogonal, Unbounded, Step)
		return append(ms, movements(diagonal, Unbounded, Step)...)
	case Rook:
		return movements(orthogonal, Unbounded, Step)
	case Bishop:
		return movements(diagonal, Unbounded, Step)
	case Knight:
		return movements(lShape, 1, Step)
	case Pawn:
		fwd := p.Colour.Forward()
		return []Movement{
			{Direction: Vec3{Z: fwd}, Range: 1, Tag: PawnMove},
			{Direction: Vec3{Z: 2 * fwd}, Range: 1, Tag: PawnFirstMove},
			{Direction: Vec3{X: 1, Z: fwd}, Range: 1, Tag: PawnCapture},
			{Direction: Vec3{X: -1, Z: fwd}, Range: 1, Tag: PawnCapture},
			{Direction: Vec3{X: 1, Z: fwd}, Range: 1, Tag: EnPassantCapture},
			{Direction: Vec3{X: -1, Z: fwd}, Range: 1, Tag: EnPassantCapture},
		}
	default:
		return nil
	}
}
