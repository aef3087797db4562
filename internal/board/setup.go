package board

import "github.com/lgbarn/chessrules-go/internal/chess"

// Placement pairs a starting square with the piece that occupies it.
type Placement struct {
	Square chess.Square
	Piece  chess.Piece
}

// InitialPositions is the standard starting position, rank 1 through 8.
var InitialPositions = initialPositions()

func initialPositions() []Placement {
	backRank := []chess.Kind{
		chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook,
	}
	placements := make([]Placement, 0, 32)
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for i, kind := range backRank {
			sq, _ := chess.NewSquare(chess.FileA+chess.File(i), c.BackRank())
			placements = append(placements, Placement{sq, chess.Piece{Colour: c, Kind: kind}})
		}
		for f := chess.FileA; f <= chess.FileH; f++ {
			sq, _ := chess.NewSquare(f, c.PawnRank())
			placements = append(placements, Placement{sq, chess.Piece{Colour: c, Kind: chess.Pawn}})
		}
	}
	return placements
}

// SetupInitialPosition spawns the standard starting pieces. The board must
// be empty.
func (b *Board) SetupInitialPosition() error {
	for _, p := range InitialPositions {
		if _, err := b.Spawn(p.Piece, p.Square); err != nil {
			return err
		}
	}
	return nil
}

// NewInitialBoard creates a board set up in the starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	// An empty board cannot reject the standard placements.
	_ = b.SetupInitialPosition()
	return b
}
