package engine

import (
	"sort"

	"github.com/lgbarn/chessrules-go/internal/board"
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// AttackedSquares is the set of squares the opponent of the side to move
// threatens, derived from the move table.
type AttackedSquares map[chess.Square]bool

// ResolveAttackedSquares collects the destinations of attack moves (plain
// moves and captures, not double steps or castling) made by pieces of the
// given side.
func ResolveAttackedSquares(b *board.Board, am AvailableMoves, attacker chess.Colour) AttackedSquares {
	attacked := make(AttackedSquares)
	for id, moves := range am {
		if p, ok := b.Piece(id); !ok || p.Colour != attacker {
			continue
		}
		for _, m := range moves {
			if chess.IsAttack(m.Kind) {
				attacked[m.To] = true
			}
		}
	}
	return attacked
}

// Contains reports whether sq is attacked.
func (a AttackedSquares) Contains(sq chess.Square) bool {
	return a[sq]
}

// Squares returns the attacked squares, a1 through h8.
func (a AttackedSquares) Squares() []chess.Square {
	squares := make([]chess.Square, 0, len(a))
	for sq := range a {
		squares = append(squares, sq)
	}
	sort.Slice(squares, func(i, j int) bool {
		if squares[i].Rank != squares[j].Rank {
			return squares[i].Rank < squares[j].Rank
		}
		return squares[i].File < squares[j].File
	})
	return squares
}
