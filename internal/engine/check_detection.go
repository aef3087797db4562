package engine

import (
	"github.com/lgbarn/chessrules-go/internal/board"
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// IsInCheck returns true if the given colour's king is attacked.
// A side without a king is never in check.
func IsInCheck(b *board.Board, colour chess.Colour) bool {
	_, sq, ok := b.King(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(b, sq, colour.Opposite())
}

// IsSquareAttacked returns true if a piece of byColour could capture on sq.
// The square's own occupant is ignored, so empty squares can be tested.
func IsSquareAttacked(b *board.Board, sq chess.Square, byColour chess.Colour) bool {
	attackerAt := func(dx, dz int, kinds ...chess.Kind) bool {
		from, ok := sq.Offset(dx, dz)
		if !ok {
			return false
		}
		p, ok := b.PieceAt(from)
		if !ok || p.Colour != byColour {
			return false
		}
		for _, k := range kinds {
			if p.Kind == k {
				return true
			}
		}
		return false
	}

	// Pawns attack from one rank behind, relative to their own direction
	back := -byColour.Forward()
	if attackerAt(-1, back, chess.Pawn) || attackerAt(1, back, chess.Pawn) {
		return true
	}

	knightOffsets := [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	for _, o := range knightOffsets {
		if attackerAt(o[0], o[1], chess.Knight) {
			return true
		}
	}

	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			if (dx != 0 || dz != 0) && attackerAt(dx, dz, chess.King) {
				return true
			}
		}
	}

	diagonalDirs := [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	for _, dir := range diagonalDirs {
		if slidingAttacker(b, sq, dir, byColour, chess.Bishop) {
			return true
		}
	}

	straightDirs := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, dir := range straightDirs {
		if slidingAttacker(b, sq, dir, byColour, chess.Rook) {
			return true
		}
	}

	return false
}

// slidingAttacker walks from sq along dir to the first piece and reports
// whether it is a queen or the given slider of byColour.
func slidingAttacker(b *board.Board, sq chess.Square, dir [2]int, byColour chess.Colour, slider chess.Kind) bool {
	cur := sq
	for {
		next, ok := cur.Offset(dir[0], dir[1])
		if !ok {
			return false
		}
		if p, occupied := b.PieceAt(next); occupied {
			return p.Colour == byColour && (p.Kind == slider || p.Kind == chess.Queen)
		}
		cur = next
	}
}
