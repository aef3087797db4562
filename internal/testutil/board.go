package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/board"
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MustBoard loads a FEN position and calls t.Fatal if it does not parse.
func MustBoard(t *testing.T, fen string) *board.Setup {
	t.Helper()
	setup, err := board.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return setup
}

// MustSquare parses algebraic square text and calls t.Fatal on failure.
func MustSquare(t *testing.T, text string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", text, err)
	}
	return sq
}

// EntityAt returns the entity on sq and calls t.Fatal if the square is empty.
func EntityAt(t *testing.T, b *board.Board, sq chess.Square) chess.EntityID {
	t.Helper()
	id, ok := b.At(sq)
	if !ok {
		t.Fatalf("no piece on %v", sq)
	}
	return id
}
