package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/board"
	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// Failure paths need a mock *testing.T, so these tests cover the passing
// paths and the message formatting.

func TestAssertionsPass(t *testing.T) {
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.E4, chess.E4, "square %s", "e4")
	AssertSquares(t, []chess.Square{chess.E4, chess.D4}, []chess.Square{chess.D4, chess.E4})
	AssertSquares(t, nil, []chess.Square{})
	AssertNoError(t, nil)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", chesserrors.ErrIllegalSelection), chesserrors.ErrIllegalSelection)
	AssertContains(t, "1.e4 d5", "d5")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"plain string", []interface{}{"hello"}, "hello"},
		{"format", []interface{}{"ply %d", 3}, "ply 3"},
		{"non-string", []interface{}{42}, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q; want %q", got, tt.want)
			}
		})
	}
	if got := prefix("ctx"); got != "ctx: " {
		t.Errorf("prefix() = %q; want %q", got, "ctx: ")
	}
}

func TestFixtures(t *testing.T) {
	setup := MustBoard(t, board.InitialFEN)
	id := EntityAt(t, setup.Board, MustSquare(t, "e1"))
	if p, _ := setup.Board.Piece(id); p != chess.WhiteKing {
		t.Errorf("piece on e1 = %#v; want white king", p)
	}
}
