package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		toMove    chess.Colour
		pieces    int
		halfMoves int
	}{
		{"initial", InitialFEN, chess.White, 32, 0},
		{"placement only", "4k3/8/8/8/8/8/8/4K3", chess.White, 2, 0},
		{"black to move", "4k3/8/8/8/8/8/8/4K3 b - - 0 1", chess.Black, 2, 1},
		{"black to move without clocks", "4k3/8/8/8/8/8/8/4K3 b", chess.Black, 2, 1},
		{"fullmove number", "4k3/8/8/8/8/8/8/4K3 w - - 0 10", chess.White, 2, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}
			if setup.ToMove != tt.toMove {
				t.Errorf("ToMove = %v; want %v", setup.ToMove, tt.toMove)
			}
			if setup.Board.Len() != tt.pieces {
				t.Errorf("Len() = %d; want %d", setup.Board.Len(), tt.pieces)
			}
			if setup.HalfMoves != tt.halfMoves {
				t.Errorf("HalfMoves = %d; want %d", setup.HalfMoves, tt.halfMoves)
			}
			placement := strings.Fields(tt.fen)[0]
			if got := setup.Board.Placement(); got != placement {
				t.Errorf("Placement() = %q; want %q", got, placement)
			}
		})
	}
}

func TestNewBoardFromFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"bad piece", "4x3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"non-ASCII piece", "4ŋ3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"rank overflow", "4k3/8/8/8/8/8/8/4K3/8 w - - 0 1"},
		{"file overflow", "4k4/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling", "4k3/8/8/8/8/8/8/4K3 w X - 0 1"},
		{"bad en passant", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1"},
		{"en passant without pawn", "4k3/8/8/8/8/8/8/4K3 w - e6 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromFEN(tt.fen)
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("NewBoardFromFEN(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestFENCastlingRightsBecomeTrackers(t *testing.T) {
	setup, err := NewBoardFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")
	if err != nil {
		t.Fatalf("NewBoardFromFEN() error: %v", err)
	}
	b := setup.Board

	tests := []struct {
		sq    chess.Square
		moved bool
	}{
		{chess.E1, false}, // keeps kingside right
		{chess.H1, false},
		{chess.A1, true},
		{chess.E8, false}, // keeps queenside right
		{chess.A8, false},
		{chess.H8, true},
	}
	for _, tt := range tests {
		id, _ := b.At(tt.sq)
		tr, _ := b.Tracker(id)
		if tr.HasMoved() != tt.moved {
			t.Errorf("%v HasMoved() = %v; want %v", tt.sq, tr.HasMoved(), tt.moved)
		}
	}

	setup, _ = NewBoardFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	id, _ := setup.Board.At(chess.E1)
	if tr, _ := setup.Board.Tracker(id); !tr.HasMoved() {
		t.Error("king without any rights should count as moved")
	}
}

func TestFENPawnTrackers(t *testing.T) {
	setup, err := NewBoardFromFEN("4k3/p7/8/8/4P3/8/3P4/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewBoardFromFEN() error: %v", err)
	}
	for sq, moved := range map[chess.Square]bool{chess.E4: true, chess.D2: false, chess.A7: false} {
		id, _ := setup.Board.At(sq)
		if tr, _ := setup.Board.Tracker(id); tr.HasMoved() != moved {
			t.Errorf("pawn on %v HasMoved() = %v; want %v", sq, tr.HasMoved(), moved)
		}
	}
}

func TestFENEnPassantSynthesizesLastMove(t *testing.T) {
	setup, err := NewBoardFromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2")
	if err != nil {
		t.Fatalf("NewBoardFromFEN() error: %v", err)
	}
	m := setup.LastMove
	if m == nil {
		t.Fatal("LastMove = nil; want synthesized double step")
	}
	if m.From != chess.D7 || m.To != chess.D5 || m.Piece != chess.BlackPawn {
		t.Errorf("LastMove = %v %v-%v; want black pawn d7-d5", m.Piece, m.From, m.To)
	}
	if _, ok := m.Kind.(chess.FirstMove); !ok {
		t.Errorf("LastMove.Kind = %#v; want FirstMove", m.Kind)
	}
	if id, _ := setup.Board.At(chess.D5); id != m.Entity {
		t.Errorf("LastMove.Entity = %v; want pawn on d5 %v", m.Entity, id)
	}
	if tr, _ := setup.Board.Tracker(m.Entity); tr.Count() != 1 {
		t.Errorf("double-stepped pawn tracker = %d; want 1", tr)
	}
}
