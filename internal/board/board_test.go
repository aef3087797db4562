package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	if b.Len() != 0 {
		t.Errorf("Len() = %d; want 0", b.Len())
	}
	for _, sq := range chess.AllSquares() {
		if _, ok := b.At(sq); ok {
			t.Errorf("At(%v) found an entity on an empty board", sq)
		}
	}
}

func TestSpawn(t *testing.T) {
	b := NewBoard()
	id, err := b.Spawn(chess.WhiteRook, chess.D4)
	if err != nil {
		t.Fatalf("Spawn() error: %v", err)
	}

	t.Run("components", func(t *testing.T) {
		if p, ok := b.Piece(id); !ok || p != chess.WhiteRook {
			t.Errorf("Piece() = %v, %v; want white rook", p, ok)
		}
		if sq, ok := b.Square(id); !ok || sq != chess.D4 {
			t.Errorf("Square() = %v, %v; want d4", sq, ok)
		}
		if tr, ok := b.Tracker(id); !ok || tr.HasMoved() {
			t.Errorf("Tracker() = %v, %v; want unmoved", tr, ok)
		}
		if got, ok := b.At(chess.D4); !ok || got != id {
			t.Errorf("At(d4) = %v, %v; want %v", got, ok, id)
		}
	})

	t.Run("occupied square", func(t *testing.T) {
		_, err := b.Spawn(chess.BlackPawn, chess.D4)
		if !errors.Is(err, chesserrors.ErrSquareOccupied) {
			t.Errorf("Spawn(occupied) error = %v; want ErrSquareOccupied", err)
		}
	})

	t.Run("invalid square", func(t *testing.T) {
		_, err := b.Spawn(chess.BlackPawn, chess.Square{})
		if !errors.Is(err, chesserrors.ErrInvalidSquare) {
			t.Errorf("Spawn(invalid) error = %v; want ErrInvalidSquare", err)
		}
	})
}

func TestDespawnGeneration(t *testing.T) {
	b := NewBoard()
	old, _ := b.Spawn(chess.BlackKnight, chess.C6)
	if err := b.Despawn(old); err != nil {
		t.Fatalf("Despawn() error: %v", err)
	}
	if b.Contains(old) {
		t.Error("Contains(old) = true after Despawn")
	}
	if _, ok := b.At(chess.C6); ok {
		t.Error("At(c6) still occupied after Despawn")
	}

	reused, _ := b.Spawn(chess.WhiteQueen, chess.C6)
	if reused.Index() != old.Index() {
		t.Errorf("reused slot index = %d; want %d", reused.Index(), old.Index())
	}
	if reused == old {
		t.Error("reused EntityID equals stale ID")
	}
	if _, ok := b.Piece(old); ok {
		t.Error("stale ID still resolves to a piece")
	}
	if err := b.Despawn(old); !errors.Is(err, chesserrors.ErrUnknownEntity) {
		t.Errorf("Despawn(stale) error = %v; want ErrUnknownEntity", err)
	}
}

func TestRelocate(t *testing.T) {
	b := NewBoard()
	rook, _ := b.Spawn(chess.WhiteRook, chess.A1)
	pawn, _ := b.Spawn(chess.WhitePawn, chess.A2)

	if err := b.Relocate(rook, chess.A2); !errors.Is(err, chesserrors.ErrSquareOccupied) {
		t.Errorf("Relocate(onto pawn) error = %v; want ErrSquareOccupied", err)
	}
	if err := b.Relocate(rook, chess.A1); err != nil {
		t.Errorf("Relocate(same square) error = %v; want nil", err)
	}
	if err := b.Relocate(pawn, chess.A4); err != nil {
		t.Fatalf("Relocate() error: %v", err)
	}
	if err := b.Relocate(rook, chess.A3); err != nil {
		t.Fatalf("Relocate() error: %v", err)
	}
	if _, ok := b.At(chess.A1); ok {
		t.Error("a1 still occupied after the rook left")
	}
	if got, _ := b.At(chess.A3); got != rook {
		t.Errorf("At(a3) = %v; want rook %v", got, rook)
	}
}

func TestOccupancyInvariant(t *testing.T) {
	b := NewInitialBoard()
	seen := make(map[chess.Square]chess.EntityID)
	for _, id := range b.Entities() {
		sq, _ := b.Square(id)
		if other, dup := seen[sq]; dup {
			t.Errorf("%v and %v both on %v", id, other, sq)
		}
		seen[sq] = id
		if at, _ := b.At(sq); at != id {
			t.Errorf("At(%v) = %v; want %v", sq, at, id)
		}
	}
	if len(seen) != 32 {
		t.Errorf("occupied squares = %d; want 32", len(seen))
	}
}

func TestRecordMove(t *testing.T) {
	b := NewBoard()
	id, _ := b.Spawn(chess.WhiteKing, chess.E1)
	_ = b.RecordMove(id)
	tr, _ := b.Tracker(id)
	if !tr.HasMoved() || tr.Count() != 1 {
		t.Errorf("Tracker() = %d; want 1", tr)
	}
	if err := b.RecordMove(chess.NoEntity); !errors.Is(err, chesserrors.ErrUnknownEntity) {
		t.Errorf("RecordMove(NoEntity) error = %v; want ErrUnknownEntity", err)
	}
}

func TestMoveTrackerSaturates(t *testing.T) {
	var tr MoveTracker
	if tr.HasMoved() {
		t.Error("zero tracker HasMoved() = true")
	}
	for i := 0; i < 300; i++ {
		tr = tr.Inc()
	}
	if tr.Count() != 255 || !tr.HasMoved() {
		t.Errorf("tracker after 300 moves = %d; want saturated 255", tr)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	b := NewInitialBoard()
	c := b.Copy()
	id, _ := c.At(chess.E2)
	if err := c.Relocate(id, chess.E4); err != nil {
		t.Fatalf("Relocate() on copy error: %v", err)
	}
	_ = c.RecordMove(id)

	if _, ok := b.At(chess.E4); ok {
		t.Error("original board changed by copy relocation")
	}
	if tr, _ := b.Tracker(id); tr.HasMoved() {
		t.Error("original tracker changed by copy")
	}
	if diff := cmp.Diff(b.Entities(), c.Entities()); diff != "" {
		t.Errorf("copy entity IDs differ (-orig +copy):\n%s", diff)
	}
}

func TestKing(t *testing.T) {
	b := NewInitialBoard()
	_, sq, ok := b.King(chess.Black)
	if !ok || sq != chess.E8 {
		t.Errorf("King(Black) = %v, %v; want e8", sq, ok)
	}
	empty := NewBoard()
	if _, _, ok := empty.King(chess.White); ok {
		t.Error("King(White) on empty board ok = true")
	}
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		sq    chess.Square
		piece chess.Piece
	}{
		{chess.A1, chess.WhiteRook},
		{chess.B1, chess.WhiteKnight},
		{chess.C1, chess.WhiteBishop},
		{chess.D1, chess.WhiteQueen},
		{chess.E1, chess.WhiteKing},
		{chess.H1, chess.WhiteRook},
		{chess.E2, chess.WhitePawn},
		{chess.E7, chess.BlackPawn},
		{chess.D8, chess.BlackQueen},
		{chess.E8, chess.BlackKing},
		{chess.G8, chess.BlackKnight},
	}

	for _, tt := range tests {
		t.Run(tt.sq.String(), func(t *testing.T) {
			if got, ok := b.PieceAt(tt.sq); !ok || got != tt.piece {
				t.Errorf("PieceAt(%v) = %#v, %v; want %#v", tt.sq, got, ok, tt.piece)
			}
		})
	}

	if got := b.Placement(); got != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR" {
		t.Errorf("Placement() = %q", got)
	}
	if err := b.SetupInitialPosition(); !errors.Is(err, chesserrors.ErrSquareOccupied) {
		t.Errorf("SetupInitialPosition() twice error = %v; want ErrSquareOccupied", err)
	}
}
