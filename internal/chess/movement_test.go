package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMovementsCounts(t *testing.T) {
	tests := []struct {
		piece Piece
		count int
		rng   int
	}{
		{WhiteQueen, 8, Unbounded},
		{BlackRook, 4, Unbounded},
		{WhiteBishop, 4, Unbounded},
		{BlackKnight, 8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.piece.GoString(), func(t *testing.T) {
			ms := Movements(tt.piece)
			if len(ms) != tt.count {
				t.Fatalf("len(Movements(%#v)) = %d; want %d", tt.piece, len(ms), tt.count)
			}
			for _, m := range ms {
				if m.Range != tt.rng || m.Tag != Step {
					t.Errorf("movement %+v; want range %d, tag Step", m, tt.rng)
				}
			}
		})
	}
}

func TestMovementsKing(t *testing.T) {
	ms := Movements(WhiteKing)
	if len(ms) != 10 {
		t.Fatalf("len(Movements(king)) = %d; want 10", len(ms))
	}
	for _, m := range ms[:8] {
		if m.Range != 1 || m.Tag != Step {
			t.Errorf("king step %+v; want range 1, tag Step", m)
		}
	}
	want := []Movement{
		{Direction: Vec3{X: 2}, Range: 1, Tag: CastleKingside},
		{Direction: Vec3{X: -2}, Range: 1, Tag: CastleQueenside},
	}
	if diff := cmp.Diff(want, ms[8:]); diff != "" {
		t.Errorf("king castle movements mismatch (-want +got):\n%s", diff)
	}
}

func TestMovementsPawnDirection(t *testing.T) {
	tests := []struct {
		piece Piece
		fwd   int
	}{
		{WhitePawn, 1},
		{BlackPawn, -1},
	}

	for _, tt := range tests {
		want := []Movement{
			{Direction: Vec3{Z: tt.fwd}, Range: 1, Tag: PawnMove},
			{Direction: Vec3{Z: 2 * tt.fwd}, Range: 1, Tag: PawnFirstMove},
			{Direction: Vec3{X: 1, Z: tt.fwd}, Range: 1, Tag: PawnCapture},
			{Direction: Vec3{X: -1, Z: tt.fwd}, Range: 1, Tag: PawnCapture},
			{Direction: Vec3{X: 1, Z: tt.fwd}, Range: 1, Tag: EnPassantCapture},
			{Direction: Vec3{X: -1, Z: tt.fwd}, Range: 1, Tag: EnPassantCapture},
		}
		if diff := cmp.Diff(want, Movements(tt.piece)); diff != "" {
			t.Errorf("Movements(%#v) mismatch (-want +got):\n%s", tt.piece, diff)
		}
	}
}

func TestMovementsNotShared(t *testing.T) {
	a := Movements(WhiteRook)
	a[0].Range = 1
	b := Movements(WhiteRook)
	if b[0].Range != Unbounded {
		t.Error("Movements() returned a shared slice")
	}
}
