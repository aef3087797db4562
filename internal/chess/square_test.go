package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestSquareFromXZ(t *testing.T) {
	tests := []struct {
		x, z int
		want Square
		ok   bool
	}{
		{1, 1, A1, true},
		{8, 8, H8, true},
		{5, 4, E4, true},
		{0, 4, Square{}, false},
		{9, 4, Square{}, false},
		{4, 0, Square{}, false},
		{4, 9, Square{}, false},
		{-1, -1, Square{}, false},
	}

	for _, tt := range tests {
		got, ok := SquareFromXZ(tt.x, tt.z)
		if ok != tt.ok || got != tt.want {
			t.Errorf("SquareFromXZ(%d, %d) = %v, %v; want %v, %v", tt.x, tt.z, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSquareFromVec3(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want Square
		ok   bool
	}{
		{"on plane", Vec3{X: 4, Z: 4}, D4, true},
		{"off plane", Vec3{X: 4, Y: 1, Z: 4}, Square{}, false},
		{"file out of range", Vec3{X: 9, Z: 4}, Square{}, false},
		{"rank out of range", Vec3{X: 4, Z: 0}, Square{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SquareFromVec3(tt.v)
			if ok != tt.ok || got != tt.want {
				t.Errorf("SquareFromVec3(%+v) = %v, %v; want %v, %v", tt.v, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSquareRoundTrip(t *testing.T) {
	for _, sq := range AllSquares() {
		x, z := sq.XZ()
		back, ok := SquareFromXZ(x, z)
		if !ok || back != sq {
			t.Errorf("SquareFromXZ(%v.XZ()) = %v, %v; want %v", sq, back, ok, sq)
		}
		back, ok = SquareFromVec3(sq.Vec3())
		if !ok || back != sq {
			t.Errorf("SquareFromVec3(%v.Vec3()) = %v, %v; want %v", sq, back, ok, sq)
		}
		parsed, err := ParseSquare(sq.String())
		if err != nil || parsed != sq {
			t.Errorf("ParseSquare(%q) = %v, %v; want %v", sq.String(), parsed, err, sq)
		}
	}
}

func TestAllSquares(t *testing.T) {
	squares := AllSquares()
	if len(squares) != 64 {
		t.Fatalf("len(AllSquares()) = %d; want 64", len(squares))
	}
	seen := make(map[Square]bool)
	for _, sq := range squares {
		if seen[sq] {
			t.Errorf("AllSquares() repeats %v", sq)
		}
		seen[sq] = true
	}
	if squares[0] != A1 || squares[63] != H8 {
		t.Errorf("AllSquares() endpoints = %v, %v; want a1, h8", squares[0], squares[63])
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		text    string
		want    Square
		wantErr bool
	}{
		{"e4", E4, false},
		{"E4", E4, false},
		{"a1", A1, false},
		{"h8", H8, false},
		{"i1", Square{}, true},
		{"a9", Square{}, true},
		{"a0", Square{}, true},
		{"e", Square{}, true},
		{"e44", Square{}, true},
		{"", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseSquare(tt.text)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidSquare) {
					t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSquareOffset(t *testing.T) {
	if got, ok := E2.Offset(0, 2); !ok || got != E4 {
		t.Errorf("E2.Offset(0, 2) = %v, %v; want e4, true", got, ok)
	}
	if _, ok := H8.Offset(1, 0); ok {
		t.Error("H8.Offset(1, 0) ok = true; want false")
	}
}

func TestSquareEqualityIsStructural(t *testing.T) {
	m := map[Square]int{E4: 1}
	if m[Square{FileE, Rank4}] != 1 {
		t.Error("map lookup by structurally equal square failed")
	}
	if diff := cmp.Diff(E4, Square{File: FileE, Rank: Rank4}); diff != "" {
		t.Errorf("E4 mismatch (-want +got):\n%s", diff)
	}
}

func TestIsLight(t *testing.T) {
	tests := []struct {
		sq   Square
		want bool
	}{
		{A1, false},
		{A2, true},
		{H8, false},
		{H1, true},
		{E4, true},
		{D4, false},
	}
	for _, tt := range tests {
		if got := tt.sq.IsLight(); got != tt.want {
			t.Errorf("%v.IsLight() = %v; want %v", tt.sq, got, tt.want)
		}
	}
}
