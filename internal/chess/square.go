package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// File represents a chess file (column), FileA through FileH.
type File int8

// Rank represents a chess rank (row), Rank1 through Rank8.
type Rank int8

const (
	FileA File = iota + 1
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Rank = iota + 1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Valid reports whether the file lies on the board.
func (f File) Valid() bool { return f >= FileA && f <= FileH }

// Valid reports whether the rank lies on the board.
func (r Rank) Valid() bool { return r >= Rank1 && r <= Rank8 }

// String returns the lowercase file letter.
func (f File) String() string {
	if !f.Valid() {
		return "?"
	}
	return string(rune('a' + int(f) - 1))
}

// String returns the rank digit.
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rune('1' + int(r) - 1))
}

// Square is a file/rank pair. It is a comparable value and can be used as a
// map key; the zero Square is not on the board.
type Square struct {
	File File
	Rank Rank
}

// Vec3 is a spatial vector on the board plane. X runs along files, Z along
// ranks and Y is off the board plane.
type Vec3 struct {
	X, Y, Z int
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v multiplied by n.
func (v Vec3) Scale(n int) Vec3 {
	return Vec3{v.X * n, v.Y * n, v.Z * n}
}

// NewSquare returns the square for a file and rank, or false when either is
// off the board.
func NewSquare(f File, r Rank) (Square, bool) {
	if !f.Valid() || !r.Valid() {
		return Square{}, false
	}
	return Square{f, r}, true
}

// SquareFromXZ converts a numeric (x, z) pair, each 1-8, to a square.
func SquareFromXZ(x, z int) (Square, bool) {
	if x < 1 || x > BoardSize || z < 1 || z > BoardSize {
		return Square{}, false
	}
	return Square{File(x), Rank(z)}, true
}

// SquareFromVec3 converts a board-plane vector to a square. It fails when
// the vector leaves the plane or either in-plane coordinate is off the board.
func SquareFromVec3(v Vec3) (Square, bool) {
	if v.Y != 0 {
		return Square{}, false
	}
	return SquareFromXZ(v.X, v.Z)
}

// ParseSquare parses algebraic square text such as "e4" (either case).
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	c, r := text[0], text[1]
	if c >= 'A' && c <= 'H' {
		c += 'a' - 'A'
	}
	sq, ok := SquareFromXZ(int(c-'a')+1, int(r-'1')+1)
	if !ok || c < 'a' || r < '1' {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input. It is
// intended for literals in tables and tests.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square is on the board.
func (s Square) Valid() bool {
	return s.File.Valid() && s.Rank.Valid()
}

// XZ returns the numeric coordinate pair of the square.
func (s Square) XZ() (int, int) {
	return int(s.File), int(s.Rank)
}

// Vec3 returns the square as a board-plane vector.
func (s Square) Vec3() Vec3 {
	return Vec3{X: int(s.File), Z: int(s.Rank)}
}

// Offset returns the square dx files and dz ranks away.
func (s Square) Offset(dx, dz int) (Square, bool) {
	return SquareFromXZ(int(s.File)+dx, int(s.Rank)+dz)
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (int(s.File)+int(s.Rank))%2 == 1
}

// String returns algebraic notation, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return s.File.String() + s.Rank.String()
}

// AllSquares returns every square, a1 through h8, rank by rank.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			squares = append(squares, Square{f, r})
		}
	}
	return squares
}

// Named squares.
var (
	A1 = Square{FileA, Rank1}
	B1 = Square{FileB, Rank1}
	C1 = Square{FileC, Rank1}
	D1 = Square{FileD, Rank1}
	E1 = Square{FileE, Rank1}
	F1 = Square{FileF, Rank1}
	G1 = Square{FileG, Rank1}
	H1 = Square{FileH, Rank1}
	A2 = Square{FileA, Rank2}
	B2 = Square{FileB, Rank2}
	C2 = Square{FileC, Rank2}
	D2 = Square{FileD, Rank2}
	E2 = Square{FileE, Rank2}
	F2 = Square{FileF, Rank2}
	G2 = Square{FileG, Rank2}
	H2 = Square{FileH, Rank2}
	A3 = Square{FileA, Rank3}
	B3 = Square{FileB, Rank3}
	C3 = Square{FileC, Rank3}
	D3 = Square{FileD, Rank3}
	E3 = Square{FileE, Rank3}
	F3 = Square{FileF, Rank3}
	G3 = Square{FileG, Rank3}
	H3 = Square{FileH, Rank3}
	A4 = Square{FileA, Rank4}
	B4 = Square{FileB, Rank4}
	C4 = Square{FileC, Rank4}
	D4 = Square{FileD, Rank4}
	E4 = Square{FileE, Rank4}
	F4 = Square{FileF, Rank4}
	G4 = Square{FileG, Rank4}
	H4 = Square{FileH, Rank4}
	A5 = Square{FileA, Rank5}
	B5 = Square{FileB, Rank5}
	C5 = Square{FileC, Rank5}
	D5 = Square{FileD, Rank5}
	E5 = Square{FileE, Rank5}
	F5 = Square{FileF, Rank5}
	G5 = Square{FileG, Rank5}
	H5 = Square{FileH, Rank5}
	A6 = Square{FileA, Rank6}
	B6 = Square{FileB, Rank6}
	C6 = Square{FileC, Rank6}
	D6 = Square{FileD, Rank6}
	E6 = Square{FileE, Rank6}
	F6 = Square{FileF, Rank6}
	G6 = Square{FileG, Rank6}
	H6 = Square{FileH, Rank6}
	A7 = Square{FileA, Rank7}
	B7 = Square{FileB, Rank7}
	C7 = Square{FileC, Rank7}
	D7 = Square{FileD, Rank7}
	E7 = Square{FileE, Rank7}
	F7 = Square{FileF, Rank7}
	G7 = Square{FileG, Rank7}
	H7 = Square{FileH, Rank7}
	A8 = Square{FileA, Rank8}
	B8 = Square{FileB, Rank8}
	C8 = Square{FileC, Rank8}
	D8 = Square{FileD, Rank8}
	E8 = Square{FileE, Rank8}
	F8 = Square{FileF, Rank8}
	G8 = Square{FileG, Rank8}
	H8 = Square{FileH, Rank8}
)
