package chess

import "testing"

func TestMoveInfoString(t *testing.T) {
	pawn := NewEntityID(1, 1)
	other := NewEntityID(2, 1)

	tests := []struct {
		name string
		move MoveInfo
		want string
	}{
		{"pawn double step", MoveInfo{Piece: WhitePawn, From: E2, To: E4, Kind: FirstMove{}}, "e4"},
		{"pawn step", MoveInfo{Piece: BlackPawn, From: D7, To: D6, Kind: Move{}}, "d6"},
		{"knight", MoveInfo{Piece: WhiteKnight, From: G1, To: F3, Kind: Move{}}, "Nf3"},
		{"queen capture", MoveInfo{Piece: WhiteQueen, From: D1, To: D5, Kind: Capture{other}}, "Qxd5"},
		{"pawn capture", MoveInfo{Piece: WhitePawn, From: E4, To: D5, Kind: Capture{other}}, "exd5"},
		{"en passant", MoveInfo{Piece: WhitePawn, From: E5, To: D6, Kind: CaptureEnPassant{other}}, "exd6 e.p."},
		{"kingside castle", MoveInfo{Piece: WhiteKing, From: E1, To: G1, Kind: Castle{WhiteKingside}}, "0-0"},
		{"queenside castle", MoveInfo{Piece: BlackKing, From: E8, To: C8, Kind: Castle{BlackQueenside}}, "0-0-0"},
		{"promotion", MoveInfo{Piece: WhitePawn, From: E7, To: E8, Kind: Move{}, Promotion: Queen}, "e8=Q"},
		{"capture promotion", MoveInfo{Piece: BlackPawn, From: B2, To: A1, Kind: Capture{other}, Promotion: Knight}, "bxa1=N"},
		{"check", MoveInfo{Piece: WhiteRook, From: A1, To: A8, Kind: Move{}, IsCheck: true}, "Ra8+"},
		{"mate wins over check", MoveInfo{Piece: WhiteQueen, From: H5, To: F7, Kind: Capture{other}, IsCheck: true, IsCheckmate: true}, "Qxf7#"},
		{"draw offer", MoveInfo{Piece: BlackBishop, From: C8, To: G4, Kind: Move{}, DrawOffered: true}, "Bg4="},
		{"check and draw offer", MoveInfo{Entity: pawn, Piece: BlackBishop, From: C8, To: G4, Kind: Move{}, IsCheck: true, DrawOffered: true}, "Bg4+="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestMoveInfoUCI(t *testing.T) {
	m := MoveInfo{Piece: WhitePawn, From: E7, To: E8, Kind: Move{}, Promotion: Queen}
	if got := m.UCI(); got != "e7e8q" {
		t.Errorf("UCI() = %q; want %q", got, "e7e8q")
	}
}

func TestCapturedEntity(t *testing.T) {
	id := NewEntityID(7, 2)
	tests := []struct {
		kind   MoveKind
		want   EntityID
		ok     bool
		attack bool
	}{
		{Move{}, NoEntity, false, true},
		{FirstMove{}, NoEntity, false, false},
		{Capture{id}, id, true, true},
		{CaptureEnPassant{id}, id, true, true},
		{Castle{WhiteKingside}, NoEntity, false, false},
	}

	for _, tt := range tests {
		got, ok := CapturedEntity(tt.kind)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CapturedEntity(%#v) = %v, %v; want %v, %v", tt.kind, got, ok, tt.want, tt.ok)
		}
		if IsAttack(tt.kind) != tt.attack {
			t.Errorf("IsAttack(%#v) = %v; want %v", tt.kind, !tt.attack, tt.attack)
		}
	}
}

func TestWingGeometry(t *testing.T) {
	tests := []struct {
		wing     Wing
		king     Square
		kingDest Square
		rook     Square
		rookDest Square
		gap      int
	}{
		{WhiteKingside, E1, G1, H1, F1, 2},
		{WhiteQueenside, E1, C1, A1, D1, 3},
		{BlackKingside, E8, G8, H8, F8, 2},
		{BlackQueenside, E8, C8, A8, D8, 3},
	}

	for _, tt := range tests {
		t.Run(tt.wing.String(), func(t *testing.T) {
			if got := tt.wing.KingHome(); got != tt.king {
				t.Errorf("KingHome() = %v; want %v", got, tt.king)
			}
			if got := tt.wing.KingDestination(); got != tt.kingDest {
				t.Errorf("KingDestination() = %v; want %v", got, tt.kingDest)
			}
			if got := tt.wing.RookHome(); got != tt.rook {
				t.Errorf("RookHome() = %v; want %v", got, tt.rook)
			}
			if got := tt.wing.RookDestination(); got != tt.rookDest {
				t.Errorf("RookDestination() = %v; want %v", got, tt.rookDest)
			}
			if got := len(tt.wing.Gap()); got != tt.gap {
				t.Errorf("len(Gap()) = %d; want %d", got, tt.gap)
			}
			dx := int(tt.wing.KingDestination().File) - int(tt.wing.KingHome().File)
			if dx != 2 && dx != -2 {
				t.Errorf("king travels %d files; want 2", dx)
			}
		})
	}
}

func TestEntityID(t *testing.T) {
	id := NewEntityID(5, 3)
	if id.Index() != 5 || id.Generation() != 3 {
		t.Errorf("NewEntityID(5, 3) = index %d gen %d", id.Index(), id.Generation())
	}
	if NewEntityID(0, 1) == NoEntity {
		t.Error("generation 1 ID collides with NoEntity")
	}
	if NoEntity.String() != "#none" {
		t.Errorf("NoEntity.String() = %q", NoEntity.String())
	}
}

func TestPieceLetters(t *testing.T) {
	if WhiteKnight.String() != "N" || BlackKnight.FEN() != 'n' || WhiteQueen.FEN() != 'Q' {
		t.Error("piece letters wrong")
	}
	if KindFromLetter('q') != Queen || KindFromLetter('x') != NoKind {
		t.Error("KindFromLetter wrong")
	}
	if WhiteKing.Symbol() != "♔" || BlackPawn.Symbol() != "♟" {
		t.Error("piece symbols wrong")
	}
}
