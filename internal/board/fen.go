package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Setup is a position loaded from FEN.
type Setup struct {
	Board  *Board
	ToMove chess.Colour

	// LastMove is a synthesized pawn double step when the FEN names an en
	// passant square, so history-derived rules see it as the latest move.
	LastMove *chess.MoveInfo

	// HalfMoves is the number of half-moves already played, derived from the
	// fullmove number and side to move.
	HalfMoves int
}

// NewBoardFromFEN creates a board from a FEN string. Only the placement
// field is required. Castling rights and pawn ranks are folded into move
// trackers: a king or rook without rights, and a pawn off its starting
// rank, count as having moved.
func NewBoardFromFEN(fen string) (*Setup, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	setup := &Setup{Board: NewBoard(), ToMove: chess.White}

	if err := parsePiecePositions(setup.Board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(setup, parts); err != nil {
		return nil, err
	}

	if err := parseCastlingRights(setup.Board, parts); err != nil {
		return nil, err
	}

	if err := parseEnPassant(setup, parts); err != nil {
		return nil, err
	}

	parseClocks(setup, parts)
	markMovedPawns(setup.Board)

	return setup, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(b *Board, positions string) error {
	rank := chess.Rank8
	file := chess.FileA

	for _, c := range positions {
		switch {
		case c == '/':
			if rank == chess.Rank1 {
				return fmt.Errorf("too many ranks: %w", errors.ErrInvalidFEN)
			}
			rank--
			file = chess.FileA
		case c >= '1' && c <= '8':
			file += chess.File(c - '0')
			if file > chess.FileH+1 {
				return fmt.Errorf("rank %s too long: %w", rank, errors.ErrInvalidFEN)
			}
		default:
			if c > unicode.MaxASCII {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file > chess.FileH {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			if _, err := b.Spawn(chess.Piece{Colour: colour, Kind: kind}, chess.Square{File: file, Rank: rank}); err != nil {
				return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
			}
			file++
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(setup *Setup, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		setup.ToMove = chess.White
	case "b":
		setup.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights marks kings and rooks as moved when the castling
// field withholds their rights. A missing field grants every right.
func parseCastlingRights(b *Board, parts []string) error {
	if len(parts) < 3 {
		return nil
	}

	rights := make(map[chess.Wing]bool)
	if parts[2] != "-" {
		for _, c := range parts[2] {
			switch c {
			case 'K':
				rights[chess.WhiteKingside] = true
			case 'Q':
				rights[chess.WhiteQueenside] = true
			case 'k':
				rights[chess.BlackKingside] = true
			case 'q':
				rights[chess.BlackQueenside] = true
			default:
				return fmt.Errorf("invalid castling rights: %s: %w", parts[2], errors.ErrInvalidFEN)
			}
		}
	}

	for _, wing := range chess.Wings {
		if rights[wing] {
			continue
		}
		rook := chess.Piece{Colour: wing.Colour(), Kind: chess.Rook}
		if id, ok := b.Find(rook, wing.RookHome()); ok {
			if err := b.SetTracker(id, 1); err != nil {
				return fmt.Errorf("withhold %v: %v: %w", wing, err, errors.ErrUnreachable)
			}
		}
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if rights[chess.WingFor(c, true)] || rights[chess.WingFor(c, false)] {
			continue
		}
		king := chess.Piece{Colour: c, Kind: chess.King}
		if id, ok := b.Find(king, chess.WingFor(c, true).KingHome()); ok {
			if err := b.SetTracker(id, 1); err != nil {
				return fmt.Errorf("withhold %v castling: %v: %w", c, err, errors.ErrUnreachable)
			}
		}
	}
	return nil
}

// parseEnPassant turns the en passant target square into the double step
// that produced it.
func parseEnPassant(setup *Setup, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}

	mover := setup.ToMove.Opposite()
	to, ok1 := target.Offset(0, mover.Forward())
	from, ok2 := target.Offset(0, -mover.Forward())
	pawn := chess.Piece{Colour: mover, Kind: chess.Pawn}
	id, found := setup.Board.Find(pawn, to)
	if !ok1 || !ok2 || !found || from.Rank != mover.PawnRank() {
		return fmt.Errorf("en passant square %s has no double-stepped pawn: %w", parts[3], errors.ErrInvalidFEN)
	}

	if err := setup.Board.SetTracker(id, 1); err != nil {
		return fmt.Errorf("en passant pawn %v: %v: %w", to, err, errors.ErrUnreachable)
	}
	setup.LastMove = &chess.MoveInfo{
		Entity: id,
		Piece:  pawn,
		From:   from,
		To:     to,
		Kind:   chess.FirstMove{},
	}
	return nil
}

// parseClocks derives the half-move count from the fullmove number.
func parseClocks(setup *Setup, parts []string) {
	fullmove := 1
	if len(parts) >= 6 {
		if n, err := strconv.Atoi(parts[5]); err == nil && n >= 1 {
			fullmove = n
		}
	}
	setup.HalfMoves = (fullmove - 1) * 2
	if setup.ToMove == chess.Black {
		setup.HalfMoves++
	}
}

// markMovedPawns flags pawns standing off their starting rank, so a pawn
// placed on e4 cannot double step again.
func markMovedPawns(b *Board) {
	for _, id := range b.Entities() {
		p := b.pieces[id]
		if p.Kind != chess.Pawn || b.squares[id].Rank == p.Colour.PawnRank() {
			continue
		}
		if !b.trackers[id].HasMoved() {
			b.trackers[id] = 1
		}
	}
}

// Placement returns the FEN piece placement field for the board.
func (b *Board) Placement() string {
	var sb strings.Builder
	for rank := chess.Rank8; rank >= chess.Rank1; rank-- {
		empty := 0
		for file := chess.FileA; file <= chess.FileH; file++ {
			p, ok := b.PieceAt(chess.Square{File: file, Rank: rank})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.FEN())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > chess.Rank1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
