package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MoveHistory is the append-only list of confirmed moves, oldest first.
type MoveHistory struct {
	moves []chess.MoveInfo

	// offset is the number of half-moves played before the first entry,
	// so a game loaded from FEN numbers its moves correctly.
	offset int
}

// NewMoveHistory returns an empty history whose first entry is half-move
// number offset (0 for a new game).
func NewMoveHistory(offset int) *MoveHistory {
	if offset < 0 {
		offset = 0
	}
	return &MoveHistory{offset: offset}
}

// Append records a confirmed move.
func (h *MoveHistory) Append(m chess.MoveInfo) {
	h.moves = append(h.moves, m)
}

// Len returns the number of recorded moves.
func (h *MoveHistory) Len() int {
	if h == nil {
		return 0
	}
	return len(h.moves)
}

// Get returns the i-th recorded move.
func (h *MoveHistory) Get(i int) (chess.MoveInfo, bool) {
	if h == nil || i < 0 || i >= len(h.moves) {
		return chess.MoveInfo{}, false
	}
	return h.moves[i], true
}

// Latest returns the most recent move, or nil for an empty history.
func (h *MoveHistory) Latest() *chess.MoveInfo {
	if h.Len() == 0 {
		return nil
	}
	m := h.moves[len(h.moves)-1]
	return &m
}

// Moves returns a copy of the recorded moves.
func (h *MoveHistory) Moves() []chess.MoveInfo {
	if h == nil {
		return nil
	}
	return append([]chess.MoveInfo(nil), h.moves...)
}

// Offset returns the half-move number of the first entry.
func (h *MoveHistory) Offset() int {
	if h == nil {
		return 0
	}
	return h.offset
}

// Clone returns an independent copy.
func (h *MoveHistory) Clone() *MoveHistory {
	if h == nil {
		return NewMoveHistory(0)
	}
	return &MoveHistory{moves: h.Moves(), offset: h.offset}
}

// MoveNumber returns the full-move number and side of the i-th entry.
func (h *MoveHistory) MoveNumber(i int) (int, chess.Colour) {
	ply := h.Offset() + i
	side := chess.White
	if ply%2 == 1 {
		side = chess.Black
	}
	return ply/2 + 1, side
}

// Tokens returns the history as move-text tokens: move numbers and moves,
// e.g. ["1.e4", "d5", "2.exd5"]. A history starting with Black opens
// with "1...".
func (h *MoveHistory) Tokens() []string {
	tokens := make([]string, 0, h.Len())
	for i, m := range h.Moves() {
		number, side := h.MoveNumber(i)
		switch {
		case side == chess.White:
			tokens = append(tokens, fmt.Sprintf("%d.%s", number, m))
		case i == 0:
			tokens = append(tokens, fmt.Sprintf("%d...%s", number, m))
		default:
			tokens = append(tokens, m.String())
		}
	}
	return tokens
}

// String returns the history as move text, e.g. "1.e4 d5 2.exd5".
func (h *MoveHistory) String() string {
	return strings.Join(h.Tokens(), " ")
}
