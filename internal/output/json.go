package output

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Index      int             `json:"index,omitempty"`
	InitialFEN string          `json:"initialFEN,omitempty"`
	Moves      []JSONMove      `json:"moves"`
	PlyCount   int             `json:"plyCount"`
	Result     string          `json:"result"`
	Placement  string          `json:"placement"`
	SideToMove string          `json:"sideToMove"`
	Castling   string          `json:"castling"`
	EnPassant  string          `json:"enPassant"`
	Attacked   []string        `json:"attacked,omitempty"`
	Available  []JSONAvailable `json:"available,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Kind       string `json:"kind"`
	Promotion  string `json:"promotion,omitempty"`
	Check      bool   `json:"check,omitempty"`
	Checkmate  bool   `json:"checkmate,omitempty"`
}

// JSONAvailable lists the destinations of one selectable piece.
type JSONAvailable struct {
	Piece        string   `json:"piece"`
	From         string   `json:"from"`
	Destinations []string `json:"destinations"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to JSON format.
func GameToJSON(game *Game, cfg *config.Config) *JSONGame {
	moves := game.History.Moves()
	jg := &JSONGame{
		Index:      game.Index,
		InitialFEN: game.StartFEN,
		Moves:      make([]JSONMove, 0, len(moves)),
		PlyCount:   len(moves),
		Result:     game.Result(),
		SideToMove: colorName(game.Side),
		Castling:   game.Position.Castles.String(),
		EnPassant:  game.Position.EnPassant.String(),
	}
	if game.Board != nil {
		jg.Placement = game.Board.Placement()
	}

	for i, m := range moves {
		number, side := game.History.MoveNumber(i)
		jm := convertMove(m)
		if side == chess.White {
			jm.MoveNumber = number
		}
		jg.Moves = append(jg.Moves, jm)
	}

	for _, sq := range game.Position.Attacked.Squares() {
		jg.Attacked = append(jg.Attacked, sq.String())
	}

	if cfg.Output.ShowSelectable && !game.GameOver && game.Board != nil {
		for _, id := range game.Position.Moves.Selectable(game.Board, game.Side) {
			p, _ := game.Board.Piece(id)
			sq, _ := game.Board.Square(id)
			jg.Available = append(jg.Available, JSONAvailable{
				Piece:        pieceTypeName(p.Kind),
				From:         sq.String(),
				Destinations: game.destinations(id),
			})
		}
	}

	return jg
}

// convertMove converts a single move to JSON format.
func convertMove(m chess.MoveInfo) JSONMove {
	jm := JSONMove{
		Color:     colorName(m.Piece.Colour),
		SAN:       m.String(),
		UCI:       m.UCI(),
		From:      m.From.String(),
		To:        m.To.String(),
		Piece:     pieceTypeName(m.Piece.Kind),
		Kind:      kindName(m.Kind),
		Check:     m.IsCheck,
		Checkmate: m.IsCheckmate,
	}
	if m.IsPromotion() {
		jm.Promotion = pieceTypeName(m.Promotion)
	}
	return jm
}

func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func pieceTypeName(k chess.Kind) string {
	return strings.ToLower(k.String())
}

func kindName(k chess.MoveKind) string {
	switch k.(type) {
	case chess.Move:
		return "move"
	case chess.FirstMove:
		return "firstMove"
	case chess.Capture:
		return "capture"
	case chess.CaptureEnPassant:
		return "enPassant"
	case chess.Castle:
		return "castle"
	default:
		return "unknown"
	}
}
