// Package output writes played games as move text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/board"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (move text, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer selected by the output configuration.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes games as numbered move text, optionally followed by a
// board diagram and the selectable pieces.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new move text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes one game.
func (tw *TextWriter) WriteGame(game *Game) error {
	lw := NewLineWriter(tw.w, int(tw.cfg.Output.MaxLineLength))
	for _, token := range MoveTokens(game, tw.cfg.Output.Notation) {
		lw.Write(token)
	}
	lw.Write(game.Result())
	lw.NewLine()
	if err := lw.Err(); err != nil {
		return err
	}

	if tw.cfg.Output.ShowBoard && game.Board != nil {
		opts := board.RenderOptions{Colour: tw.cfg.Output.Colour, Symbols: tw.cfg.Output.Symbols}
		if err := game.Board.Render(tw.w, opts); err != nil {
			return err
		}
	}

	if tw.cfg.Output.ShowSelectable && !game.GameOver {
		if _, err := io.WriteString(tw.w, SelectableText(game)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(tw.w, "\n")
	return err
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// MoveTokens returns the game's move text tokens in the given notation.
func MoveTokens(game *Game, notation config.Notation) []string {
	if notation == config.SAN {
		return game.History.Tokens()
	}

	moves := game.History.Moves()
	tokens := make([]string, 0, len(moves))
	for i, m := range moves {
		number, side := game.History.MoveNumber(i)
		switch {
		case side == chess.White:
			tokens = append(tokens, fmt.Sprintf("%d.%s", number, m.UCI()))
		case i == 0:
			tokens = append(tokens, fmt.Sprintf("%d...%s", number, m.UCI()))
		default:
			tokens = append(tokens, m.UCI())
		}
	}
	return tokens
}

// SelectableText lists each selectable piece of the side to move with its
// destinations, one per line: "Ng1: f3 h3".
func SelectableText(game *Game) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s to move\n", game.Side)
	for _, id := range game.Position.Moves.Selectable(game.Board, game.Side) {
		p, _ := game.Board.Piece(id)
		sq, _ := game.Board.Square(id)
		fmt.Fprintf(&sb, "%s%s: %s\n", p, sq, strings.Join(game.destinations(id), " "))
	}
	return sb.String()
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	games  []*Game
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:     w,
		cfg:   cfg,
		games: make([]*Game, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(game *Game) error {
	if jw.single {
		return encode(jw.w, GameToJSON(game, jw.cfg))
	}
	jw.games = append(jw.games, game)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	out := &JSONOutput{
		Games: make([]*JSONGame, 0, len(jw.games)),
	}
	for _, game := range jw.games {
		out.Games = append(out.Games, GameToJSON(game, jw.cfg))
	}
	jw.games = jw.games[:0]

	return encode(jw.w, out)
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
