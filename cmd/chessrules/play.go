// play.go - Interactive play on the console
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/board"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/turn"
)

const sessionHelp = `Commands:
  e2e4, e7e8n   play a move (coordinates, optional promotion letter)
  show e2       list the destinations of the piece on e2
  board         print the board
  moves         print the move history
  draw          offer a draw
  help          show this help
  quit          leave the game
`

// consolePresenter announces turns and captures on the session output.
type consolePresenter struct {
	out io.Writer
}

func (p consolePresenter) OnTurnStart(side chess.Colour) {
	fmt.Fprintf(p.out, "%s to move\n", side)
}

func (p consolePresenter) OnCapture(id chess.EntityID) {
	fmt.Fprintf(p.out, "captured %v\n", id)
}

// session is an interactive game read line by line from in.
type session struct {
	cfg *config.Config
	seq *turn.Sequencer
	in  io.Reader
	out io.Writer
}

func newSession(cfg *config.Config, in io.Reader, out io.Writer) *session {
	return &session{
		cfg: cfg,
		seq: turn.NewSequencer(cfg, turn.WithPresenter(consolePresenter{out: out})),
		in:  in,
		out: out,
	}
}

// run plays until the input ends, the game is over or the player quits.
func (s *session) run() error {
	if err := s.seq.StartGame(); err != nil {
		return err
	}
	s.printBoard(nil)

	scanner := bufio.NewScanner(s.in)
	for s.seq.Phase() != turn.GameOver && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := s.handle(line); quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading moves")
	}
	return s.finish()
}

// handle runs one command and reports whether the session should end.
func (s *session) handle(line string) bool {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprint(s.out, sessionHelp)
	case "board":
		s.printBoard(nil)
	case "moves":
		fmt.Fprintln(s.out, s.seq.History())
	case "draw":
		s.report(s.seq.OfferDraw())
	case "show":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "usage: show <square>")
			return false
		}
		s.show(fields[1])
	default:
		if err := s.seq.Play(fields[0]); err != nil {
			s.report(err)
			return false
		}
		if latest := s.seq.History().Latest(); latest != nil {
			fmt.Fprintln(s.out, latest)
		}
		s.printBoard(nil)
	}
	return false
}

// show highlights the destinations of the piece on a square.
func (s *session) show(text string) {
	sq, err := chess.ParseSquare(text)
	if err != nil {
		s.report(err)
		return
	}
	id, ok := s.seq.EntityAt(sq)
	if !ok {
		fmt.Fprintf(s.out, "no piece on %v\n", sq)
		return
	}
	dests := s.seq.Destinations(id)
	if len(dests) == 0 {
		fmt.Fprintf(s.out, "%v cannot move\n", sq)
		return
	}
	s.printBoard(dests)
}

func (s *session) printBoard(highlight []chess.Square) {
	if !s.cfg.Output.ShowBoard {
		return
	}
	opts := board.RenderOptions{
		Colour:    s.cfg.Output.Colour,
		Symbols:   s.cfg.Output.Symbols,
		Highlight: highlight,
	}
	if err := s.seq.Board().Render(s.out, opts); err != nil {
		s.cfg.Logf(1, "render: %v", err)
	}
}

func (s *session) report(err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, errors.ErrNotImplemented):
		fmt.Fprintln(s.out, "not available in this version")
	case errors.Is(err, errors.ErrIllegalSelection), errors.Is(err, errors.ErrInvalidMoveText),
		errors.Is(err, errors.ErrInvalidSquare):
		fmt.Fprintf(s.out, "illegal: %v\n", err)
	default:
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
}

// finish writes the game record in the configured format.
func (s *session) finish() error {
	if s.seq.Phase() == turn.GameOver {
		fmt.Fprintln(s.out, s.seq.Outcome())
	}
	game := output.GameFromSequencer(s.seq, s.cfg.StartFEN)
	cfg := *s.cfg
	cfg.Output.ShowBoard = false
	// A session records one game, so JSON is written as a bare object.
	w := output.NewGameWriter(s.out, &cfg)
	if cfg.Output.JSONFormat {
		w = output.NewJSONWriterSingle(s.out, &cfg)
	}
	if err := w.WriteGame(game); err != nil {
		return err
	}
	return w.Close()
}
