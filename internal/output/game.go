package output

import (
	"sort"

	"github.com/lgbarn/chessrules-go/internal/board"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/turn"
)

// Game is a snapshot of a played game ready for output.
type Game struct {
	// Index is the game's position in a batch, starting at 1.
	Index int

	StartFEN string
	History  *engine.MoveHistory
	Board    *board.Board
	Side     chess.Colour
	Position engine.Position
	GameOver bool
}

// GameFromSequencer snapshots the sequencer's current game.
func GameFromSequencer(s *turn.Sequencer, startFEN string) *Game {
	return &Game{
		StartFEN: startFEN,
		History:  s.History(),
		Board:    s.Board(),
		Side:     s.Side(),
		Position: s.Position(),
		GameOver: s.Phase() == turn.GameOver,
	}
}

// Result returns the game result marker: "1-0" or "0-1" after checkmate,
// "1/2-1/2" after stalemate, and "*" for a game in progress.
func (g *Game) Result() string {
	if !g.GameOver {
		return "*"
	}
	switch g.Position.Outcome {
	case engine.Checkmate:
		if g.Side == chess.White {
			return "0-1"
		}
		return "1-0"
	case engine.Stalemate:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// destinations returns the piece's destination squares ordered by rank,
// then file.
func (g *Game) destinations(id chess.EntityID) []string {
	squares := g.Position.Moves.Destinations(id)
	sort.Slice(squares, func(i, j int) bool {
		if squares[i].Rank != squares[j].Rank {
			return squares[i].Rank < squares[j].Rank
		}
		return squares[i].File < squares[j].File
	})
	out := make([]string, 0, len(squares))
	for _, sq := range squares {
		out = append(out, sq.String())
	}
	return out
}
