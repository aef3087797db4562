// Package turn sequences a game through its turn phases. A Sequencer owns
// the board, the move history and the state derived for each turn, and
// advances only at phase boundaries.
package turn

// Phase is a step of the turn cycle.
type Phase int

const (
	None             Phase = iota // Idle, before the game starts
	GameStart                     // Spawning the pieces
	Start                         // Running the turn-start checklist
	SelectMove                    // Waiting for the player to pick a move
	MovePiece                     // Applying a move, waiting for the animator
	UpdateBoardState              // Counting the half-move and flipping sides
	End                           // Turn finished
	GameOver                      // Side to move has no legal move (king safety only)
)

// String returns the phase name.
func (p Phase) String() string {
	names := []string{"None", "GameStart", "Start", "SelectMove", "MovePiece",
		"UpdateBoardState", "End", "GameOver"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}
