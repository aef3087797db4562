package turn

import "github.com/lgbarn/chessrules-go/internal/chess"

// Animator moves pieces on screen. When a motion ends the animator calls
// done, or the caller reports it through Sequencer.MotionFinished.
type Animator interface {
	MoveTo(entity chess.EntityID, to chess.Square, done func())
}

// InstantAnimator completes every motion as soon as it is requested.
type InstantAnimator struct{}

// MoveTo reports the motion finished immediately.
func (InstantAnimator) MoveTo(_ chess.EntityID, _ chess.Square, done func()) {
	done()
}

// Presenter receives presentation hooks from the sequencer.
type Presenter interface {
	// OnTurnStart runs as part of the turn-start checklist, e.g. to turn
	// the camera toward the side to move.
	OnTurnStart(side chess.Colour)

	// OnCapture runs when a piece leaves the board.
	OnCapture(entity chess.EntityID)
}

type nopPresenter struct{}

func (nopPresenter) OnTurnStart(chess.Colour) {}
func (nopPresenter) OnCapture(chess.EntityID) {}
