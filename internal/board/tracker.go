package board

import "math"

// MoveTracker counts how many times a piece has moved. Rules only ask
// whether it has moved at all.
type MoveTracker uint8

// Inc records one move. The counter saturates instead of wrapping so a piece
// never looks unmoved again.
func (t MoveTracker) Inc() MoveTracker {
	if t == math.MaxUint8 {
		return t
	}
	return t + 1
}

// HasMoved reports whether the piece has ever moved.
func (t MoveTracker) HasMoved() bool {
	return t > 0
}

// Count returns the raw move count.
func (t MoveTracker) Count() int {
	return int(t)
}
