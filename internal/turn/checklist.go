package turn

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Checklist task names.
const (
	TaskEnPassant = "en passant"
	TaskCastling  = "castling"
	TaskPresenter = "presenter"
	TaskMoves     = "moves"
	TaskAttacked  = "attacked squares"
)

// Task is one named step of the turn-start checklist.
type Task struct {
	Name string
	Run  func() error
}

// Checklist records which tasks have completed since the last Reset.
type Checklist struct {
	done  map[string]bool
	order []string
}

// Reset clears every completion flag.
func (c *Checklist) Reset() {
	c.done = make(map[string]bool)
	c.order = c.order[:0]
}

// Run runs the tasks in order and marks each one done. It stops at the
// first failing task.
func (c *Checklist) Run(tasks ...Task) error {
	if c.done == nil {
		c.Reset()
	}
	for _, task := range tasks {
		if err := task.Run(); err != nil {
			return errors.Wrapf(err, "checklist task %q", task.Name)
		}
		c.done[task.Name] = true
		c.order = append(c.order, task.Name)
	}
	return nil
}

// Join returns ErrUnreachable unless every named task has completed.
func (c *Checklist) Join(names ...string) error {
	for _, name := range names {
		if !c.done[name] {
			return fmt.Errorf("checklist task %q has not run: %w", name, errors.ErrUnreachable)
		}
	}
	return nil
}

// Done reports whether the task has completed.
func (c *Checklist) Done(name string) bool {
	return c.done[name]
}

// Completed returns the completed task names in run order.
func (c *Checklist) Completed() []string {
	return append([]string(nil), c.order...)
}
