// Package config provides configuration for the chess rules engine and its CLI.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// GameMode selects who supplies the moves.
type GameMode int

const (
	LocalSinglePlayer GameMode = iota // Both sides played through one sequencer
	OnlineMultiPlayer                 // Moves arrive from a remote peer
	Replay                            // Moves come from a recorded game
)

// String returns the mode name.
func (m GameMode) String() string {
	switch m {
	case LocalSinglePlayer:
		return "LocalSinglePlayer"
	case OnlineMultiPlayer:
		return "OnlineMultiPlayer"
	case Replay:
		return "Replay"
	default:
		return "Unknown"
	}
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=phase summaries, 2=running commentary

	Mode GameMode

	// StartFEN is the position loaded at GameStart; empty means the
	// standard initial setup.
	StartFEN string

	Rules  RulesConfig
	Output OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Mode:       LocalSinglePlayer,
		Rules:      *NewRulesConfig(),
		Output:     *NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer for program output.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer for log output.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a log line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Mode < LocalSinglePlayer || c.Mode > Replay {
		return fmt.Errorf("unknown game mode %d: %w", c.Mode, errors.ErrInvalidConfig)
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
