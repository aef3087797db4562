// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length for move text (0 = no wrapping)")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	uciOutput    = flag.Bool("uci", false, "Write moves as coordinates (e2e4) instead of algebraic notation")
	colourOutput = flag.Bool("colour", false, "Colour board diagrams")
	symbols      = flag.Bool("symbols", false, "Draw pieces as Unicode symbols")
	noBoard      = flag.Bool("noboard", false, "Don't print the final board")
	selectable   = flag.Bool("selectable", false, "List the pieces the side to move can select")

	// Rules
	startFEN   = flag.String("fen", "", "Starting position in FEN (default: standard setup)")
	kingSafety = flag.Bool("kingsafety", false, "Enforce check, checkmate and stalemate")
	promoteTo  = flag.String("promote", "q", "Piece chosen for promotions that name none: q, r, b or n")
	gameMode   = flag.String("mode", "local", "Game mode: local, online, replay")

	// Play
	interactive = flag.Bool("i", false, "Play interactively, reading moves from stdin")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("verbose", 1, "Diagnostic level: 0 = none, 1 = summaries, 2 = every phase")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyOutputFlags(cfg)
	if err := applyRulesFlags(cfg); err != nil {
		return err
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	if *lineLength >= 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.Output.Notation = config.SAN
	if *uciOutput {
		cfg.Output.Notation = config.UCI
	}
	cfg.Output.Colour = *colourOutput
	cfg.Output.Symbols = *symbols
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowSelectable = *selectable
}

// applyRulesFlags configures the rules, start position and mode.
func applyRulesFlags(cfg *config.Config) error {
	cfg.Rules.KingSafety = *kingSafety
	cfg.StartFEN = strings.TrimSpace(*startFEN)

	kind, err := parsePromotion(*promoteTo)
	if err != nil {
		return err
	}
	cfg.Rules.AutoPromotion = kind

	mode, err := parseGameMode(*gameMode)
	if err != nil {
		return err
	}
	cfg.Mode = mode
	return nil
}

// parsePromotion parses a promotion piece letter or name.
func parsePromotion(s string) (chess.Kind, error) {
	names := map[string]chess.Kind{
		"q": chess.Queen, "queen": chess.Queen,
		"r": chess.Rook, "rook": chess.Rook,
		"b": chess.Bishop, "bishop": chess.Bishop,
		"n": chess.Knight, "knight": chess.Knight,
	}
	if kind, ok := names[strings.ToLower(strings.TrimSpace(s))]; ok {
		return kind, nil
	}
	return chess.NoKind, fmt.Errorf("promotion piece %q: %w", s, errors.ErrInvalidConfig)
}

// parseGameMode parses the -mode flag.
func parseGameMode(s string) (config.GameMode, error) {
	modeMap := map[string]config.GameMode{
		"local":  config.LocalSinglePlayer,
		"online": config.OnlineMultiPlayer,
		"replay": config.Replay,
	}
	if mode, ok := modeMap[strings.ToLower(s)]; ok {
		return mode, nil
	}
	return config.LocalSinglePlayer, fmt.Errorf("game mode %q: %w", s, errors.ErrInvalidConfig)
}
