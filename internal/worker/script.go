package worker

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/turn"
)

// maxScriptLine bounds one script line; a long game is a single line.
const maxScriptLine = 16 << 20

// ReadScript reads one game per line: coordinate moves separated by spaces,
// optionally preceded by a FEN and a "|" ("8/8/... w - - 0 1 | e7e8q").
// Blank lines and lines starting with '#' are skipped. Indexes start at 1.
func ReadScript(r io.Reader) ([]WorkItem, error) {
	var items []WorkItem
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScriptLine)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		item := WorkItem{Index: len(items) + 1}
		if fen, moves, ok := strings.Cut(line, "|"); ok {
			item.StartFEN = strings.TrimSpace(fen)
			line = moves
			if item.StartFEN == "" {
				return nil, errors.Wrapf(errors.ErrInvalidFEN, "line %d: empty position", lineNo)
			}
		}
		item.Moves = strings.Fields(line)
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading script")
	}
	return items, nil
}

// PlayGame returns a ProcessFunc that plays each item on its own sequencer
// configured from cfg. The item's start position overrides cfg.StartFEN.
// Log lines are collected per game in ProcessResult.Log rather than written
// to cfg.LogFile, which workers would otherwise share.
func PlayGame(cfg *config.Config) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		var log bytes.Buffer
		gameCfg := *cfg
		gameCfg.SetLog(&log)
		if item.StartFEN != "" {
			gameCfg.StartFEN = item.StartFEN
		}

		result := ProcessResult{Index: item.Index}
		s := turn.NewSequencer(&gameCfg)
		if err := s.StartGame(); err != nil {
			result.Err = errors.Wrapf(err, "game %d", item.Index)
			result.Log = log.Bytes()
			return result
		}

		if err := s.PlayAll(item.Moves); err != nil {
			result.Err = errors.Wrapf(err, "game %d", item.Index)
		}
		result.Game = output.GameFromSequencer(s, gameCfg.StartFEN)
		result.Game.Index = item.Index
		result.Log = log.Bytes()
		return result
	}
}
