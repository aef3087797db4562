// batch.go - Playing move scripts through the worker pool
package main

import (
	"context"
	"io"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// batchStats counts the games of a batch run.
type batchStats struct {
	games  int
	failed int
}

// runBatch plays every game of the scripts and writes them to cfg.OutputFile.
// A game with an illegal move is written up to that move and logged.
func runBatch(ctx context.Context, cfg *config.Config, scripts []io.Reader, numWorkers int) (batchStats, error) {
	var stats batchStats

	var items []worker.WorkItem
	for _, r := range scripts {
		more, err := worker.ReadScript(r)
		if err != nil {
			return stats, err
		}
		for _, item := range more {
			item.Index = len(items) + 1
			items = append(items, item)
		}
	}

	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(worker.PlayGame(cfg), worker.WithWorkers(numWorkers), worker.WithBufferSize(bufferSize))
	cfg.Logf(2, "playing %d games on %d workers", len(items), pool.NumWorkers())
	results, err := pool.Run(ctx, items)
	if err != nil {
		return stats, err
	}

	w := output.NewGameWriter(cfg.OutputFile, cfg)
	for _, r := range results {
		stats.games++
		if len(r.Log) > 0 && cfg.LogFile != nil {
			if _, err := cfg.LogFile.Write(r.Log); err != nil {
				return stats, err
			}
		}
		if r.Err != nil {
			stats.failed++
			cfg.Logf(1, "%v", r.Err)
		}
		if r.Game == nil {
			continue
		}
		if err := w.WriteGame(r.Game); err != nil {
			return stats, err
		}
	}
	return stats, w.Close()
}
