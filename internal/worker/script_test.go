package worker

import (
	"context"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestReadScript(t *testing.T) {
	script := `# opening lines
e2e4 e7e5 g1f3

d2d4 d7d5
8/4P3/8/8/8/k7/8/K7 w - - 0 1 | e7e8n
`
	items, err := ReadScript(strings.NewReader(script))
	testutil.AssertNoError(t, err)

	want := []WorkItem{
		{Index: 1, Moves: []string{"e2e4", "e7e5", "g1f3"}},
		{Index: 2, Moves: []string{"d2d4", "d7d5"}},
		{Index: 3, StartFEN: "8/4P3/8/8/8/k7/8/K7 w - - 0 1", Moves: []string{"e7e8n"}},
	}
	testutil.AssertEqual(t, items, want)
}

func TestReadScriptLongLine(t *testing.T) {
	const numMoves = 20000
	line := strings.Repeat("g1f3 g8f6 f3g1 f6g8 ", numMoves/4)
	items, err := ReadScript(strings.NewReader(line + "\ne2e4\n"))
	testutil.AssertNoError(t, err)

	if len(items) != 2 {
		t.Fatalf("items = %d; want 2", len(items))
	}
	if got := len(items[0].Moves); got != numMoves {
		t.Errorf("moves on long line = %d; want %d", got, numMoves)
	}
	testutil.AssertEqual(t, items[1], WorkItem{Index: 2, Moves: []string{"e2e4"}})
}

func TestReadScriptEmptyPosition(t *testing.T) {
	_, err := ReadScript(strings.NewReader(" | e2e4\n"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
}

func TestPlayGame(t *testing.T) {
	cfg := config.NewConfigBuilder().WithVerbosity(0).WithKingSafety(true).Build()
	play := PlayGame(cfg)

	tests := []struct {
		name     string
		item     WorkItem
		wantText string
		wantErr  error
	}{
		{
			name:     "complete game",
			item:     WorkItem{Index: 1, Moves: []string{"f2f3", "e7e5", "g2g4", "d8h4"}},
			wantText: "1.f3 e5 2.g4 Qh4#",
		},
		{
			name:     "from position",
			item:     WorkItem{Index: 2, StartFEN: "8/4P3/8/8/8/k7/8/K7 w - - 0 1", Moves: []string{"e7e8n"}},
			wantText: "1.e8=N",
		},
		{
			name:     "illegal move keeps the prefix",
			item:     WorkItem{Index: 3, Moves: []string{"e2e4", "e7e4"}},
			wantText: "1.e4",
			wantErr:  chesserrors.ErrIllegalSelection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := play(tt.item)
			if tt.wantErr != nil {
				testutil.AssertErrorIs(t, r.Err, tt.wantErr)
			} else {
				testutil.AssertNoError(t, r.Err)
			}
			if r.Index != tt.item.Index || r.Game == nil || r.Game.Index != tt.item.Index {
				t.Fatalf("result = %+v; want game with index %d", r, tt.item.Index)
			}
			if got := r.Game.History.String(); got != tt.wantText {
				t.Errorf("history = %q; want %q", got, tt.wantText)
			}
		})
	}

	if cfg.StartFEN != "" {
		t.Errorf("shared config StartFEN changed to %q", cfg.StartFEN)
	}
}

func TestPlayGameBadPosition(t *testing.T) {
	cfg := config.NewConfigBuilder().WithVerbosity(0).Build()
	r := PlayGame(cfg)(WorkItem{Index: 1, StartFEN: "not a fen"})
	testutil.AssertErrorIs(t, r.Err, chesserrors.ErrInvalidFEN)
	if r.Game != nil {
		t.Error("Game set for a position that failed to load")
	}
}

func TestPoolPlaysScript(t *testing.T) {
	cfg := config.NewConfigBuilder().WithVerbosity(0).Build()
	items, err := ReadScript(strings.NewReader("e2e4\nd2d4 d7d5\ng1f3 g8f6 c2c4\n"))
	testutil.AssertNoError(t, err)

	results, err := NewPool(PlayGame(cfg), WithWorkers(3)).Run(context.Background(), items)
	testutil.AssertNoError(t, err)

	var got []string
	for _, r := range results {
		testutil.AssertNoError(t, r.Err)
		got = append(got, r.Game.History.String())
	}
	testutil.AssertEqual(t, got, []string{"1.e4", "1.d4 d5", "1.Nf3 Nf6 2.c4"})
}

func TestPlayGameCollectsLog(t *testing.T) {
	var shared strings.Builder
	cfg := config.NewConfigBuilder().WithVerbosity(1).WithLog(&shared).Build()

	r := PlayGame(cfg)(WorkItem{Index: 1, Moves: []string{"e2e4"}})
	testutil.AssertNoError(t, r.Err)
	testutil.AssertContains(t, string(r.Log), "e4")
	if shared.Len() != 0 {
		t.Errorf("shared log written by worker: %q", shared.String())
	}
}
