// chessrules plays chess games under the standard movement rules, either
// interactively or from move scripts.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if *interactive {
		if err := newSession(cfg, os.Stdin, cfg.OutputFile).run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scripts, closeAll := openInputs(flag.Args())
	defer closeAll()

	stats, err := runBatch(ctx, cfg, scripts, *workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(os.Stderr, "%d game(s) played, %d with illegal moves.\n", stats.games, stats.failed)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// openInputs opens the named script files, or stdin when there are none.
// Files that cannot be opened are reported and skipped.
func openInputs(names []string) ([]io.Reader, func()) {
	if len(names) == 0 {
		return []io.Reader{os.Stdin}, func() {}
	}

	var readers []io.Reader
	var files []*os.File
	for _, name := range names {
		file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", name, err)
			continue
		}
		readers = append(readers, file)
		files = append(files, file)
	}
	return readers, func() {
		for _, f := range files {
			f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess games from move scripts, or interactively with -i.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript format:\n")
	fmt.Fprintf(os.Stderr, "  One game per line of coordinate moves:  e2e4 e7e5 g1f3\n")
	fmt.Fprintf(os.Stderr, "  Optionally from a position:             <FEN> | e7e8q\n")
	fmt.Fprintf(os.Stderr, "  Lines starting with # are ignored.\n")
}
