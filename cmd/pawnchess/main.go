// pawnchess is a two-player pawns-only chess game played at the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/pawnchess-go/internal/config"
	"github.com/lgbarn/pawnchess-go/internal/logging"
	"github.com/lgbarn/pawnchess-go/internal/session"
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
		fmt.Printf("pawnchess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	logCloser, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	code := run(cfg)
	if logCloser != nil {
		logCloser.Close()
	}
	os.Exit(code)
}

// run plays one session and returns the process exit code.
func run(cfg *config.Config) int {
	logger := logging.New(cfg.Log)
	defer logger.Sync() //nolint:errcheck // nothing useful to do on a failed flush

	s, err := session.New(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := s.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogFile opens the log file named by -l or -L. With both set, -L wins.
func setupLogFile(cfg *config.Config) (io.Closer, error) {
	var file *os.File
	var err error

	switch {
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", *appendLog, err)
		}
	case *logFile != "":
		file, err = os.Create(*logFile)
		if err != nil {
			return nil, fmt.Errorf("creating log file %s: %w", *logFile, err)
		}
	default:
		return nil, nil
	}

	cfg.Log.File = file
	return file, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pawnchess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player pawns-only chess game.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves are entered as source and destination squares, e.g. e2e4.\n")
	fmt.Fprintf(os.Stderr, "Type exit to quit.\n")
}
