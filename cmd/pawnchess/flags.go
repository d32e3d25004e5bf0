// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/pawnchess-go/internal/config"
)

var (
	// Players
	whiteName = flag.String("white", "", "Name of the White player (prompted for if empty)")
	blackName = flag.String("black", "", "Name of the Black player (prompted for if empty)")

	// Game setup
	startPosition = flag.String("position", "", "Start position, e.g. '8/pppppppp/8/8/8/8/PPPPPPPP/8 w -'")

	// Output options
	jsonOutput = flag.Bool("J", false, "Print board snapshots as JSON lines")
	quiet      = flag.Bool("s", false, "Silent mode (no title banner)")

	// Logging
	logFile   = flag.String("l", "", "Write structured session log to file")
	appendLog = flag.String("L", "", "Append structured session log to file")
	debugLog  = flag.Bool("debug", false, "Log at debug level")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPlayerFlags(cfg)
	applyOutputFlags(cfg)

	cfg.StartPosition = *startPosition
	if *debugLog {
		cfg.Log.Level = config.LevelDebug
	}
}

// applyPlayerFlags sets the player names given on the command line.
func applyPlayerFlags(cfg *config.Config) {
	cfg.Players.White = *whiteName
	cfg.Players.Black = *blackName
}

// applyOutputFlags configures board rendering.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSONBoard
	} else {
		cfg.Output.Format = config.TextBoard
	}
	cfg.Output.ShowBanner = !*quiet
}
