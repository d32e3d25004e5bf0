// Package config provides configuration for a pawnchess session.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/pawnchess-go/internal/errors"
)

// PlayerConfig holds the player names. Empty names are prompted for.
type PlayerConfig struct {
	White string
	Black string
}

// Config holds all program configuration.
type Config struct {
	Players PlayerConfig
	Output  *OutputConfig
	Log     *LogConfig

	// StartPosition is a position string; empty means the initial position.
	StartPosition string

	// Streams
	InputFile  io.Reader
	OutputFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Output:     NewOutputConfig(),
		Log:        NewLogConfig(),
		InputFile:  os.Stdin,
		OutputFile: os.Stdout,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Output == nil || c.Log == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "missing output or log settings")
	}
	if c.InputFile == nil || c.OutputFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "missing input or output stream")
	}
	if c.Players.White != "" && c.Players.White == c.Players.Black {
		return errors.Wrapf(errors.ErrInvalidConfig, "both players named %q", c.Players.White)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}
