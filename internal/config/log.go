package config

import (
	"io"

	"github.com/lgbarn/pawnchess-go/internal/errors"
)

// Log levels accepted by LogConfig.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
)

// LogConfig holds settings for the structured session log.
type LogConfig struct {
	// File receives JSON log lines; nil disables logging
	File io.Writer

	// Level is LevelDebug or LevelInfo
	Level string
}

// NewLogConfig creates a LogConfig with logging disabled.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: LevelInfo}
}

// Enabled reports whether log output has been configured.
func (l *LogConfig) Enabled() bool {
	return l.File != nil
}

// Validate checks that the log configuration is valid.
func (l *LogConfig) Validate() error {
	switch l.Level {
	case LevelDebug, LevelInfo:
		return nil
	}
	return errors.Wrapf(errors.ErrInvalidConfig, "log level %q", l.Level)
}
