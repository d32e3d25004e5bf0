package config

import "github.com/lgbarn/pawnchess-go/internal/errors"

// BoardFormat selects how board snapshots are rendered.
type BoardFormat int

const (
	TextBoard BoardFormat = iota // ASCII grid
	JSONBoard                    // One JSON object per snapshot
)

// String returns the string representation of a board format.
func (f BoardFormat) String() string {
	switch f {
	case TextBoard:
		return "text"
	case JSONBoard:
		return "json"
	default:
		return "unknown"
	}
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies how board snapshots are rendered
	Format BoardFormat

	// ShowBanner prints the program title before the name prompts
	ShowBanner bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:     TextBoard,
		ShowBanner: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != TextBoard && o.Format != JSONBoard {
		return errors.Wrapf(errors.ErrInvalidConfig, "board format %d", o.Format)
	}
	return nil
}
