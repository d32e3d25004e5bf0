package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPlayers sets both player names.
func (b *ConfigBuilder) WithPlayers(white, black string) *ConfigBuilder {
	b.cfg.Players = PlayerConfig{White: white, Black: black}
	return b
}

// WithStartPosition sets the starting position string.
func (b *ConfigBuilder) WithStartPosition(pos string) *ConfigBuilder {
	b.cfg.StartPosition = pos
	return b
}

// WithBoardFormat sets the board rendering format.
func (b *ConfigBuilder) WithBoardFormat(format BoardFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithBanner controls whether the title banner is printed.
func (b *ConfigBuilder) WithBanner(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBanner = show
	return b
}

// WithInput sets the input reader.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.InputFile = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog enables structured logging to w at the given level.
func (b *ConfigBuilder) WithLog(w io.Writer, level string) *ConfigBuilder {
	b.cfg.Log.File = w
	b.cfg.Log.Level = level
	return b
}
