// Package logging builds the structured session logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/pawnchess-go/internal/config"
)

// New returns a logger writing JSON lines to cfg.File, or a no-op logger
// when logging is not configured.
func New(cfg *config.LogConfig) *zap.Logger {
	if cfg == nil || !cfg.Enabled() {
		return zap.NewNop()
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(cfg.File),
		level(cfg.Level),
	)
	return zap.New(core)
}

func level(name string) zapcore.Level {
	if name == config.LevelDebug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}
