package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rideshare/internal/config"
)

// NewLogger builds a JSON production logger writing to stdout at the
// configured level. Unknown levels fall back to info.
func NewLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stdout"}
	return zcfg.Build()
}
