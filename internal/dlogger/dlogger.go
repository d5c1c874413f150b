// Package dlogger builds the zap logger used across repository operations.
package dlogger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Recognized log levels. LevelNone disables logging entirely, which is the
// default for interactive use so command output stays clean.
const (
	LevelNone  = "none"
	LevelInfo  = "info"
	LevelDebug = "debug"
)

// New returns a zap logger filtered at the given level string.
func New(level string) (*zap.Logger, error) {
	if level == "" || level == LevelNone {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
