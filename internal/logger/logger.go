// Package logger provides a lightweight, centralized logging facility
// with configurable verbosity levels, backed by zap.
//
// Design goals:
//   - Simple API (Errorf, Warnf, Infof, Debugf)
//   - Centralized verbosity control
//   - Zero formatting logic at call sites
//
// Verbosity is a small integer so it can come straight from a config file
// or flag: 0 logs errors only, 1 adds warnings and info, 2 adds debug.
//
// Example usage:
//
//	logger.SetVerbosity(2)
//	logger.Infof("engine started")
//	logger.Debugf("spot=%f vol=%f", spot, vol)
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// sugar is the active logger. It always exists, so call sites never need
// nil checks; SetVerbosity swaps it for one with a different level.
var sugar = build(zapcore.InfoLevel)

func build(level zapcore.Level) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// The static config above cannot fail; fall back to a no-op logger
		// rather than panicking during init.
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// SetVerbosity sets the global logging verbosity. Typically called once
// during application startup, after parsing flags or config.
func SetVerbosity(v int) {
	switch {
	case v <= 0:
		sugar = build(zapcore.ErrorLevel)
	case v == 1:
		sugar = build(zapcore.InfoLevel)
	default:
		sugar = build(zapcore.DebugLevel)
	}
}

// Errorf logs an error-level message.
// Use this for failures that require attention.
func Errorf(format string, args ...any) { sugar.Errorf(format, args...) }

// Warnf logs a warning, for conditions that are suspicious but non-fatal.
func Warnf(format string, args ...any) { sugar.Warnf(format, args...) }

// Infof logs an informational message.
// Use this for major lifecycle events.
func Infof(format string, args ...any) { sugar.Infof(format, args...) }

// Debugf logs debugging information.
// Use this for diagnostic output useful during development.
func Debugf(format string, args ...any) { sugar.Debugf(format, args...) }

// Sync flushes any buffered log entries. Call on shutdown.
func Sync() { _ = sugar.Sync() }
