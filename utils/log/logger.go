// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package promptlog

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Keep the global logger private to prevent uninitialized access.
	logger *PromptLogger
	raw    *zap.Logger

	// Noop logger as safe fallback when not initialized.
	noopLogger = &PromptLogger{zap.NewNop().Sugar()}

	// Atomic log level allows dynamic runtime level changes.
	atomicLevel zap.AtomicLevel
)

// PromptLogger wraps zap's SugaredLogger for convenience.
type PromptLogger struct {
	*zap.SugaredLogger
}

// Options selects the encoder and the initial level.
// Mode is "dev" or "prod"; an empty Level falls back to the mode default.
type Options struct {
	Mode  string
	Level string
}

// With adds structured fields to the logger and returns a new instance.
func (l *PromptLogger) With(args ...interface{}) *PromptLogger {
	if l == nil {
		return noopLogger
	}
	return &PromptLogger{l.SugaredLogger.With(args...)}
}

// L returns the global logger or a no-op fallback if uninitialized.
func L() *PromptLogger {
	if logger == nil {
		return noopLogger
	}
	return logger
}

// Init initializes the global logger.
//
//   - dev  → human-readable logs in ~/.local/state/<app>/app-debug.log
//   - prod → JSON logs in ~/.local/state/<app>/app.log
//
// The terminal belongs to the UI, so nothing is ever written to stdout here.
func Init(appName string, opts Options) {
	mode := normalizeMode(opts.Mode)
	logPath := selectLogPath(appName, mode)

	atomicLevel = zap.NewAtomicLevelAt(parseLevel(opts.Level, mode))

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    20, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if mode == "dev" {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, atomicLevel)
	raw = zap.New(core, zap.AddCaller())
	logger = &PromptLogger{raw.Sugar()}

	logger.Infof("logger initialized in %s mode. Writing to %s", mode, logPath)
}

// Sync flushes any buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// InitTest creates a lightweight logger for tests that logs to stdout.
func InitTest() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{"stdout"}
	raw, _ = cfg.Build(zap.AddCaller())
	logger = &PromptLogger{raw.Sugar()}
}

// SetLevel allows changing the log level at runtime.
func SetLevel(level zapcore.Level) {
	if atomicLevel != (zap.AtomicLevel{}) {
		atomicLevel.SetLevel(level)
	}
}

func normalizeMode(mode string) string {
	switch strings.ToLower(mode) {
	case "dev", "development":
		return "dev"
	default:
		return "prod"
	}
}

// selectLogPath picks a standard file location for logs.
func selectLogPath(appName, mode string) string {
	fileName := "app.log"
	if mode == "dev" {
		fileName = "app-debug.log"
	}

	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		path := filepath.Join(xdg, appName)
		_ = os.MkdirAll(path, 0755)
		return filepath.Join(path, fileName)
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".local", "state", appName)
		_ = os.MkdirAll(path, 0755)
		return filepath.Join(path, fileName)
	}

	// Fallback for restrictive environments
	path := filepath.Join(os.TempDir(), appName)
	_ = os.MkdirAll(path, 0755)
	return filepath.Join(path, fileName)
}

func parseLevel(level, mode string) zapcore.Level {
	if level != "" {
		if lvl, err := zapcore.ParseLevel(strings.ToLower(level)); err == nil {
			return lvl
		}
	}
	if mode == "dev" {
		return zap.DebugLevel
	}
	return zap.InfoLevel
}
