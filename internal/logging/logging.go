// Package logging builds the zap logger used across quotebot.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultFile is the log file name used when none is configured.
const DefaultFile = "quote_bot.log"

// Options configures New.
type Options struct {
	// Enabled mirrors the log_messages config key. When false New returns
	// a no-op logger and never touches the file system.
	Enabled bool
	// File is appended to; created if missing.
	File string
	// Console receives a copy of every line. Nil means os.Stderr.
	Console io.Writer
	Level   zapcore.Level
}

// New returns a logger writing "timestamp - LEVEL - message" lines to the
// log file and the console, and a close func that syncs and releases the
// file.
func New(opts Options) (*zap.Logger, func() error, error) {
	if !opts.Enabled {
		return zap.NewNop(), func() error { return nil }, nil
	}
	if opts.File == "" {
		opts.File = DefaultFile
	}
	if opts.Console == nil {
		opts.Console = os.Stderr
	}

	if dir := filepath.Dir(opts.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	enc := zapcore.NewConsoleEncoder(encoderConfig())
	level := zap.NewAtomicLevelAt(opts.Level)
	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.AddSync(f), level),
		zapcore.NewCore(enc.Clone(), zapcore.AddSync(opts.Console), level),
	)
	logger := zap.New(core)

	closeFn := func() error {
		_ = logger.Sync()
		return f.Close()
	}
	return logger, closeFn, nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05,000"),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " - ",
	}
}
