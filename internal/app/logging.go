package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dshills/brz/internal/config"
)

// NewLogger opens the rotating log file configured in cfg and returns a
// logger writing text records to it. Closing the returned io.Closer closes
// the file. The terminal is never written to.
func NewLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	if cfg.Log.File == "" {
		return nil, nil, fmt.Errorf("log file: %w", config.ErrInvalidValue)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	w := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
	}
	return newLogger(w, cfg.LogLevel()), w, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("pid", os.Getpid())
}
