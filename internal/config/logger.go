package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// LogLevelEnv names the variable holding the minimum log level.
const LogLevelEnv = "LOG_LEVEL"

// NewLogger creates a timestamped logger writing to w at the level named by
// LOG_LEVEL (info when unset or invalid).
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})
	logger.SetLevel(levelFromEnv())
	return logger
}

// NewFileLogger logs to the file at path, appending. An empty path discards
// all output, which is what the terminal front-end wants since the screen is
// the game. The returned closer must be closed on exit.
func NewFileLogger(path, prefix string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard), io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}
	return NewLogger(f, prefix), f, nil
}

func levelFromEnv() log.Level {
	level, err := log.ParseLevel(GetEnv(LogLevelEnv, "info"))
	if err != nil {
		return log.InfoLevel
	}
	return level
}
