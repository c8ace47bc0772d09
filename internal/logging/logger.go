// Package logging builds the crawler's structured logger. The terminal
// belongs to the game view, so log output goes to a rotated file.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Prefix is prepended to every log line.
const Prefix = "castle"

// Config controls where and how much is logged.
type Config struct {
	FilePath   string // Empty disables file output
	Level      string // debug, info, warn, error
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultConfig logs at info level to ~/.castle/castle.log.
func DefaultConfig() Config {
	return Config{
		FilePath:   DefaultLogPath(),
		Level:      "info",
		MaxSizeMB:  5,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

// DefaultLogPath returns ~/.castle/castle.log, or castle.log in the working
// directory when home is unavailable.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "castle.log"
	}
	return filepath.Join(home, ".castle", "castle.log")
}

// New creates a logger writing to the configured rotating file.
// The returned closer releases the file; it is a no-op when file output
// is disabled.
func New(cfg Config) (*log.Logger, io.Closer) {
	if cfg.FilePath == "" {
		return Discard(), nopCloser{}
	}

	file := &lumberjack.Logger{
		Filename:   expandHome(cfg.FilePath),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}

	logger := log.NewWithOptions(file, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           ParseLevel(cfg.Level),
	})
	return logger, file
}

// ParseLevel converts a level name to a log level, defaulting to info.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: Prefix})
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
