package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/lumberjack"
)

var (
	mu  sync.RWMutex
	log = New(os.Stderr, false)
)

// Options configures the package logger. An empty File logs to stderr.
type Options struct {
	Debug      bool
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup replaces the package logger. The returned closer releases the log
// file, if any.
func Setup(opts Options) (io.Closer, error) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}

		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
		w = rotating
		closer = rotating
	}

	set(New(w, opts.Debug))
	return closer, nil
}

// L returns the current logger for components that take a *slog.Logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func set(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

func Debug(msg string, args ...any) {
	L().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	L().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	L().Error(msg, args...)
}

func Fatal(msg string, args ...any) {
	L().Error(msg, args...)
	os.Exit(1)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
