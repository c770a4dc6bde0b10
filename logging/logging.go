package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// New builds a zerolog logger writing to w. format is "console" or "json".
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := w
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: !isTerminal(w)}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// Open returns a logger writing to path, or to fallback when path is empty.
// The returned closer must be called on exit.
func Open(path string, fallback io.Writer, level, format string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		logger, err := New(fallback, level, format)
		return logger, io.NopCloser(nil), err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}
	logger, err := New(f, level, format)
	if err != nil {
		f.Close()
		return zerolog.Nop(), io.NopCloser(nil), err
	}
	return logger, f, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
