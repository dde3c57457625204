// Package logging builds the slog.Logger shared by the graphptol front ends.
//
// Output goes to stderr by default. On a terminal the handler is the
// human-readable text handler; when stderr is redirected it switches to JSON
// so log files stay machine-parseable. The interactive UI owns the terminal,
// so it logs to a file (Config.File) or nowhere at all.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
)

// Format selects the slog handler.
type Format string

const (
	// FormatAuto picks text on a terminal and JSON otherwise.
	FormatAuto Format = "auto"
	// FormatText always uses slog.TextHandler.
	FormatText Format = "text"
	// FormatJSON always uses slog.JSONHandler.
	FormatJSON Format = "json"
)

// Config configures New. The zero value logs Info+ to stderr in auto format.
type Config struct {
	// Level is one of debug, info, warn, error (case-insensitive). Default info.
	Level string

	// Format is auto, text or json. Default auto.
	Format Format

	// File, when set, redirects output to that file (appended, created 0640).
	// Files are always written as JSON.
	File string

	// Discard drops everything. Used by the interactive UI when no file is set.
	Discard bool

	// Output overrides stderr; mostly for tests.
	Output io.Writer
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// New builds a logger. The returned close function releases the log file,
// if one was opened, and is always safe to call.
func New(cfg Config) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, noop, err
	}
	if cfg.Discard {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), noop, nil
	}

	out := cfg.Output
	format := cfg.Format
	closeFn := noop
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
			return nil, noop, fmt.Errorf("logging: create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
		if err != nil {
			return nil, noop, fmt.Errorf("logging: open log file: %w", err)
		}
		out, format, closeFn = f, FormatJSON, f.Close
	}
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch resolveFormat(format, out) {
	case FormatJSON:
		h = slog.NewJSONHandler(out, opts)
	default:
		h = slog.NewTextHandler(out, opts)
	}

	return slog.New(h), closeFn, nil
}

// resolveFormat turns FormatAuto into text or JSON depending on whether out is a terminal.
func resolveFormat(f Format, out io.Writer) Format {
	switch f {
	case FormatText, FormatJSON:
		return f
	}
	if fd, ok := out.(interface{ Fd() uintptr }); ok {
		if isatty.IsTerminal(fd.Fd()) || isatty.IsCygwinTerminal(fd.Fd()) {
			return FormatText
		}
	}

	return FormatJSON
}
