// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// RunFunc is the signature of a cobra RunE.
type RunFunc func(cmd *cobra.Command, args []string) error

// WithLogging wraps a command with start and completion logging
func WithLogging(name string, next RunFunc) RunFunc {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		slog.Debug("command started",
			"command", name,
			"args", len(args),
		)

		err := next(cmd, args)

		duration := time.Since(start)
		if err != nil {
			slog.Error("command failed",
				"command", name,
				"duration_ms", duration.Milliseconds(),
				"error", err,
			)
			return err
		}
		slog.Info("command completed",
			"command", name,
			"duration_ms", duration.Milliseconds(),
		)
		return nil
	}
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(name)))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewLogger returns a logger writing to w. The "auto" format picks text on a
// terminal and JSON otherwise.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "auto", "":
		if IsTerminal(w) {
			return slog.New(slog.NewTextHandler(w, opts)), nil
		}
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// JSONResponse writes data as indented JSON followed by a newline
func JSONResponse(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
		return err
	}
	return nil
}
