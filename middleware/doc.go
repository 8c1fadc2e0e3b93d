// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides command wrappers and output helpers.

# Command Logging

Wrap a command's RunE with logging:

	cmd.RunE = middleware.WithLogging("vote", handler.Run)

Logs command start (name, arg count) at debug level and completion
(duration_ms) at info level. A failing command is logged with its error and
the error is returned unchanged.

# Loggers

NewLogger builds the process logger from the configured level and format:

	logger, err := middleware.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

The "auto" format uses the text handler when the output is a terminal
(go-isatty) and the JSON handler otherwise.

# JSON Output

Write JSON to any writer:

	middleware.JSONResponse(cmd.OutOrStdout(), summary)
*/
package middleware
