// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line flags and configuration.

# Configuration

The root command binds every setting as a persistent flag and resolves the
result before any subcommand runs:

	var cfg cliparse.Config
	cliparse.BindFlags(cmd.PersistentFlags(), &cfg)
	// ... after parsing
	err := cliparse.Resolve(cmd.Flags(), &cfg)

# Config Fields

  - DatabaseURL: storage file path (default: tally.db)
  - DatabaseType: sqlite, bolt, json or memory (default: sqlite)
  - RedirectDelay: ballot success message time (default: 1.5s)
  - RefreshDelay: dashboard refresh pause (default: 500ms)
  - WatchDebounce: storage file watch quiet period (default: 50ms)
  - LogLevel: debug, info, warn, error (default: info)
  - LogFormat: auto, text, json (default: auto)
  - EnvFile: dotenv file (default: .env)

# CLI Flags

	-d, --database-url    Storage file path
	-t, --database-type   Storage type
	--redirect-delay      e.g. 1500ms
	--refresh-delay       e.g. 500ms
	--watch-debounce      e.g. 50ms
	--log-level
	--log-format
	--env-file

# Environment Variables

Flags fall back to environment variables:

	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	REDIRECT_DELAY → --redirect-delay
	REFRESH_DELAY  → --refresh-delay
	WATCH_DEBOUNCE → --watch-debounce
	LOG_LEVEL      → --log-level
	LOG_FORMAT     → --log-format

The env file is loaded first and never overrides variables already set.
A missing env file is ignored. CLI flags take precedence over environment
variables.

# Validation

Resolve returns an error for an unknown storage type, an empty database URL
(except for memory storage), a negative delay, or an unknown log format.
*/
package cliparse
