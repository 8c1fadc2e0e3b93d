// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the terminal entry point of Quickly Tally.

Quickly Tally is a student council ballot with a live tally dashboard. One
election record (key "electionData_v1") holds every count and every voter
ID that has voted. The same record is driven from the browser (cmd/tallyweb,
over localStorage) or from this command (over a local storage file).

# Running

	quickly-tally vote --id 1234567 --president 2 --vice-president 1 \
		--treasurer 1 --secretary 2 --pio 1
	quickly-tally dashboard --watch
	quickly-tally results --json
	quickly-tally pages --out ./site

Missing ballot values are prompted for when stdin is a terminal.

# Configuration

  - DATABASE_URL (-d): storage file (default: tally.db)
  - DATABASE_TYPE (-t): sqlite, bolt, json or memory (default: sqlite)
  - REDIRECT_DELAY, REFRESH_DELAY, WATCH_DEBOUNCE: page timing
  - LOG_LEVEL, LOG_FORMAT: logging

A .env file in the working directory is loaded first.

# Architecture

  - models: election record, positions, roster
  - auth: voter ID rules
  - storage, db: local storage areas (SQLite, bbolt, JSON file, memory)
  - tally: the store over the election record
  - notify: change events between pages and processes
  - ballot, dashboard: page logic over abstract surfaces
  - console, browser, web: terminal and DOM surfaces, embedded pages
  - handlers, router, middleware, cliparse: the command layer

See package documentation for each component.
*/
package main
