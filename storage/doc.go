// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage provides local key/value storage areas.

An Area behaves like a browser's localStorage: string keys, string values,
whole-value replacement on SetItem. The election record is one JSON string
stored under one key.

# Implementations

  - SQLite (default): storage_item table in a SQLite file (modernc.org/sqlite)
  - Bolt: one bucket in a bbolt file, opened per operation
  - JSONFile: one JSON object on disk, written temp-then-rename
  - Memory: process-local map

Open picks one by name:

	area, err := storage.Open(ctx, storage.TypeSQLite, "tally.db")

File-backed areas implement FileBacked so a notify.FileWatcher can report
writes made by other processes.

SQLite, Bolt and Open are not built for GOOS=js. The browser host brings its
own Area over window.localStorage.

# Concurrency

Every implementation is safe for concurrent use within a process. Between
processes only the file formats' own locking applies; there is no
compare-and-swap, so two processes updating the same key race and the last
writer wins.
*/
package storage
