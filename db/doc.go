// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the SQLite schema behind the default storage area.

# Schema Creation

CreateSchema initializes the single table:

	if err := db.CreateSchema(ctx, conn); err != nil {
		return err
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - storage_item: key/value pairs (key TEXT PRIMARY KEY, value TEXT)

The table plays the role of a browser's per-origin localStorage: the
election record is one JSON string under one well-known key. SelectItem and
UpsertItem are the only statements run against it.
*/
package db
