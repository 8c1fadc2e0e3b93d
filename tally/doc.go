// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally is the Tally Store: read/write access to the one persisted
election record.

	store := tally.NewStore(area, broker, models.DefaultRoster)
	rec := store.Read(ctx)

# Read

Read never fails. The record is created lazily: when the key is absent, or
holds data that does not decode into a valid record, a zeroed record over
the roster is written and returned. Problems are logged, never surfaced.
When the area itself cannot be read, Read returns a zeroed record and writes
nothing, and Update fails.

# Write

Write replaces the whole record under Key ("electionData_v1") and publishes
a notify.Event under the store's origin, so every other page subscribed to
the key is told about the change and the writer is not.

# Update

Update is the vote transaction: read, mutate, write. It holds a lock shared
by every store derived from the same NewStore call. There is no locking
between processes.

# Origins

A store acts for one page. WithOrigin derives a store for another page over
the same area, broker and lock:

	ballotStore := store.WithOrigin(notify.NewOrigin())
	dashStore := store.WithOrigin(notify.NewOrigin())
*/
package tally
