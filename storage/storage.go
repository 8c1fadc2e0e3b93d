// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"errors"
)

// Storage types accepted by Open
const (
	TypeSQLite = "sqlite"
	TypeBolt   = "bolt"
	TypeJSON   = "json"
	TypeMemory = "memory"
)

// Types lists every storage type Open understands.
var Types = []string{TypeSQLite, TypeBolt, TypeJSON, TypeMemory}

var ErrUnknownType = errors.New("unknown storage type")

// Area is a string key/value store with the contract of a browser's
// localStorage: SetItem replaces the whole value, GetItem reports whether the
// key exists.
type Area interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	Close() error
}

// FileBacked is implemented by areas that live in a single file other
// processes can write to.
type FileBacked interface {
	Path() string
}
