// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

//go:build !js

package storage

import (
	"context"
	"fmt"
)

// Open returns the area for the given storage type. path is ignored for the
// memory type. The file-backed drivers are not built for js.
func Open(ctx context.Context, storageType, path string) (Area, error) {
	switch storageType {
	case TypeSQLite:
		return OpenSQLite(ctx, path)
	case TypeBolt:
		return OpenBolt(path)
	case TypeJSON:
		return OpenJSON(path)
	case TypeMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, storageType)
	}
}
