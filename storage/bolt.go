// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

//go:build !js

package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	boltBucketName  = "storage"
	boltLockTimeout = 5 * time.Second
)

// Bolt stores items in one bucket of a bbolt file. bbolt holds an exclusive
// file lock while open, so the file is opened per operation and several
// processes take turns.
type Bolt struct {
	path string
}

func OpenBolt(path string) (*Bolt, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	b := &Bolt{path: abs}
	err = b.with(false, func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketName))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bolt storage: %w", err)
	}
	return b, nil
}

func (b *Bolt) with(readOnly bool, fn func(tx *bolt.Tx) error) error {
	conn, err := bolt.Open(b.path, 0o600, &bolt.Options{Timeout: boltLockTimeout, ReadOnly: readOnly})
	if err != nil {
		return err
	}
	defer conn.Close()

	if readOnly {
		return conn.View(fn)
	}
	return conn.Update(fn)
}

func (b *Bolt) GetItem(_ context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := b.with(true, func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketName))
		if bucket == nil {
			return nil
		}
		// bytes from Get are only valid inside the transaction
		if v := bucket.Get([]byte(key)); v != nil {
			value, found = string(v), true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to read item %s: %w", key, err)
	}
	return value, found, nil
}

func (b *Bolt) SetItem(_ context.Context, key, value string) error {
	err := b.with(false, func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(boltBucketName))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to store item %s: %w", key, err)
	}
	return nil
}

func (b *Bolt) Path() string {
	return b.path
}

func (b *Bolt) Close() error {
	return nil
}
