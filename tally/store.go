// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/notify"
	"github.com/danielhkuo/quickly-tally/storage"
)

// Key is the well-known storage key of the election record.
const Key = "electionData_v1"

// Store is the only way pages reach the election record. Each Store acts for
// one origin; stores derived with WithOrigin share the area, the broker and
// the update lock.
type Store struct {
	area   storage.Area
	broker *notify.Broker
	roster models.Roster
	origin string
	mu     *sync.Mutex
}

func NewStore(area storage.Area, broker *notify.Broker, roster models.Roster) *Store {
	return &Store{
		area:   area,
		broker: broker,
		roster: roster,
		origin: notify.NewOrigin(),
		mu:     &sync.Mutex{},
	}
}

// WithOrigin returns a store acting for another page.
func (s *Store) WithOrigin(origin string) *Store {
	c := *s
	c.origin = origin
	return &c
}

func (s *Store) Origin() string {
	return s.origin
}

func (s *Store) Broker() *notify.Broker {
	return s.broker
}

// Subscribe returns a subscription to record changes made by other origins.
func (s *Store) Subscribe() *notify.Subscription {
	return s.broker.Subscribe(Key, s.origin)
}

// Decode parses a persisted record and checks its structure.
func Decode(raw string) (models.ElectionRecord, error) {
	var rec models.ElectionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return models.ElectionRecord{}, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return models.ElectionRecord{}, err
	}
	if rec.VotedIDs == nil {
		rec.VotedIDs = []string{}
	}
	return rec, nil
}

// Read returns the current record. An absent or malformed record is replaced
// by a fresh one with every roster count at zero. When the area cannot be
// read, a fresh record is returned and nothing is written. Read itself never
// fails.
func (s *Store) Read(ctx context.Context) models.ElectionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load(ctx)
	if err != nil {
		slog.Warn("failed to read election record", "error", err)
		return models.NewElectionRecord(s.roster)
	}
	return rec
}

// load reads and decodes the record, persisting a fresh one when the key is
// absent or malformed. Only a failing area is an error; the stored record is
// never overwritten in that case.
func (s *Store) load(ctx context.Context) (models.ElectionRecord, error) {
	raw, ok, err := s.area.GetItem(ctx, Key)
	if err != nil {
		return models.ElectionRecord{}, err
	}
	if ok {
		rec, err := Decode(raw)
		if err == nil {
			return rec, nil
		}
		slog.Warn("discarding malformed election record", "error", err)
	}

	rec := models.NewElectionRecord(s.roster)
	if err := s.Write(ctx, rec); err != nil {
		slog.Warn("failed to persist new election record", "error", err)
	}
	return rec, nil
}

// Write replaces the persisted record and notifies the other pages.
func (s *Store) Write(ctx context.Context, rec models.ElectionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	old, _, err := s.area.GetItem(ctx, Key)
	if err != nil {
		old = ""
	}
	if err := s.area.SetItem(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("failed to write election record: %w", err)
	}

	s.broker.Publish(notify.Event{
		Key:      Key,
		OldValue: old,
		NewValue: string(data),
		Origin:   s.origin,
	})
	return nil
}

// Update runs one read-modify-write transaction. fn mutates the record; if it
// returns an error nothing is written. Updates are serialized within this
// process only; two processes updating at once race and the last write wins.
func (s *Store) Update(ctx context.Context, fn func(rec *models.ElectionRecord) error) (models.ElectionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load(ctx)
	if err != nil {
		return models.ElectionRecord{}, fmt.Errorf("failed to read election record: %w", err)
	}
	if err := fn(&rec); err != nil {
		return models.ElectionRecord{}, err
	}
	if err := s.Write(ctx, rec); err != nil {
		return models.ElectionRecord{}, err
	}
	return rec, nil
}
