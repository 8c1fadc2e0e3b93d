// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// ExternalOrigin marks events that came from outside this process
// (another browser tab, another terminal).
const ExternalOrigin = "external"

// subscriptionBuffer is how many undelivered events a subscriber may hold
// before further events are dropped.
const subscriptionBuffer = 16

// Event describes one change of a storage key, like a browser StorageEvent.
type Event struct {
	Key      string
	OldValue string
	NewValue string
	Origin   string
}

// NewOrigin returns a fresh page identity.
func NewOrigin() string {
	return uuid.NewString()
}

// Subscription receives events for one key published by other origins.
type Subscription struct {
	id     uint64
	key    string
	origin string
	ch     chan Event
	broker *Broker
	once   sync.Once
}

// C returns the delivery channel. It is closed by Close.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

// Close unsubscribes and closes the channel. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.broker.remove(s.id)
	})
}

// Broker fans change events out to subscribers. Delivery is best-effort:
// a subscriber whose buffer is full misses the event.
type Broker struct {
	mu     sync.RWMutex
	subs   map[uint64]*Subscription
	nextID uint64
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[uint64]*Subscription)}
}

// Subscribe registers interest in key on behalf of origin. Events published
// by the same origin are never delivered back to it.
func (b *Broker) Subscribe(key, origin string) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{
		id:     b.nextID,
		key:    key,
		origin: origin,
		ch:     make(chan Event, subscriptionBuffer),
		broker: b,
	}
	b.subs[sub.id] = sub
	return sub
}

func (b *Broker) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if sub, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(sub.ch)
	}
}

// Publish delivers e to every subscriber of e.Key except those of e.Origin.
// It never blocks.
func (b *Broker) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if sub.key != e.Key || sub.origin == e.Origin {
			continue
		}
		select {
		case sub.ch <- e:
		default:
			slog.Debug("dropping change event", "key", e.Key, "origin", e.Origin)
		}
	}
}
