// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/dashboard"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/notify"
	"github.com/danielhkuo/quickly-tally/storage"
	"github.com/danielhkuo/quickly-tally/tally"
)

// SetupTestStore returns a store over a fresh in-memory area.
func SetupTestStore(t *testing.T) (*tally.Store, storage.Area) {
	t.Helper()
	area := storage.NewMemory()
	return tally.NewStore(area, notify.NewBroker(), models.DefaultRoster), area
}

// SetupSQLiteStore returns a store over a SQLite file in a temp directory.
func SetupSQLiteStore(t *testing.T) (*tally.Store, *storage.SQLite) {
	t.Helper()

	area, err := storage.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "tally.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { area.Close() })

	return tally.NewStore(area, notify.NewBroker(), models.DefaultRoster), area
}

// RawRecord returns the persisted record string, or "" if absent.
func RawRecord(t *testing.T, area storage.Area) string {
	t.Helper()
	raw, _, err := area.GetItem(context.Background(), tally.Key)
	if err != nil {
		t.Fatalf("Failed to read record: %v", err)
	}
	return raw
}

// FullSelections picks the first default candidate of every position.
func FullSelections() models.Selections {
	sel := models.Selections{}
	for _, entry := range models.DefaultRoster {
		sel[entry.Position] = entry.Candidates[0]
	}
	return sel
}

// Message is one status message shown on a surface.
type Message struct {
	Text string
	Kind models.MessageKind
}

// FakeForm records everything a ballot page does to its form.
type FakeForm struct {
	mu         sync.Mutex
	sections   []ballot.Section
	voterID    string
	selections models.Selections
	messages   []Message
	disabled   bool
	navigated  chan models.Page
}

func NewFakeForm() *FakeForm {
	return &FakeForm{
		selections: models.Selections{},
		navigated:  make(chan models.Page, 1),
	}
}

func (f *FakeForm) ShowSections(sections []ballot.Section) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sections = sections
}

func (f *FakeForm) VoterID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.voterID
}

func (f *FakeForm) SetVoterID(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.voterID = id
}

func (f *FakeForm) Select(pos models.Position, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selections[pos] = name
}

func (f *FakeForm) Selections() models.Selections {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(models.Selections, len(f.selections))
	for k, v := range f.selections {
		out[k] = v
	}
	return out
}

func (f *FakeForm) ClearSelections() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selections = models.Selections{}
}

func (f *FakeForm) SetMessage(msg string, kind models.MessageKind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, Message{Text: msg, Kind: kind})
}

func (f *FakeForm) Disable() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disabled = true
}

func (f *FakeForm) Navigate(page models.Page) {
	f.navigated <- page
}

// Navigated delivers the page the form navigated to.
func (f *FakeForm) Navigated() <-chan models.Page {
	return f.navigated
}

func (f *FakeForm) Sections() []ballot.Section {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sections
}

func (f *FakeForm) Messages() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Message(nil), f.messages...)
}

// LastMessage returns the most recent message, or a zero Message.
func (f *FakeForm) LastMessage() Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		return Message{}
	}
	return f.messages[len(f.messages)-1]
}

func (f *FakeForm) Disabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.disabled
}

// Frame is one ShowTallies call.
type Frame struct {
	Sections    []dashboard.Section
	BallotsCast int
}

// FakeBoard records dashboard output.
type FakeBoard struct {
	mu     sync.Mutex
	frames []Frame
	notes  []Message
	noted  chan Message
}

func NewFakeBoard() *FakeBoard {
	return &FakeBoard{noted: make(chan Message, 64)}
}

func (b *FakeBoard) ShowTallies(sections []dashboard.Section, ballotsCast int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frames = append(b.frames, Frame{Sections: sections, BallotsCast: ballotsCast})
}

func (b *FakeBoard) SetNote(msg string, kind models.MessageKind) {
	b.mu.Lock()
	b.notes = append(b.notes, Message{Text: msg, Kind: kind})
	b.mu.Unlock()

	select {
	case b.noted <- Message{Text: msg, Kind: kind}:
	default:
	}
}

// Noted delivers notes as they are set.
func (b *FakeBoard) Noted() <-chan Message {
	return b.noted
}

func (b *FakeBoard) Frames() []Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Frame(nil), b.frames...)
}

func (b *FakeBoard) Notes() []Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Message(nil), b.notes...)
}
