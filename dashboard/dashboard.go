// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/notify"
	"github.com/danielhkuo/quickly-tally/tally"
)

// DefaultRefreshDelay is the pause between announcing a refresh and
// redrawing the tallies.
const DefaultRefreshDelay = 500 * time.Millisecond

// Status notes
const (
	NoteRefreshing  = "Refreshing tallies..."
	NoteUpdated     = "Tallies updated."
	ReasonManual    = "Manual refresh triggered..."
	ReasonOtherPage = "Detected new votes from another page..."
)

// Section is the tally of one position.
type Section struct {
	Position models.Position
	Title    string
	Rows     []models.CandidateCount
}

// Board is the output surface of the dashboard.
type Board interface {
	ShowTallies(sections []Section, ballotsCast int)
	SetNote(msg string, kind models.MessageKind)
}

// Dashboard renders the record onto a board and keeps it current.
type Dashboard struct {
	store        *tally.Store
	board        Board
	refreshDelay time.Duration
	wg           sync.WaitGroup
}

func New(store *tally.Store, board Board, refreshDelay time.Duration) *Dashboard {
	return &Dashboard{store: store, board: board, refreshDelay: refreshDelay}
}

// Sections lists every position in record order with its rows.
func Sections(rec models.ElectionRecord) []Section {
	sections := make([]Section, 0, len(rec.Votes))
	for _, pt := range rec.Votes {
		rows := make([]models.CandidateCount, len(pt.Candidates))
		copy(rows, pt.Candidates)
		sections = append(sections, Section{
			Position: pt.Position,
			Title:    pt.Position.TallyTitle(),
			Rows:     rows,
		})
	}
	return sections
}

// Render reads the store and redraws every section.
func (d *Dashboard) Render(ctx context.Context) []Section {
	rec := d.store.Read(ctx)
	sections := Sections(rec)
	d.board.ShowTallies(sections, rec.BallotsCast())
	return sections
}

// RefreshWithDelay shows reason, waits the refresh delay, renders and shows
// the completion note. The wait is not cancellable.
func (d *Dashboard) RefreshWithDelay(ctx context.Context, reason string) {
	if reason == "" {
		reason = NoteRefreshing
	}
	d.board.SetNote(reason, models.KindSubtle)
	time.Sleep(d.refreshDelay)
	d.Render(ctx)
	d.board.SetNote(NoteUpdated, models.KindSubtle)
}

func (d *Dashboard) refreshAsync(ctx context.Context, reason string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.RefreshWithDelay(context.WithoutCancel(ctx), reason)
	}()
}

// Run renders once, then refreshes on every manual trigger and on every
// change event until ctx is done or events is closed. Overlapping refreshes
// are not coalesced. Run waits for refreshes in flight before returning.
func (d *Dashboard) Run(ctx context.Context, events <-chan notify.Event, manual <-chan struct{}) error {
	defer d.wg.Wait()

	d.Render(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil

		case _, ok := <-manual:
			if !ok {
				manual = nil
				continue
			}
			d.refreshAsync(ctx, ReasonManual)

		case e, ok := <-events:
			if !ok {
				return nil
			}
			if e.Key != tally.Key {
				continue
			}
			slog.Debug("record changed elsewhere", "origin", e.Origin)
			d.refreshAsync(ctx, ReasonOtherPage)
		}
	}
}
