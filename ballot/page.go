// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/danielhkuo/quickly-tally/auth"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/tally"
)

// DefaultRedirectDelay is how long the success message stays up before the
// form navigates to the dashboard.
const DefaultRedirectDelay = 1500 * time.Millisecond

// Status messages
const (
	MessageSubmitted = "Vote submitted successfully. Redirecting to dashboard..."
	MessageCleared   = "Selections cleared. You can vote now."
	MessageSaveError = "Your vote could not be saved. Please try again."
)

// Section is one exclusive-choice group of the ballot.
type Section struct {
	Position   models.Position
	Label      string
	Candidates []string
}

// Form is the input surface of the ballot page.
type Form interface {
	ShowSections(sections []Section)
	VoterID() string
	SetVoterID(id string)
	Selections() models.Selections
	ClearSelections()
	SetMessage(msg string, kind models.MessageKind)
	Disable()
	Navigate(page models.Page)
}

// Page drives one ballot form.
type Page struct {
	store         *tally.Store
	form          Form
	redirectDelay time.Duration
}

func NewPage(store *tally.Store, form Form, redirectDelay time.Duration) *Page {
	return &Page{store: store, form: form, redirectDelay: redirectDelay}
}

// Sections returns one group per position in display order, listing the
// candidates found in the persisted record.
func Sections(rec models.ElectionRecord) []Section {
	sections := make([]Section, 0, len(models.Positions))
	for _, pos := range models.Positions {
		pt, _ := rec.Votes.Get(pos)
		sections = append(sections, Section{
			Position:   pos,
			Label:      pos.Label(),
			Candidates: pt.Names(),
		})
	}
	return sections
}

// Build reads the store and renders the ballot.
func (p *Page) Build(ctx context.Context) []Section {
	sections := Sections(p.store.Read(ctx))
	p.form.ShowSections(sections)
	return sections
}

// Clear unselects every group. Stored data is not touched.
func (p *Page) Clear() {
	p.form.ClearSelections()
	p.form.SetMessage(MessageCleared, models.KindNeutral)
}

// FilterVoterID rewrites the voter ID field to digits only, at most seven.
func (p *Page) FilterVoterID() {
	raw := p.form.VoterID()
	if filtered := auth.FilterVoterIDInput(raw); filtered != raw {
		p.form.SetVoterID(filtered)
	}
}

// Submit records the ballot currently on the form. A rejected ballot shows
// its reason as an error. An accepted one disables the form, shows the
// success message and navigates to the dashboard after the redirect delay.
// The navigation timer cannot be cancelled.
func (p *Page) Submit(ctx context.Context) (models.Receipt, error) {
	receipt, err := Submit(ctx, p.store, p.form.VoterID(), p.form.Selections())
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			p.form.SetMessage(verr.Reason, models.KindError)
		} else {
			slog.Error("failed to submit ballot", "error", err)
			p.form.SetMessage(MessageSaveError, models.KindError)
		}
		return models.Receipt{}, err
	}

	p.form.Disable()
	p.form.SetMessage(MessageSubmitted, models.KindSuccess)

	time.AfterFunc(p.redirectDelay, func() {
		p.form.Navigate(models.PageDashboard)
	})
	return receipt, nil
}
