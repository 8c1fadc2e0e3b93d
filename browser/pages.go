// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

//go:build js && wasm

package browser

import (
	"context"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/dashboard"
	"github.com/danielhkuo/quickly-tally/tally"
	"github.com/danielhkuo/quickly-tally/web"
)

// RunBallot builds the ballot and wires its controls.
func RunBallot(ctx context.Context, store *tally.Store) {
	page := ballot.NewPage(store, NewForm(), ballot.DefaultRedirectDelay)
	page.Build(ctx)

	on(web.IDVoterID, "input", page.FilterVoterID)
	on(web.IDClearForm, "click", page.Clear)
	on(web.IDSubmitVote, "click", func() {
		// outcome is shown on the form
		_, _ = page.Submit(ctx)
	})
}

// RunDashboard renders the tallies and keeps them current until ctx is done.
func RunDashboard(ctx context.Context, store *tally.Store) error {
	sub := store.Subscribe()
	defer sub.Close()

	manual := make(chan struct{})
	on(web.IDRefreshBtn, "click", func() {
		select {
		case manual <- struct{}{}:
		case <-ctx.Done():
		}
	})

	d := dashboard.New(store, NewBoard(), dashboard.DefaultRefreshDelay)
	return d.Run(ctx, sub.C(), manual)
}
