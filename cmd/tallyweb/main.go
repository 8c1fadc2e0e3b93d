//go:build js && wasm

package main

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/quickly-tally/browser"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/notify"
	"github.com/danielhkuo/quickly-tally/tally"
)

func main() {
	browser.OnReady(start)
	// the pages keep running on DOM callbacks after start returns
	select {}
}

func start() {
	ctx := context.Background()
	browser.SetYear()

	broker := notify.NewBroker()
	browser.ListenStorage(broker, tally.Key)
	store := tally.NewStore(browser.NewLocalStorage(), broker, models.DefaultRoster)

	switch browser.CurrentPage() {
	case models.PageDashboard:
		if err := browser.RunDashboard(ctx, store); err != nil {
			slog.Error("dashboard stopped", "error", err)
		}
	default:
		browser.RunBallot(ctx, store)
	}
}
