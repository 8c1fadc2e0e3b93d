// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/notify"
	"github.com/danielhkuo/quickly-tally/storage"
	"github.com/danielhkuo/quickly-tally/tally"
)

// App holds what every command shares: the resolved config and, once
// opened, the storage area and the store over it.
type App struct {
	Config cliparse.Config
	Area   storage.Area
	Store  *tally.Store
}

func NewApp() *App {
	return &App{Config: cliparse.Defaults()}
}

// Open opens the configured storage area. It does nothing if a store is
// already set.
func (a *App) Open(ctx context.Context) error {
	if a.Store != nil {
		return nil
	}

	area, err := storage.Open(ctx, a.Config.DatabaseType, a.Config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	a.Area = area
	a.Store = tally.NewStore(area, notify.NewBroker(), models.DefaultRoster)

	slog.Debug("storage ready", "type", a.Config.DatabaseType, "path", a.Config.DatabaseURL)
	return nil
}

// Close releases the storage area.
func (a *App) Close() error {
	if a.Area == nil {
		return nil
	}
	err := a.Area.Close()
	a.Area = nil
	a.Store = nil
	return err
}

// page returns a store acting for a new page.
func (a *App) page() *tally.Store {
	return a.Store.WithOrigin(notify.NewOrigin())
}
