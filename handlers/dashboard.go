// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danielhkuo/quickly-tally/console"
	"github.com/danielhkuo/quickly-tally/dashboard"
	"github.com/danielhkuo/quickly-tally/notify"
	"github.com/danielhkuo/quickly-tally/storage"
	"github.com/danielhkuo/quickly-tally/tally"
)

const watchHint = "Press Enter to refresh, q then Enter to quit."

type DashboardHandler struct {
	app   *App
	watch bool
	clear bool
}

func NewDashboardHandler(app *App) *DashboardHandler {
	return &DashboardHandler{app: app}
}

func (h *DashboardHandler) BindFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&h.watch, "watch", "w", false, "Keep the tallies live until quit")
	flags.BoolVar(&h.clear, "clear", false, "Clear the screen before every redraw")
}

// ShowTallies handles `dashboard`.
// Without --watch the tallies are drawn once. With it they are redrawn on
// every vote from another page and on every Enter; q quits. Votes from other
// processes are seen when the storage lives in a file.
func (h *DashboardHandler) ShowTallies(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := h.app.Open(ctx); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	store := h.app.page()
	d := dashboard.New(store, console.NewBoard(out, h.clear), h.app.Config.RefreshDelay)

	if !h.watch {
		d.Render(ctx)
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sub := store.Subscribe()
	defer sub.Close()

	if fb, ok := h.app.Area.(storage.FileBacked); ok {
		w := notify.NewFileWatcher(fb.Path(), tally.Key, h.app.Area, store.Broker(), h.app.Config.WatchDebounce)
		go func() {
			if err := w.Run(ctx); err != nil {
				slog.Warn("storage watch stopped", "error", err)
			}
		}()
	}

	manual := make(chan struct{})
	go readKeys(ctx, cmd.InOrStdin(), manual, cancel)

	fmt.Fprintln(out, watchHint)
	return d.Run(ctx, sub.C(), manual)
}

// readKeys turns input lines into manual refreshes. "q" calls quit.
// An input that can be closed, other than os.Stdin, is closed once ctx is
// done so the pending read returns. A read blocked on os.Stdin lasts until
// the process exits.
func readKeys(ctx context.Context, in io.Reader, manual chan<- struct{}, quit func()) {
	if c, ok := in.(io.Closer); ok && in != io.Reader(os.Stdin) {
		stop := context.AfterFunc(ctx, func() { c.Close() })
		defer stop()
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "q", "quit":
			quit()
			return
		default:
			select {
			case manual <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}
}
