// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danielhkuo/quickly-tally/console"
	"github.com/danielhkuo/quickly-tally/dashboard"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/models"
)

type ResultsHandler struct {
	app    *App
	asJSON bool
}

func NewResultsHandler(app *App) *ResultsHandler {
	return &ResultsHandler{app: app}
}

func (h *ResultsHandler) BindFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&h.asJSON, "json", false, "Print the record and leaders as JSON")
}

// Summary reads the record and computes the leaders of every position.
func (h *ResultsHandler) Summary(cmd *cobra.Command) (models.ResultsSummary, error) {
	ctx := cmd.Context()
	if err := h.app.Open(ctx); err != nil {
		return models.ResultsSummary{}, err
	}

	rec := h.app.page().Read(ctx)
	return models.ResultsSummary{
		BallotsCast: rec.BallotsCast(),
		Leaders:     rec.Leaders(),
		Record:      rec,
	}, nil
}

// GetResults handles `results`.
// Prints every tally followed by the leader of each position. Ties list
// every tied candidate.
func (h *ResultsHandler) GetResults(cmd *cobra.Command, args []string) error {
	summary, err := h.Summary(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if h.asJSON {
		return middleware.JSONResponse(out, summary)
	}

	console.NewBoard(out, false).ShowTallies(dashboard.Sections(summary.Record), summary.BallotsCast)

	fmt.Fprintln(out, "\nLeaders")
	for _, l := range summary.Leaders {
		names := strings.Join(l.Names, " / ")
		if names == "" {
			names = "-"
		}
		fmt.Fprintf(out, "  %s: %s (%s %s)\n", l.Title, names, humanize.Comma(int64(l.Count)), plural(l.Count, "vote", "votes"))
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
