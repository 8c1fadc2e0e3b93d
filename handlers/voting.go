// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/console"
	"github.com/danielhkuo/quickly-tally/dashboard"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/models"
)

// PositionFlag ties a vote flag to its position.
type PositionFlag struct {
	Name     string
	Position models.Position
}

// PositionFlags lists the vote flags in ballot order.
var PositionFlags = []PositionFlag{
	{Name: "president", Position: models.PositionPresident},
	{Name: "vice-president", Position: models.PositionVicePresident},
	{Name: "treasurer", Position: models.PositionTreasurer},
	{Name: "secretary", Position: models.PositionSecretary},
	{Name: "pio", Position: models.PositionPIO},
}

type VotingHandler struct {
	app         *App
	voterID     string
	choices     map[models.Position]*string
	noDashboard bool
}

func NewVotingHandler(app *App) *VotingHandler {
	choices := make(map[models.Position]*string, len(PositionFlags))
	for _, pf := range PositionFlags {
		choices[pf.Position] = new(string)
	}
	return &VotingHandler{app: app, choices: choices}
}

// BindFlags registers --id, one flag per position and --no-dashboard.
func (h *VotingHandler) BindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&h.voterID, "id", "", "Voter ID number (7 digits)")
	for _, pf := range PositionFlags {
		flags.StringVar(h.choices[pf.Position], pf.Name, "", "Choice for "+pf.Position.Label()+" (name or number)")
	}
	flags.BoolVar(&h.noDashboard, "no-dashboard", false, "Exit after voting instead of showing the dashboard")
}

// SubmitBallot handles `vote`.
// Builds the ballot, applies flag choices, prompts for anything missing on a
// terminal and submits. An accepted ballot is followed by the dashboard once
// the redirect delay has passed.
func (h *VotingHandler) SubmitBallot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := h.app.Open(ctx); err != nil {
		return err
	}

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	form := console.NewForm(in, out, middleware.IsTerminal(in))
	page := ballot.NewPage(h.app.page(), form, h.app.Config.RedirectDelay)
	page.Build(ctx)

	if h.voterID != "" {
		form.SetVoterID(h.voterID)
	}
	for _, pf := range PositionFlags {
		if v := *h.choices[pf.Position]; v != "" {
			form.Choose(pf.Position, v)
		}
	}
	if err := form.Prompt(ctx); err != nil {
		return err
	}

	if _, err := page.Submit(ctx); err != nil {
		return err
	}
	if h.noDashboard {
		return nil
	}

	select {
	case <-form.Navigated():
	case <-ctx.Done():
		return nil
	}

	board := console.NewBoard(out, false)
	dashboard.New(h.app.page(), board, h.app.Config.RefreshDelay).Render(ctx)
	return nil
}
