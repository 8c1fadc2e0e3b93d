// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/handlers"
	"github.com/danielhkuo/quickly-tally/middleware"
)

func NewRootCommand() *cobra.Command {
	return newRootCommand(handlers.NewApp())
}

func newRootCommand(app *handlers.App) *cobra.Command {
	root := &cobra.Command{
		Use:           "quickly-tally",
		Short:         "Student council ballot and live tally dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cliparse.Resolve(cmd.Flags(), &app.Config); err != nil {
				return err
			}
			logger, err := middleware.NewLogger(cmd.ErrOrStderr(), app.Config.LogLevel, app.Config.LogFormat)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
	}
	cliparse.BindFlags(root.PersistentFlags(), &app.Config)

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(app)
	dashboardHandler := handlers.NewDashboardHandler(app)
	resultsHandler := handlers.NewResultsHandler(app)
	pagesHandler := handlers.NewPagesHandler()

	voteCmd := &cobra.Command{
		Use:   "vote",
		Short: "Cast one ballot, then show the dashboard",
		Args:  cobra.NoArgs,
		RunE:  middleware.WithLogging("vote", votingHandler.SubmitBallot),
	}
	votingHandler.BindFlags(voteCmd.Flags())

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the tallies, optionally live",
		Args:  cobra.NoArgs,
		RunE:  middleware.WithLogging("dashboard", dashboardHandler.ShowTallies),
	}
	dashboardHandler.BindFlags(dashboardCmd.Flags())

	resultsCmd := &cobra.Command{
		Use:   "results",
		Short: "Print the tallies and the leader of each position",
		Args:  cobra.NoArgs,
		RunE:  middleware.WithLogging("results", resultsHandler.GetResults),
	}
	resultsHandler.BindFlags(resultsCmd.Flags())

	pagesCmd := &cobra.Command{
		Use:   "pages",
		Short: "Write the browser ballot and dashboard pages",
		Args:  cobra.NoArgs,
		RunE:  middleware.WithLogging("pages", pagesHandler.WritePages),
	}
	pagesHandler.BindFlags(pagesCmd.Flags())

	root.AddCommand(voteCmd, dashboardCmd, resultsCmd, pagesCmd)
	return root
}
