// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the command tree.

# Command Registration

NewRootCommand creates the root command with every subcommand:

	root := router.NewRootCommand()
	err := root.ExecuteContext(ctx)

# Commands

	vote --id ID [--president N] [--vice-president N] [--treasurer N]
	     [--secretary N] [--pio N] [--no-dashboard]
	dashboard [--watch] [--clear]
	results [--json]
	pages [--out DIR]

Every command accepts the persistent configuration flags of cliparse.

# Lifecycle

Before any command runs, the configuration is resolved (flags, then
environment, then defaults) and the default slog logger is replaced.
Storage is opened by the handlers that need it and closed after the command
completes.

# Handler Initialization

The router creates handler instances sharing one handlers.App:

	votingHandler := handlers.NewVotingHandler(app)
	dashboardHandler := handlers.NewDashboardHandler(app)
	resultsHandler := handlers.NewResultsHandler(app)
	pagesHandler := handlers.NewPagesHandler()

Every RunE is wrapped with middleware.WithLogging.
*/
package router
