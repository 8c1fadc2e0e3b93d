// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the command handlers of the terminal host.

# Handler Types

Each handler is a struct over a shared *App (config, storage area, store):

  - VotingHandler: `vote`, one ballot through a console form
  - DashboardHandler: `dashboard`, tallies drawn once or kept live
  - ResultsHandler: `results`, tallies and leaders as text or JSON
  - PagesHandler: `pages`, writes the browser documents

Handlers are created via constructor functions and bind their own flags:

	votingHandler := handlers.NewVotingHandler(app)
	votingHandler.BindFlags(cmd.Flags())
	cmd.RunE = votingHandler.SubmitBallot

# Pages

Every page a handler opens gets its own origin over the shared store, so a
dashboard is told about votes cast by a ballot in the same process and not
about its own writes.

# Voting Flow

	vote --id 1234567 --president 2 ...
	  → ballot built from the stored record
	  → flag choices applied (name or 1-based number)
	  → prompts for anything missing (terminal only)
	  → submit: rejected ballots print the reason and fail the command
	  → after the redirect delay the dashboard is drawn once

# Live Dashboard

`dashboard --watch` redraws on:

  - votes from other pages of this process (broker events)
  - votes from other processes, when storage is file-backed (fsnotify)
  - Enter on stdin

q then Enter quits.
*/
package handlers
