// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package console implements the ballot and dashboard surfaces for a terminal.

Form satisfies ballot.Form. Candidates are listed with numbers; a choice is
given by number or by name, case-insensitively:

	form := console.NewForm(os.Stdin, os.Stdout, isatty.IsTerminal(os.Stdin.Fd()))
	page := ballot.NewPage(store, form, cfg.RedirectDelay)
	page.Build(ctx)
	form.SetVoterID(id)
	form.Choose(models.PositionPresident, "2")
	form.Prompt(ctx)
	page.Submit(ctx)

Board satisfies dashboard.Board and prints each position as a table:

	Presidential Tally
	| Candidate     | Votes |
	|---------------|-------|
	| Alex Johnson  |     3 |

Messages and notes are printed one per line, prefixed by kind
("error: ", "ok: ", or an indent for subtle notes).
*/
package console
