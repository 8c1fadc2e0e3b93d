// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the election record and the shared domain types.

# Election Record

ElectionRecord is the one persisted object:

	{"votes":{"presidents":{"Alex Johnson":0,...},...},"votedIds":[]}

Votes is an ordered Tallies value. Its JSON encoding keeps the order of
positions and candidates, so records written by the browser and by the
terminal read back identically.

# Positions

Position keys, in ballot display order:

	PositionPresident     = "presidents"
	PositionVicePresident = "vicePresidents"
	PositionTreasurer     = "treasurers"
	PositionSecretary     = "secretaries"
	PositionPIO           = "pios"

Label returns the ballot heading ("Vice Presidents"), TallyTitle the
dashboard heading ("Vice Presidential Tally").

# Roster

DefaultRoster seeds every new record. The candidate set of a position never
changes after the record is created; Tallies.Increment refuses unknown names.

# Other Types

  - Selections: position → chosen candidate
  - MessageKind: neutral, error, success, subtle
  - Page: navigation targets (ballot, dashboard)
  - Receipt: accepted ballot summary
  - Leader, ResultsSummary: read-only results export
*/
package models
