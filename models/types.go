// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"golang.org/x/exp/slices"
)

// Position is the persisted key of a contested position.
type Position string

// Position keys, in ballot display order
const (
	PositionPresident     Position = "presidents"
	PositionVicePresident Position = "vicePresidents"
	PositionTreasurer     Position = "treasurers"
	PositionSecretary     Position = "secretaries"
	PositionPIO           Position = "pios"
)

// Positions lists every contested position in the fixed display order.
var Positions = []Position{
	PositionPresident,
	PositionVicePresident,
	PositionTreasurer,
	PositionSecretary,
	PositionPIO,
}

var ballotLabels = map[Position]string{
	PositionPresident:     "Presidents",
	PositionVicePresident: "Vice Presidents",
	PositionTreasurer:     "Treasurers",
	PositionSecretary:     "Secretaries",
	PositionPIO:           "PIOs",
}

var tallyTitles = map[Position]string{
	PositionPresident:     "Presidential Tally",
	PositionVicePresident: "Vice Presidential Tally",
	PositionTreasurer:     "Treasurer Tally",
	PositionSecretary:     "Secretary Tally",
	PositionPIO:           "PIO Tally",
}

// Label returns the ballot section heading for the position.
func (p Position) Label() string {
	if l, ok := ballotLabels[p]; ok {
		return l
	}
	return string(p)
}

// TallyTitle returns the dashboard section heading for the position.
// Unknown keys are titled with the key itself.
func (p Position) TallyTitle() string {
	if t, ok := tallyTitles[p]; ok {
		return t
	}
	return string(p)
}

// Known reports whether p is one of the fixed positions.
func (p Position) Known() bool {
	return slices.Contains(Positions, p)
}

// RosterEntry is the candidate list for one position.
type RosterEntry struct {
	Position   Position
	Candidates []string
}

// Roster is the candidate list used when a record is first created.
type Roster []RosterEntry

// DefaultRoster is the candidate set every new election record starts with.
var DefaultRoster = Roster{
	{Position: PositionPresident, Candidates: []string{"Alex Johnson", "Taylor Rivera", "Chris Lee"}},
	{Position: PositionVicePresident, Candidates: []string{"Jordan Park", "Sam Patel"}},
	{Position: PositionTreasurer, Candidates: []string{"Casey Morgan", "Riley Chen"}},
	{Position: PositionSecretary, Candidates: []string{"Jamie Santos", "Avery Cruz"}},
	{Position: PositionPIO, Candidates: []string{"Morgan Diaz", "Skylar Reyes"}},
}

// Selections maps each position to the chosen candidate name.
// A missing or empty entry means nothing is selected.
type Selections map[Position]string

// Message kinds shown next to status text
type MessageKind string

const (
	KindNeutral MessageKind = ""
	KindError   MessageKind = "error"
	KindSuccess MessageKind = "success"
	KindSubtle  MessageKind = "subtle"
)

// Page names a view a form can navigate to.
type Page string

const (
	PageBallot    Page = "index.html"
	PageDashboard Page = "dashboard.html"
)

// Receipt describes an accepted ballot.
type Receipt struct {
	VoterID     string     `json:"voter_id"`
	Choices     Selections `json:"choices"`
	BallotsCast int        `json:"ballots_cast"`
}

// Leader is the best-placed candidate(s) of one position.
type Leader struct {
	Position Position `json:"position"`
	Title    string   `json:"title"`
	Names    []string `json:"names"`
	Count    int      `json:"count"`
}

// ResultsSummary is the read-only export printed by the results command.
type ResultsSummary struct {
	BallotsCast int            `json:"ballots_cast"`
	Leaders     []Leader       `json:"leaders"`
	Record      ElectionRecord `json:"record"`
}
