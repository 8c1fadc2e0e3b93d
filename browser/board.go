// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

//go:build js && wasm

package browser

import (
	"syscall/js"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-tally/dashboard"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/web"
)

// Board is the tally area of dashboard.html.
type Board struct{}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) ShowTallies(sections []dashboard.Section, ballotsCast int) {
	root := byID(web.IDDashboard)
	root.Set("innerHTML", "")

	for _, s := range sections {
		section := create("section", "section")
		heading := create("h3", "")
		heading.Set("textContent", s.Title)
		section.Call("appendChild", heading)

		list := create("div", "candidates")
		for _, row := range s.Rows {
			list.Call("appendChild", tallyRow(row))
		}
		section.Call("appendChild", list)
		root.Call("appendChild", section)
	}

	total := create("p", "message subtle")
	total.Set("textContent", "Ballots cast: "+humanize.Comma(int64(ballotsCast)))
	root.Call("appendChild", total)
}

func tallyRow(row models.CandidateCount) js.Value {
	el := create("div", "candidate")

	label := create("div", "")
	style := label.Get("style")
	style.Set("display", "flex")
	style.Set("alignItems", "center")
	style.Set("gap", "10px")

	name := create("strong", "")
	name.Set("textContent", row.Name)
	label.Call("appendChild", name)

	badge := create("span", "btn")
	badge.Set("textContent", humanize.Comma(int64(row.Count)))

	el.Call("append", label, badge)
	return el
}

// SetNote shows a dashboard status note. Notes are subtle unless a kind says
// otherwise.
func (b *Board) SetNote(msg string, kind models.MessageKind) {
	if kind == models.KindNeutral {
		kind = models.KindSubtle
	}
	el := byID(web.IDUpdateNote)
	el.Set("textContent", msg)
	el.Set("className", messageClass(kind))
}
