// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

//go:build js && wasm

package browser

import (
	"syscall/js"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/web"
)

// Form is the ballot form of index.html.
type Form struct{}

func NewForm() *Form {
	return &Form{}
}

// ShowSections replaces the form content with one radio group per section.
func (f *Form) ShowSections(sections []ballot.Section) {
	form := byID(web.IDVoteForm)
	form.Set("innerHTML", "")

	for _, s := range sections {
		section := create("section", "section")
		heading := create("h3", "")
		heading.Set("textContent", s.Label)
		section.Call("appendChild", heading)

		wrap := create("div", "candidates")
		for _, name := range s.Candidates {
			wrap.Call("appendChild", candidateRow(s.Position, name))
		}
		section.Call("appendChild", wrap)
		form.Call("appendChild", section)
	}
}

func candidateRow(pos models.Position, name string) js.Value {
	row := create("div", "candidate")
	label := create("label", "")

	input := create("input", "radio")
	input.Set("type", "radio")
	input.Set("name", string(pos))
	input.Set("value", name)

	span := create("span", "")
	span.Set("textContent", name)

	label.Call("append", input, span)
	row.Call("appendChild", label)
	return row
}

func (f *Form) VoterID() string {
	return byID(web.IDVoterID).Get("value").String()
}

func (f *Form) SetVoterID(id string) {
	byID(web.IDVoterID).Set("value", id)
}

func (f *Form) Selections() models.Selections {
	sel := models.Selections{}
	for _, pos := range models.Positions {
		checked := document().Call("querySelector", `input[name="`+string(pos)+`"]:checked`)
		if exists(checked) {
			sel[pos] = checked.Get("value").String()
		}
	}
	return sel
}

func radios() []js.Value {
	list := document().Call("querySelectorAll", `input[type="radio"]`)
	out := make([]js.Value, list.Length())
	for i := range out {
		out[i] = list.Index(i)
	}
	return out
}

func (f *Form) ClearSelections() {
	for _, r := range radios() {
		r.Set("checked", false)
	}
}

func (f *Form) SetMessage(msg string, kind models.MessageKind) {
	el := byID(web.IDMessage)
	el.Set("textContent", msg)
	el.Set("className", messageClass(kind))
}

// Disable locks the submit button, the ID field and every radio.
func (f *Form) Disable() {
	byID(web.IDSubmitVote).Set("disabled", true)
	byID(web.IDVoterID).Set("disabled", true)
	for _, r := range radios() {
		r.Set("disabled", true)
	}
}

func (f *Form) Navigate(page models.Page) {
	js.Global().Get("location").Set("href", string(page))
}
