// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

//go:build js && wasm

package browser

import (
	"strconv"
	"syscall/js"
	"time"

	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/web"
)

func document() js.Value {
	return js.Global().Get("document")
}

func byID(id string) js.Value {
	return document().Call("getElementById", id)
}

func exists(v js.Value) bool {
	return !v.IsNull() && !v.IsUndefined()
}

func create(tag, className string) js.Value {
	el := document().Call("createElement", tag)
	if className != "" {
		el.Set("className", className)
	}
	return el
}

// listen registers fn for event on target. fn runs in its own goroutine, so
// it may block. The listener lives as long as the page.
func listen(target js.Value, event string, fn func(e js.Value)) {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		e := js.Undefined()
		if len(args) > 0 {
			e = args[0]
		}
		go fn(e)
		return nil
	})
	target.Call("addEventListener", event, cb)
}

func on(id, event string, fn func()) {
	el := byID(id)
	if !exists(el) {
		return
	}
	listen(el, event, func(js.Value) { fn() })
}

func messageClass(kind models.MessageKind) string {
	if kind == models.KindNeutral {
		return "message"
	}
	return "message " + string(kind)
}

// SetYear fills the footer year.
func SetYear() {
	if y := byID(web.IDYear); exists(y) {
		y.Set("textContent", strconv.Itoa(time.Now().Year()))
	}
}

// CurrentPage reports which document is loaded, from the body's data-page
// attribute.
func CurrentPage() models.Page {
	body := document().Get("body")
	if !exists(body) {
		return models.PageBallot
	}
	if attr := body.Call("getAttribute", "data-page"); exists(attr) && attr.String() == "dashboard" {
		return models.PageDashboard
	}
	return models.PageBallot
}

// OnReady calls fn once the document is parsed.
func OnReady(fn func()) {
	if document().Get("readyState").String() != "loading" {
		go fn()
		return
	}
	listen(document(), "DOMContentLoaded", func(js.Value) { fn() })
}
