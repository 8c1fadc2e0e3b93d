// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

//go:build js && wasm

/*
Package browser is the browser host, built for GOOS=js GOARCH=wasm over
syscall/js.

LocalStorage adapts window.localStorage to storage.Area and ListenStorage
bridges the window's storage events into a notify.Broker, so a dashboard
tab refreshes when a ballot tab records a vote. Form and Board draw onto the
elements named by the web package's ID constants.

Every DOM callback runs its handler in a goroutine. A wasm callback that
blocks stalls the page, and the handlers wait on the refresh and redirect
timers.
*/
package browser
