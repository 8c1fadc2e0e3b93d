// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package web embeds the browser documents.

	index.html      ballot page
	dashboard.html  live tallies
	styles.css      shared stylesheet
	tally.js        starts tally.wasm

Both documents load ExecScriptName and then ScriptName, which runs WasmName.
The wasm program picks the page to drive from the body's data-page
attribute. The ID constants name the elements the browser surfaces look up.

WritePages copies the embedded files to a directory. The wasm build and
Go's wasm_exec.js go next to them:

	quickly-tally pages --out ./site
	GOOS=js GOARCH=wasm go build -o ./site/tally.wasm ./cmd/tallyweb
	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" ./site/

Browsers refuse to fetch wasm from file:// URLs, so serve the directory
over HTTP.
*/
package web
