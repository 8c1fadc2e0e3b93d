// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Element ids shared by the documents and the browser surfaces
const (
	IDVoterID    = "voterId"
	IDVoteForm   = "voteForm"
	IDSubmitVote = "submitVote"
	IDClearForm  = "clearForm"
	IDMessage    = "message"
	IDYear       = "year"
	IDDashboard  = "dashboard"
	IDRefreshBtn = "refreshBtn"
	IDUpdateNote = "updateNote"
)

// Scripts both documents load. ExecScriptName is Go's wasm support file,
// copied from $(go env GOROOT)/lib/wasm. ScriptName starts WasmName, the
// GOOS=js GOARCH=wasm build of cmd/tallyweb.
const (
	ExecScriptName = "wasm_exec.js"
	ScriptName     = "tally.js"
	WasmName       = "tally.wasm"
)

//go:embed assets
var assets embed.FS

// Files returns the embedded documents, stylesheet and loader script.
func Files() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// WritePages copies every embedded file into dir, creating it if needed, and
// returns the written paths.
func WritePages(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	files := Files()
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	var written []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := fs.ReadFile(files, e.Name())
		if err != nil {
			return written, fmt.Errorf("failed to read %s: %w", e.Name(), err)
		}
		path := filepath.Join(dir, e.Name())
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
