// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danielhkuo/quickly-tally/web"
)

type PagesHandler struct {
	outDir string
}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

func (h *PagesHandler) BindFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&h.outDir, "out", "o", "site", "Directory to write the pages to")
}

// WritePages handles `pages`.
func (h *PagesHandler) WritePages(cmd *cobra.Command, args []string) error {
	written, err := web.WritePages(h.outDir)
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	slog.Info("pages written", "dir", h.outDir, "files", len(written))

	fmt.Fprintf(cmd.ErrOrStderr(), "Build the browser host next to them:\n  GOOS=js GOARCH=wasm go build -o %s ./cmd/tallyweb\n  cp \"$(go env GOROOT)/lib/wasm/%s\" %s\n",
		filepath.Join(h.outDir, web.WasmName), web.ExecScriptName, h.outDir)
	return nil
}
