// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/danielhkuo/quickly-tally/dashboard"
	"github.com/danielhkuo/quickly-tally/models"
)

const clearScreen = "\033[H\033[2J"

// Board draws the dashboard as one table per position.
type Board struct {
	mu    sync.Mutex
	out   io.Writer
	clear bool
}

// NewBoard returns a board writing to out. With clear set every redraw
// starts from a blank screen.
func NewBoard(out io.Writer, clear bool) *Board {
	return &Board{out: out, clear: clear}
}

func (b *Board) ShowTallies(sections []dashboard.Section, ballotsCast int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.clear {
		fmt.Fprint(b.out, clearScreen)
	}

	for _, s := range sections {
		fmt.Fprintf(b.out, "\n%s\n", s.Title)

		table := tablewriter.NewWriter(b.out)
		table.SetHeader([]string{"Candidate", "Votes"})
		table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		table.SetCenterSeparator("|")
		table.SetAutoFormatHeaders(false)
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

		for _, row := range s.Rows {
			table.Append([]string{row.Name, humanize.Comma(int64(row.Count))})
		}
		table.Render()
	}

	fmt.Fprintf(b.out, "\nBallots cast: %s\n", humanize.Comma(int64(ballotsCast)))
}

func (b *Board) SetNote(msg string, kind models.MessageKind) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintln(b.out, formatMessage(msg, kind))
}
