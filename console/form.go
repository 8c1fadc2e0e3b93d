// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/danielhkuo/quickly-tally/auth"
	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/models"
)

var kindPrefix = map[models.MessageKind]string{
	models.KindNeutral: "",
	models.KindError:   "error: ",
	models.KindSuccess: "ok: ",
	models.KindSubtle:  "  ",
}

func formatMessage(msg string, kind models.MessageKind) string {
	return kindPrefix[kind] + msg
}

// Form is a ballot form on a terminal. Selections come from flags through
// Choose and, when the form is interactive, from prompts for whatever is
// still missing.
type Form struct {
	mu          sync.Mutex
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	sections    []ballot.Section
	voterID     string
	selections  models.Selections
	disabled    bool
	navigated   chan models.Page
}

func NewForm(in io.Reader, out io.Writer, interactive bool) *Form {
	return &Form{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
		selections:  models.Selections{},
		navigated:   make(chan models.Page, 1),
	}
}

// ShowSections prints the ballot with numbered candidates.
func (f *Form) ShowSections(sections []ballot.Section) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sections = sections
	for _, s := range sections {
		fmt.Fprintln(f.out, s.Label)
		for i, name := range s.Candidates {
			fmt.Fprintf(f.out, "  %d) %s\n", i+1, name)
		}
	}
}

func (f *Form) VoterID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.voterID
}

func (f *Form) SetVoterID(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.disabled {
		return
	}
	f.voterID = id
}

// Choose selects a candidate by name (case-insensitive) or by its 1-based
// number. A value matching neither is kept as typed so the ballot reports
// it. An empty value clears the selection.
func (f *Form) Choose(pos models.Position, raw string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.disabled {
		return
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		delete(f.selections, pos)
		return
	}
	f.selections[pos] = f.resolve(pos, raw)
}

func (f *Form) resolve(pos models.Position, raw string) string {
	for _, s := range f.sections {
		if s.Position != pos {
			continue
		}
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(s.Candidates) {
			return s.Candidates[n-1]
		}
		for _, name := range s.Candidates {
			if strings.EqualFold(name, raw) {
				return name
			}
		}
	}
	return raw
}

func (f *Form) Selections() models.Selections {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(models.Selections, len(f.selections))
	for k, v := range f.selections {
		out[k] = v
	}
	return out
}

func (f *Form) ClearSelections() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selections = models.Selections{}
}

func (f *Form) SetMessage(msg string, kind models.MessageKind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fmt.Fprintln(f.out, formatMessage(msg, kind))
}

// Disable freezes the form. Later edits are ignored.
func (f *Form) Disable() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disabled = true
}

func (f *Form) Navigate(page models.Page) {
	select {
	case f.navigated <- page:
	default:
	}
}

// Navigated delivers the page the form was sent to after a vote.
func (f *Form) Navigated() <-chan models.Page {
	return f.navigated
}

// Prompt asks for the voter ID and every unselected position. Typed IDs go
// through the same keystroke filter as the browser field. Prompt does nothing
// on a non-interactive form; running out of input ends prompting early.
func (f *Form) Prompt(ctx context.Context) error {
	if !f.interactive {
		return nil
	}

	if f.VoterID() == "" {
		line, err := f.ask(ctx, "ID number: ")
		if err != nil {
			return err
		}
		f.SetVoterID(auth.FilterVoterIDInput(line))
	}

	f.mu.Lock()
	sections := f.sections
	f.mu.Unlock()

	for _, s := range sections {
		if f.Selections()[s.Position] != "" {
			continue
		}
		line, err := f.ask(ctx, fmt.Sprintf("%s [1-%d]: ", s.Label, len(s.Candidates)))
		if err != nil {
			return err
		}
		f.Choose(s.Position, line)
	}
	return nil
}

func (f *Form) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(f.out, prompt)

	line, err := f.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", nil
		}
		err = nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
