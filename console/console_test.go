package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/dashboard"
	"github.com/danielhkuo/quickly-tally/models"
)

func testSections() []ballot.Section {
	return ballot.Sections(models.NewElectionRecord(models.DefaultRoster))
}

func TestFormShowSections(t *testing.T) {
	var out bytes.Buffer
	form := NewForm(strings.NewReader(""), &out, false)
	form.ShowSections(testSections())

	text := out.String()
	assert.Contains(t, text, "Presidents\n  1) Alex Johnson\n  2) Taylor Rivera\n  3) Chris Lee\n")
	assert.Contains(t, text, "PIOs\n  1) Morgan Diaz\n  2) Skylar Reyes\n")
}

func TestFormChoose(t *testing.T) {
	form := NewForm(strings.NewReader(""), &bytes.Buffer{}, false)
	form.ShowSections(testSections())

	tests := []struct {
		name string
		pos  models.Position
		raw  string
		want string
	}{
		{"by number", models.PositionPresident, "2", "Taylor Rivera"},
		{"by name", models.PositionTreasurer, "Riley Chen", "Riley Chen"},
		{"case insensitive", models.PositionSecretary, "  avery CRUZ ", "Avery Cruz"},
		{"number out of range kept", models.PositionPIO, "9", "9"},
		{"unknown name kept", models.PositionVicePresident, "Nobody", "Nobody"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form.Choose(tt.pos, tt.raw)
			assert.Equal(t, tt.want, form.Selections()[tt.pos])
		})
	}

	form.Choose(models.PositionPresident, " ")
	_, ok := form.Selections()[models.PositionPresident]
	assert.False(t, ok)
}

func TestFormDisable(t *testing.T) {
	form := NewForm(strings.NewReader(""), &bytes.Buffer{}, false)
	form.ShowSections(testSections())
	form.SetVoterID("1234567")
	form.Disable()

	form.SetVoterID("7654321")
	form.Choose(models.PositionPresident, "1")
	assert.Equal(t, "1234567", form.VoterID())
	assert.Empty(t, form.Selections())
}

func TestFormPromptFillsMissing(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("12a34-567890\n1\nsam patel\n2\n1\n")
	form := NewForm(in, &out, true)
	form.ShowSections(testSections())
	form.Choose(models.PositionPIO, "Skylar Reyes")

	require.NoError(t, form.Prompt(context.Background()))

	assert.Equal(t, "1234567", form.VoterID())
	assert.Equal(t, models.Selections{
		models.PositionPresident:     "Alex Johnson",
		models.PositionVicePresident: "Sam Patel",
		models.PositionTreasurer:     "Riley Chen",
		models.PositionSecretary:     "Jamie Santos",
		models.PositionPIO:           "Skylar Reyes",
	}, form.Selections())
	assert.Contains(t, out.String(), "ID number: ")
	assert.Contains(t, out.String(), "Vice Presidents [1-2]: ")
	assert.NotContains(t, out.String(), "PIOs [1-2]: ")
}

func TestFormPromptRunsOutOfInput(t *testing.T) {
	form := NewForm(strings.NewReader("1234567"), &bytes.Buffer{}, true)
	form.ShowSections(testSections())

	require.NoError(t, form.Prompt(context.Background()))
	assert.Equal(t, "1234567", form.VoterID())
	assert.Empty(t, form.Selections())
}

func TestFormPromptNonInteractive(t *testing.T) {
	var out bytes.Buffer
	form := NewForm(strings.NewReader("1234567\n"), &out, false)
	form.ShowSections(testSections())
	out.Reset()

	require.NoError(t, form.Prompt(context.Background()))
	assert.Empty(t, form.VoterID())
	assert.Empty(t, out.String())
}

func TestFormMessagesAndNavigate(t *testing.T) {
	var out bytes.Buffer
	form := NewForm(strings.NewReader(""), &out, false)

	form.SetMessage("ID number must be exactly 7 digits.", models.KindError)
	form.SetMessage(ballot.MessageSubmitted, models.KindSuccess)
	assert.Equal(t, "error: ID number must be exactly 7 digits.\nok: "+ballot.MessageSubmitted+"\n", out.String())

	form.Navigate(models.PageDashboard)
	form.Navigate(models.PageDashboard)
	assert.Equal(t, models.PageDashboard, <-form.Navigated())
}

func TestBoardShowTallies(t *testing.T) {
	var out bytes.Buffer
	board := NewBoard(&out, false)

	rec := models.NewElectionRecord(models.DefaultRoster)
	require.NoError(t, rec.Votes.Increment(models.PositionPresident, "Chris Lee"))
	rec.Votes[0].Candidates[0].Count = 1234
	rec.VotedIDs = []string{"1234567"}

	board.ShowTallies(dashboard.Sections(rec), rec.BallotsCast())

	text := out.String()
	assert.NotContains(t, text, clearScreen)
	for _, pos := range models.Positions {
		assert.Contains(t, text, pos.TallyTitle())
	}
	assert.Contains(t, text, "Candidate")
	assert.Contains(t, text, "Alex Johnson")
	assert.Contains(t, text, "1,234")
	assert.Contains(t, text, "Ballots cast: 1\n")
	assert.Less(t, strings.Index(text, "Presidential Tally"), strings.Index(text, "PIO Tally"))
}

func TestBoardClearAndNote(t *testing.T) {
	var out bytes.Buffer
	board := NewBoard(&out, true)

	board.ShowTallies(nil, 0)
	assert.True(t, strings.HasPrefix(out.String(), clearScreen))

	out.Reset()
	board.SetNote(dashboard.NoteUpdated, models.KindSubtle)
	assert.Equal(t, "  "+dashboard.NoteUpdated+"\n", out.String())
}
