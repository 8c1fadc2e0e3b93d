package handlers

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-tally/auth"
	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/testutil"
)

var fullBallotArgs = []string{
	"--president", "2",
	"--vice-president", "sam patel",
	"--treasurer", "Casey Morgan",
	"--secretary", "1",
	"--pio", "2",
}

func vote(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	h := NewVotingHandler(app)
	var out bytes.Buffer
	err := runCommand(context.Background(), h.SubmitBallot, h.BindFlags, nil, &out, args...)
	return out.String(), err
}

func TestSubmitBallot(t *testing.T) {
	app := setupTestApp(t)

	out, err := vote(t, app, append([]string{"--id", "1234567"}, fullBallotArgs...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "ok: "+ballot.MessageSubmitted)
	// the dashboard follows the redirect
	assert.Contains(t, out, "Presidential Tally")
	assert.Contains(t, out, "Ballots cast: 1")

	rec := app.Store.Read(context.Background())
	assert.Equal(t, 1, rec.Votes.Count(models.PositionPresident, "Taylor Rivera"))
	assert.Equal(t, 1, rec.Votes.Count(models.PositionVicePresident, "Sam Patel"))
	assert.Equal(t, 1, rec.Votes.Count(models.PositionTreasurer, "Casey Morgan"))
	assert.Equal(t, 1, rec.Votes.Count(models.PositionSecretary, "Jamie Santos"))
	assert.Equal(t, 1, rec.Votes.Count(models.PositionPIO, "Skylar Reyes"))
	assert.Equal(t, []string{"1234567"}, rec.VotedIDs)
}

func TestSubmitBallot_NoDashboard(t *testing.T) {
	app := setupTestApp(t)

	out, err := vote(t, app, append([]string{"--id", "1234567", "--no-dashboard"}, fullBallotArgs...)...)
	require.NoError(t, err)
	assert.Contains(t, out, ballot.MessageSubmitted)
	assert.NotContains(t, out, "Ballots cast")
}

func TestSubmitBallot_Rejected(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing id",
			args:    fullBallotArgs,
			wantErr: auth.ErrMissingVoterID,
			wantMsg: "error: Please enter your ID number.",
		},
		{
			name:    "non-digit id",
			args:    append([]string{"--id", "12a4567"}, fullBallotArgs...),
			wantErr: auth.ErrInvalidVoterID,
			wantMsg: "error: ID number must be exactly 7 digits.",
		},
		{
			name:    "incomplete",
			args:    []string{"--id", "1234567", "--president", "1"},
			wantErr: ballot.ErrIncompleteBallot,
			wantMsg: "error: Please select a candidate for Vice Presidents.",
		},
		{
			name:    "unknown candidate",
			args:    append([]string{"--id", "1234567"}, append(fullBallotArgs, "--pio", "Zed")...),
			wantErr: ballot.ErrUnknownCandidate,
			wantMsg: "error: Zed is not a candidate for PIOs.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := setupTestApp(t)
			app.Store.Read(context.Background())
			before := testutil.RawRecord(t, app.Area)

			out, err := vote(t, app, tc.args...)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Contains(t, out, tc.wantMsg)
			assert.Equal(t, before, testutil.RawRecord(t, app.Area))
		})
	}
}

func TestSubmitBallot_DuplicateID(t *testing.T) {
	app := setupTestApp(t)
	args := append([]string{"--id", "1234567", "--no-dashboard"}, fullBallotArgs...)

	_, err := vote(t, app, args...)
	require.NoError(t, err)
	before := testutil.RawRecord(t, app.Area)

	out, err := vote(t, app, args...)
	require.ErrorIs(t, err, ballot.ErrAlreadyVoted)
	assert.Contains(t, out, "error: This ID has already voted.")
	assert.Equal(t, before, testutil.RawRecord(t, app.Area))
}
