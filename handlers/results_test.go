package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/testutil"
)

func seedVotes(t *testing.T, app *App) {
	t.Helper()
	ctx := context.Background()

	second := testutil.FullSelections()
	second[models.PositionPresident] = "Chris Lee"

	for id, sel := range map[string]models.Selections{
		"1111111": testutil.FullSelections(),
		"2222222": testutil.FullSelections(),
		"3333333": second,
	} {
		_, err := ballot.Submit(ctx, app.Store, id, sel)
		require.NoError(t, err)
	}
}

func TestGetResults(t *testing.T) {
	app := setupTestApp(t)
	seedVotes(t, app)
	h := NewResultsHandler(app)

	var out bytes.Buffer
	require.NoError(t, runCommand(context.Background(), h.GetResults, h.BindFlags, nil, &out))

	text := out.String()
	assert.Contains(t, text, "Ballots cast: 3")
	assert.Contains(t, text, "Leaders")
	assert.Contains(t, text, "Presidential Tally: Alex Johnson (2 votes)")
	assert.Contains(t, text, "PIO Tally: Morgan Diaz (3 votes)")
}

func TestGetResults_Ties(t *testing.T) {
	app := setupTestApp(t)
	h := NewResultsHandler(app)

	var out bytes.Buffer
	require.NoError(t, runCommand(context.Background(), h.GetResults, h.BindFlags, nil, &out))
	assert.Contains(t, out.String(), "Vice Presidential Tally: Jordan Park / Sam Patel (0 votes)")
}

func TestGetResults_JSON(t *testing.T) {
	app := setupTestApp(t)
	seedVotes(t, app)
	h := NewResultsHandler(app)

	var out bytes.Buffer
	require.NoError(t, runCommand(context.Background(), h.GetResults, h.BindFlags, nil, &out, "--json"))

	var summary models.ResultsSummary
	require.NoError(t, json.Unmarshal(out.Bytes(), &summary))

	assert.Equal(t, 3, summary.BallotsCast)
	require.Len(t, summary.Leaders, len(models.Positions))
	assert.Equal(t, models.Leader{
		Position: models.PositionPresident,
		Title:    "Presidential Tally",
		Names:    []string{"Alex Johnson"},
		Count:    2,
	}, summary.Leaders[0])
	assert.Equal(t, 1, summary.Record.Votes.Count(models.PositionPresident, "Chris Lee"))
	assert.ElementsMatch(t, []string{"1111111", "2222222", "3333333"}, summary.Record.VotedIDs)
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "vote", plural(1, "vote", "votes"))
	assert.Equal(t, "votes", plural(0, "vote", "votes"))
	assert.Equal(t, "votes", plural(2, "vote", "votes"))
}
