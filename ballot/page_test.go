package ballot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/testutil"
)

func TestBuildUsesPersistedCandidates(t *testing.T) {
	ctx := context.Background()
	store, area := testutil.SetupTestStore(t)

	raw := `{"votes":{"pios":{"Zed":0},"presidents":{"P1":3,"P2":1},"vicePresidents":{"V":0},"treasurers":{"T":0},"secretaries":{"S":0}},"votedIds":[]}`
	require.NoError(t, area.SetItem(ctx, "electionData_v1", raw))

	form := testutil.NewFakeForm()
	page := ballot.NewPage(store, form, 0)
	page.Build(ctx)

	sections := form.Sections()
	require.Len(t, sections, 5)

	// display order is fixed, whatever the stored order
	for i, pos := range models.Positions {
		assert.Equal(t, pos, sections[i].Position)
		assert.Equal(t, pos.Label(), sections[i].Label)
	}
	assert.Equal(t, []string{"P1", "P2"}, sections[0].Candidates)
	assert.Equal(t, []string{"Zed"}, sections[4].Candidates)
}

func TestBuildOnEmptyStorage(t *testing.T) {
	ctx := context.Background()
	store, _ := testutil.SetupTestStore(t)

	form := testutil.NewFakeForm()
	ballot.NewPage(store, form, 0).Build(ctx)

	sections := form.Sections()
	require.Len(t, sections, len(models.DefaultRoster))
	for i, entry := range models.DefaultRoster {
		assert.Equal(t, entry.Candidates, sections[i].Candidates)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store, area := testutil.SetupTestStore(t)
	store.Read(ctx)
	before := testutil.RawRecord(t, area)

	form := testutil.NewFakeForm()
	for pos, name := range testutil.FullSelections() {
		form.Select(pos, name)
	}

	ballot.NewPage(store, form, 0).Clear()

	assert.Empty(t, form.Selections())
	assert.Equal(t, testutil.Message{Text: ballot.MessageCleared, Kind: models.KindNeutral}, form.LastMessage())
	assert.Equal(t, before, testutil.RawRecord(t, area))
}

func TestFilterVoterID(t *testing.T) {
	store, _ := testutil.SetupTestStore(t)
	form := testutil.NewFakeForm()
	page := ballot.NewPage(store, form, 0)

	form.SetVoterID("12a45b6789")
	page.FilterVoterID()
	assert.Equal(t, "1245678", form.VoterID())
}

func TestPageSubmitSuccess(t *testing.T) {
	ctx := context.Background()
	store, _ := testutil.SetupTestStore(t)

	form := testutil.NewFakeForm()
	page := ballot.NewPage(store, form, 20*time.Millisecond)
	page.Build(ctx)

	form.SetVoterID("1234567")
	for pos, name := range testutil.FullSelections() {
		form.Select(pos, name)
	}

	receipt, err := page.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, receipt.BallotsCast)

	// disabled and told before navigating
	assert.True(t, form.Disabled())
	assert.Equal(t, testutil.Message{Text: ballot.MessageSubmitted, Kind: models.KindSuccess}, form.LastMessage())
	select {
	case <-form.Navigated():
		t.Fatal("navigated before the redirect delay")
	default:
	}

	select {
	case page := <-form.Navigated():
		assert.Equal(t, models.PageDashboard, page)
	case <-time.After(2 * time.Second):
		t.Fatal("form never navigated to the dashboard")
	}
}

func TestPageSubmitRejected(t *testing.T) {
	ctx := context.Background()
	store, _ := testutil.SetupTestStore(t)

	form := testutil.NewFakeForm()
	page := ballot.NewPage(store, form, 0)
	form.SetVoterID("1234567")
	form.Select(models.PositionPresident, "Alex Johnson")

	_, err := page.Submit(ctx)
	require.ErrorIs(t, err, ballot.ErrIncompleteBallot)

	assert.False(t, form.Disabled())
	assert.Equal(t, testutil.Message{Text: "Please select a candidate for Vice Presidents.", Kind: models.KindError}, form.LastMessage())

	select {
	case <-form.Navigated():
		t.Fatal("rejected ballot must not navigate")
	case <-time.After(50 * time.Millisecond):
	}
}
