// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/quickly-tally/auth"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/tally"
)

var (
	ErrAlreadyVoted     = errors.New("voter ID has already voted")
	ErrIncompleteBallot = errors.New("ballot is incomplete")
	ErrUnknownCandidate = errors.New("unknown candidate")
)

// ValidationError is a rejected ballot. Reason is the message shown to the
// voter; Err is one of the sentinel errors.
type ValidationError struct {
	Err      error
	Reason   string
	Position models.Position
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks a ballot against the record. Rules run in order and the
// first failure is returned:
//
//  1. the trimmed voter ID is not empty
//  2. it is exactly seven digits
//  3. it has not voted yet
//  4. every position has a selection
//  5. every selection names a candidate of that position
//
// On success the trimmed voter ID is returned.
func Validate(voterID string, selections models.Selections, rec models.ElectionRecord) (string, error) {
	id, err := auth.ValidateVoterID(voterID)
	switch {
	case errors.Is(err, auth.ErrMissingVoterID):
		return "", &ValidationError{Err: err, Reason: "Please enter your ID number."}
	case errors.Is(err, auth.ErrInvalidVoterID):
		return "", &ValidationError{Err: err, Reason: "ID number must be exactly 7 digits."}
	}

	if rec.HasVoted(id) {
		return "", &ValidationError{Err: ErrAlreadyVoted, Reason: "This ID has already voted."}
	}

	for _, pos := range models.Positions {
		if selections[pos] == "" {
			return "", &ValidationError{
				Err:      ErrIncompleteBallot,
				Reason:   fmt.Sprintf("Please select a candidate for %s.", pos.Label()),
				Position: pos,
			}
		}
	}

	for _, pos := range models.Positions {
		name := selections[pos]
		pt, ok := rec.Votes.Get(pos)
		if !ok || pt.Index(name) < 0 {
			return "", &ValidationError{
				Err:      ErrUnknownCandidate,
				Reason:   fmt.Sprintf("%s is not a candidate for %s.", name, pos.Label()),
				Position: pos,
			}
		}
	}

	return id, nil
}

// Submit validates the ballot and, if it is accepted, records it in one
// write: one vote per position and the voter ID appended to votedIds.
// A rejected ballot returns a *ValidationError and changes nothing.
func Submit(ctx context.Context, store *tally.Store, voterID string, selections models.Selections) (models.Receipt, error) {
	var receipt models.Receipt

	rec, err := store.Update(ctx, func(rec *models.ElectionRecord) error {
		id, err := Validate(voterID, selections, *rec)
		if err != nil {
			return err
		}

		choices := make(models.Selections, len(models.Positions))
		for _, pos := range models.Positions {
			if err := rec.Votes.Increment(pos, selections[pos]); err != nil {
				return err
			}
			choices[pos] = selections[pos]
		}
		rec.VotedIDs = append(rec.VotedIDs, id)

		receipt = models.Receipt{VoterID: id, Choices: choices}
		return nil
	})
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			slog.Info("ballot rejected", "reason", verr.Reason)
			return models.Receipt{}, err
		}
		return models.Receipt{}, fmt.Errorf("failed to record ballot: %w", err)
	}

	receipt.BallotsCast = rec.BallotsCast()
	slog.Info("ballot submitted", "voter", auth.MaskVoterID(receipt.VoterID), "ballots_cast", receipt.BallotsCast)
	return receipt, nil
}
