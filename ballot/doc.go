// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballot builds the ballot and submits votes.

# Submitting

Submit is the vote transaction:

	receipt, err := ballot.Submit(ctx, store, "1234567", selections)

Validation stops at the first failed rule, in this order, and the reason is
the text shown to the voter:

	empty ID               → "Please enter your ID number."
	not seven digits       → "ID number must be exactly 7 digits."
	ID already in votedIds → "This ID has already voted."
	position unselected    → "Please select a candidate for Treasurers."
	name not on the ballot → "Zed is not a candidate for PIOs."

Rejections are *ValidationError values wrapping auth.ErrMissingVoterID,
auth.ErrInvalidVoterID, ErrAlreadyVoted, ErrIncompleteBallot or
ErrUnknownCandidate. Nothing is written for a rejected ballot.

# Page

Page connects a Form (terminal or DOM) to the store:

  - Build: one exclusive-choice group per position, candidates taken from
    the persisted tally
  - Clear: unselect everything, neutral status message
  - FilterVoterID: digits only, at most seven, on every keystroke
  - Submit: on success disable the form, show the success message, and
    navigate to the dashboard after the redirect delay (1.5s by default)
*/
package ballot
