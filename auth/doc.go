// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles the locally-entered voter identifier.

There is no identity verification: a voter ID is any string of exactly seven
digits that has not voted yet. This package only knows the format; the
"already voted" check lives with the election record.

# Validation

	id, err := auth.ValidateVoterID("  1234567 ")
	// id == "1234567", err == nil

Errors:

  - ErrMissingVoterID: empty after trimming whitespace
  - ErrInvalidVoterID: anything but exactly seven ASCII digits

# Input Filtering

FilterVoterIDInput keeps digits only and caps the length at seven. Forms
apply it on every keystroke; it is a convenience, not a validation step.

	auth.FilterVoterIDInput("12a4-5678") // "1245678"

# Logging

MaskVoterID keeps only the last two digits so log lines do not carry full
identifiers:

	auth.MaskVoterID("1234567") // "*****67"
*/
package auth
