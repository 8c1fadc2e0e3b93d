// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// VoterIDLength is the exact number of digits in a voter ID.
const VoterIDLength = 7

var (
	ErrMissingVoterID = errors.New("missing voter ID")
	ErrInvalidVoterID = errors.New("invalid voter ID format")
)

var voterIDPattern = regexp.MustCompile(`^[0-9]{7}$`)

// NormalizeVoterID trims surrounding whitespace as a browser's String.trim
// does. The trimmed form is what gets checked and recorded.
func NormalizeVoterID(raw string) string {
	return strings.TrimFunc(raw, isTrimSpace)
}

// isTrimSpace is the ECMAScript WhiteSpace and LineTerminator set. Unlike
// unicode.IsSpace it includes U+FEFF and leaves out U+0085.
func isTrimSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// ValidateVoterID returns the normalized ID, or ErrMissingVoterID when it is
// empty and ErrInvalidVoterID when it is not exactly seven ASCII digits.
func ValidateVoterID(raw string) (string, error) {
	id := NormalizeVoterID(raw)
	if id == "" {
		return "", ErrMissingVoterID
	}
	if !voterIDPattern.MatchString(id) {
		return id, ErrInvalidVoterID
	}
	return id, nil
}

// FilterVoterIDInput drops every non-digit and caps the result at seven
// characters. It is applied to input as it is typed and does not replace
// ValidateVoterID.
func FilterVoterIDInput(raw string) string {
	var b strings.Builder
	b.Grow(VoterIDLength)
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == VoterIDLength {
			break
		}
	}
	return b.String()
}

// MaskVoterID hides all but the last two digits, for log lines.
func MaskVoterID(id string) string {
	n := utf8.RuneCountInString(id)
	if n <= 2 {
		return strings.Repeat("*", n)
	}
	runes := []rune(id)
	return strings.Repeat("*", n-2) + string(runes[n-2:])
}
