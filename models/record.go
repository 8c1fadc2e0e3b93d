// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// CandidateCount is one row of a position tally.
type CandidateCount struct {
	Name  string
	Count int
}

// PositionTally holds the counts of one position in insertion order.
type PositionTally struct {
	Position   Position
	Candidates []CandidateCount
}

// Index returns the index of the named candidate, or -1.
func (pt PositionTally) Index(name string) int {
	return slices.IndexFunc(pt.Candidates, func(c CandidateCount) bool { return c.Name == name })
}

// Names returns the candidate names in order.
func (pt PositionTally) Names() []string {
	names := make([]string, len(pt.Candidates))
	for i, c := range pt.Candidates {
		names[i] = c.Name
	}
	return names
}

// Tallies is the ordered "votes" object of an election record.
// JSON encoding keeps key order, so a record round-trips with positions and
// candidates in the order they were first written.
type Tallies []PositionTally

// Index returns the index of the position, or -1.
func (t Tallies) Index(p Position) int {
	return slices.IndexFunc(t, func(pt PositionTally) bool { return pt.Position == p })
}

// Get returns the tally for the position.
func (t Tallies) Get(p Position) (PositionTally, bool) {
	i := t.Index(p)
	if i < 0 {
		return PositionTally{}, false
	}
	return t[i], true
}

// Count returns the count of a candidate, or 0 when either is unknown.
func (t Tallies) Count(p Position, name string) int {
	pt, ok := t.Get(p)
	if !ok {
		return 0
	}
	if i := pt.Index(name); i >= 0 {
		return pt.Candidates[i].Count
	}
	return 0
}

// Increment adds one vote for the candidate. It never adds new positions or
// candidates.
func (t Tallies) Increment(p Position, name string) error {
	pi := t.Index(p)
	if pi < 0 {
		return fmt.Errorf("unknown position %q", p)
	}
	ci := t[pi].Index(name)
	if ci < 0 {
		return fmt.Errorf("unknown candidate %q for %s", name, p)
	}
	t[pi].Candidates[ci].Count++
	return nil
}

func (t Tallies) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pt := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(pt.Position))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(":{")
		for j, c := range pt.Candidates {
			if j > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(c.Name)
			if err != nil {
				return nil, err
			}
			buf.Write(name)
			fmt.Fprintf(&buf, ":%d", c.Count)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

var errNotObject = errors.New("expected JSON object")

func (t *Tallies) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*t = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("votes: %w", errNotObject)
	}

	var out Tallies
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		pos := Position(keyTok.(string))

		candidates, err := decodeCandidates(dec)
		if err != nil {
			return fmt.Errorf("votes.%s: %w", pos, err)
		}

		// a repeated key replaces the earlier value but keeps its slot
		if i := out.Index(pos); i >= 0 {
			out[i].Candidates = candidates
			continue
		}
		out = append(out, PositionTally{Position: pos, Candidates: candidates})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*t = out
	return nil
}

func decodeCandidates(dec *json.Decoder) ([]CandidateCount, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errNotObject
	}

	var candidates []CandidateCount
	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name := nameTok.(string)

		count, err := decodeCount(dec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		pt := PositionTally{Candidates: candidates}
		if i := pt.Index(name); i >= 0 {
			candidates[i].Count = count
			continue
		}
		candidates = append(candidates, CandidateCount{Name: name, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return candidates, nil
}

// maxCount is the largest integer a JavaScript number holds exactly.
const maxCount = 1 << 53

// decodeCount reads one count. Any JSON number with an integral value is
// accepted, so 1.0 and 1e2 read as 1 and 100. Sign is left to Validate.
func decodeCount(dec *json.Decoder) (int, error) {
	var n float64
	if err := dec.Decode(&n); err != nil {
		return 0, err
	}
	if n != math.Trunc(n) || math.Abs(n) > maxCount {
		return 0, fmt.Errorf("count %v is not an integer", n)
	}
	return int(n), nil
}

// ElectionRecord is the single persisted object shared by every page.
type ElectionRecord struct {
	Votes    Tallies  `json:"votes"`
	VotedIDs []string `json:"votedIds"`
}

// NewElectionRecord returns a record with every roster candidate at zero.
func NewElectionRecord(roster Roster) ElectionRecord {
	votes := make(Tallies, 0, len(roster))
	for _, entry := range roster {
		candidates := make([]CandidateCount, 0, len(entry.Candidates))
		for _, name := range entry.Candidates {
			candidates = append(candidates, CandidateCount{Name: name})
		}
		votes = append(votes, PositionTally{Position: entry.Position, Candidates: candidates})
	}
	return ElectionRecord{Votes: votes, VotedIDs: []string{}}
}

// HasVoted reports whether the voter ID is already recorded.
func (r ElectionRecord) HasVoted(voterID string) bool {
	return slices.Contains(r.VotedIDs, voterID)
}

// BallotsCast is the number of accepted ballots.
func (r ElectionRecord) BallotsCast() int {
	return len(r.VotedIDs)
}

// Validate checks the structural invariants of a decoded record: every fixed
// position present with at least one candidate and no negative count.
func (r ElectionRecord) Validate() error {
	if len(r.Votes) == 0 {
		return errors.New("record has no votes")
	}
	for _, pt := range r.Votes {
		for _, c := range pt.Candidates {
			if c.Count < 0 {
				return fmt.Errorf("negative count for %s/%s", pt.Position, c.Name)
			}
		}
	}
	for _, p := range Positions {
		pt, ok := r.Votes.Get(p)
		if !ok {
			return fmt.Errorf("position %s missing", p)
		}
		if len(pt.Candidates) == 0 {
			return fmt.Errorf("position %s has no candidates", p)
		}
	}
	return nil
}

// Leaders returns, per position in record order, the candidate(s) with the
// highest count. Ties list every tied name.
func (r ElectionRecord) Leaders() []Leader {
	leaders := make([]Leader, 0, len(r.Votes))
	for _, pt := range r.Votes {
		l := Leader{Position: pt.Position, Title: pt.Position.TallyTitle()}
		for _, c := range pt.Candidates {
			switch {
			case c.Count > l.Count || len(l.Names) == 0:
				l.Count = c.Count
				l.Names = []string{c.Name}
			case c.Count == l.Count:
				l.Names = append(l.Names, c.Name)
			}
		}
		leaders = append(leaders, l)
	}
	return leaders
}
