/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "fmt"

// Matchup is one game of the next round, in selection order.
type Matchup struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Round is the outcome of pairing.
type Round struct {
	// Target is the games-played count shared by everyone in this round.
	Target   int       `json:"target"`
	Matchups []Matchup `json:"matchups"`
	// Bye names the unmatched contestant; empty when there is none.
	Bye string `json:"bye,omitempty"`
}

func (rd *Round) HasBye() bool {
	return rd.Bye != ""
}

// Pair pairs the registry's enabled contestants without mutating the
// registry.
func (r *Registry) Pair() (*Round, error) {
	return Pair(r.Snapshot())
}

// Pair computes the next round from a snapshot. Only enabled contestants
// whose games-played count equals the minimum take part; everyone else still
// has a game pending in the current round.
func Pair(snapshot []Contestant) (*Round, error) {
	var enabled []*Contestant
	for idx := range snapshot {
		if snapshot[idx].Enabled {
			enabled = append(enabled, &snapshot[idx])
		}
	}
	if len(enabled) == 0 {
		return nil, ErrEmptyRoster
	}

	target := enabled[0].GamesPlayed()
	for _, c := range enabled[1:] {
		if gp := c.GamesPlayed(); gp < target {
			target = gp
		}
	}
	var eligible []*Contestant
	for _, c := range enabled {
		if c.GamesPlayed() == target {
			eligible = append(eligible, c)
		}
	}

	round := &Round{Target: target, Matchups: make([]Matchup, 0)}
	for len(eligible) > 1 {
		pool := append([]*Contestant(nil), eligible...)

		idx := selectionOrder(pool).best(eligible)
		selected := eligible[idx]
		eligible = removeIndex(eligible, idx)

		// candidateIdx[i] is the position of candidates[i] in eligible
		var candidates []*Contestant
		var candidateIdx []int
		for i, c := range eligible {
			if !selected.HasPlayed(c.Name) {
				candidates = append(candidates, c)
				candidateIdx = append(candidateIdx, i)
			}
		}
		if len(candidates) == 0 {
			return nil, fmt.Errorf("%w for %q", ErrNoAvailableOpponent,
				selected.Name)
		}
		best := opponentOrder(selected, pool).best(candidates)
		opponent := candidates[best]
		eligible = removeIndex(eligible, candidateIdx[best])

		round.Matchups = append(round.Matchups, Matchup{A: selected.Name,
			B: opponent.Name})
	}
	if len(eligible) == 1 {
		round.Bye = eligible[0].Name
	}

	return round, nil
}

func removeIndex(s []*Contestant, i int) []*Contestant {
	return append(s[:i], s[i+1:]...)
}
