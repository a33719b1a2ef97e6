/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "sort"

// Contestant holds the scoring state of one participant.
type Contestant struct {
	Name    string
	Wins    int
	Draws   int
	Losses  int
	Byes    int
	Enabled bool

	// History is the set of opponents already faced. It is kept symmetric
	// by ingestion and never contains Name.
	History map[string]struct{}

	// Tiebreak is the Buchholz sum, valid only after ComputeTiebreaks.
	Tiebreak int
}

func newContestant(name string) *Contestant {
	return &Contestant{
		Name:    name,
		Enabled: true,
		History: make(map[string]struct{}),
	}
}

// MatchPoints returns 2*wins + draws.
func (c *Contestant) MatchPoints() int {
	return winPoints*c.Wins + drawPoints*c.Draws
}

// GamesPlayed counts wins, draws and losses. A bye is recorded as a win and
// therefore counts as a game played.
func (c *Contestant) GamesPlayed() int {
	return c.Wins + c.Draws + c.Losses
}

// HasPlayed reports whether opponent appears in the contestant's history.
func (c *Contestant) HasPlayed(opponent string) bool {
	_, ok := c.History[opponent]
	return ok
}

// Opponents returns the history sorted by name.
func (c *Contestant) Opponents() []string {
	out := make([]string, 0, len(c.History))
	for name := range c.History {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

func (c *Contestant) record(o Outcome) {
	switch o {
	case OutcomeWin:
		c.Wins++
	case OutcomeDraw:
		c.Draws++
	case OutcomeLoss:
		c.Losses++
	}
}

// clone returns a deep copy so snapshots never alias registry state.
func (c *Contestant) clone() Contestant {
	cp := *c
	cp.History = make(map[string]struct{}, len(c.History))
	for name := range c.History {
		cp.History[name] = struct{}{}
	}

	return cp
}
