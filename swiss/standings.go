/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "sort"

// Standing is a read-only view of a contestant for rendering.
type Standing struct {
	Name        string `json:"name"`
	MatchPoints int    `json:"matchPoints"`
	GamesPlayed int    `json:"gamesPlayed"`
	Wins        int    `json:"wins"`
	Draws       int    `json:"draws"`
	Losses      int    `json:"losses"`
	Byes        int    `json:"byes"`
	Tiebreak    int    `json:"tiebreak"`
	Enabled     bool   `json:"enabled"`
}

// Score is the conventional chess score, one point per win.
func (s Standing) Score() float64 {
	return float64(s.MatchPoints) / 2.0
}

// Standings returns every contestant split into enabled and disabled groups,
// each sorted by match points descending, games played ascending and
// tiebreak descending. Full ties keep registry order.
func (r *Registry) Standings() (enabled []Standing, disabled []Standing) {
	sorted := r.Contestants()
	order := standingsOrder()
	sort.SliceStable(sorted, func(i, j int) bool {
		return order.compare(sorted[i], sorted[j]) < 0
	})

	enabled = make([]Standing, 0, len(sorted))
	disabled = make([]Standing, 0)
	for _, c := range sorted {
		s := Standing{
			Name:        c.Name,
			MatchPoints: c.MatchPoints(),
			GamesPlayed: c.GamesPlayed(),
			Wins:        c.Wins,
			Draws:       c.Draws,
			Losses:      c.Losses,
			Byes:        c.Byes,
			Tiebreak:    c.Tiebreak,
			Enabled:     c.Enabled,
		}
		if c.Enabled {
			enabled = append(enabled, s)
		} else {
			disabled = append(disabled, s)
		}
	}

	return enabled, disabled
}
