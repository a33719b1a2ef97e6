/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "fmt"

// ComputeTiebreaks recomputes every contestant's Buchholz sum from the
// opponents' current match points. Results are not incremental: an
// opponent's later games change the sum.
func (r *Registry) ComputeTiebreaks() error {
	sums := make([]int, len(r.contestants))
	for idx, c := range r.contestants {
		for name := range c.History {
			opp, ok := r.byName[name]
			if !ok {
				return fmt.Errorf("%w: %q in history of %q",
					ErrUnknownContestant, name, c.Name)
			}
			sums[idx] += opp.MatchPoints()
		}
	}
	for idx, c := range r.contestants {
		c.Tiebreak = sums[idx]
	}

	return nil
}
