/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

type direction int

const (
	ascending direction = iota
	descending
)

// orderKey is one level of a multi-level ordering.
type orderKey struct {
	name string
	key  func(c *Contestant) int
	dir  direction
}

// ordering evaluates its keys in sequence; the first key that differs
// decides.
type ordering []orderKey

// compare returns a negative number when a ranks ahead of b, a positive one
// when b ranks ahead and 0 when every key ties.
func (o ordering) compare(a, b *Contestant) int {
	for _, k := range o {
		ka, kb := k.key(a), k.key(b)
		if ka == kb {
			continue
		}
		if (ka < kb) == (k.dir == ascending) {
			return -1
		}
		return 1
	}

	return 0
}

// best returns the index of the top ranked candidate or -1 when there are
// none. The earliest candidate wins a full tie.
func (o ordering) best(cands []*Contestant) int {
	top := -1
	for idx, c := range cands {
		if top == -1 || o.compare(c, cands[top]) < 0 {
			top = idx
		}
	}

	return top
}

// remainingOpponents counts the members of pool other than c that c has not
// played yet.
func remainingOpponents(c *Contestant, pool []*Contestant) int {
	n := 0
	for _, p := range pool {
		if p.Name != c.Name && !c.HasPlayed(p.Name) {
			n++
		}
	}

	return n
}

// selectionOrder picks who gets paired next: contestants who already sat out
// first, then the most constrained, then the highest scored.
func selectionOrder(pool []*Contestant) ordering {
	return ordering{
		{
			name: "byes",
			key:  func(c *Contestant) int { return c.Byes },
			dir:  descending,
		},
		{
			name: "remaining opponents",
			key: func(c *Contestant) int {
				return remainingOpponents(c, pool)
			},
			dir: ascending,
		},
		{
			name: "match points",
			key:  func(c *Contestant) int { return c.MatchPoints() },
			dir:  descending,
		},
	}
}

// opponentOrder ranks legal opponents for selected: closest score first,
// then the most constrained.
func opponentOrder(selected *Contestant, pool []*Contestant) ordering {
	return ordering{
		{
			name: "score difference",
			key: func(c *Contestant) int {
				return absInt(selected.MatchPoints() - c.MatchPoints())
			},
			dir: ascending,
		},
		{
			name: "remaining opponents",
			key: func(c *Contestant) int {
				return remainingOpponents(c, pool)
			},
			dir: ascending,
		},
	}
}

// standingsOrder is the ranking used for reports.
func standingsOrder() ordering {
	return ordering{
		{
			name: "match points",
			key:  func(c *Contestant) int { return c.MatchPoints() },
			dir:  descending,
		},
		{
			name: "games played",
			key:  func(c *Contestant) int { return c.GamesPlayed() },
			dir:  ascending,
		},
		{
			name: "tiebreak",
			key:  func(c *Contestant) int { return c.Tiebreak },
			dir:  descending,
		},
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
