/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"math/rand"
)

// Registry owns every contestant of a run. Contestants are never removed,
// only disabled, so names stay resolvable for tiebreak computation.
type Registry struct {
	contestants []*Contestant
	byName      map[string]*Contestant
}

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Contestant),
	}
}

// Create adds an enabled contestant with zero counters.
func (r *Registry) Create(name string) (*Contestant, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty contestant name", ErrInvalidRecord)
	}
	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateContestant, name)
	}
	c := newContestant(name)
	r.contestants = append(r.contestants, c)
	r.byName[name] = c

	return c, nil
}

// Lookup returns the registry's own contestant so callers may mutate it.
func (r *Registry) Lookup(name string) (*Contestant, error) {
	c, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContestant, name)
	}

	return c, nil
}

func (r *Registry) SetEnabled(name string, enabled bool) error {
	c, err := r.Lookup(name)
	if err != nil {
		return err
	}
	c.Enabled = enabled

	return nil
}

// ResetAndEnable replaces the win/draw/loss counters with the given seed
// values and enables the contestant. History and byes are kept.
func (r *Registry) ResetAndEnable(name string, wins, draws, losses int) error {
	if err := checkSeed(name, wins, draws, losses); err != nil {
		return err
	}
	c, err := r.Lookup(name)
	if err != nil {
		return err
	}
	c.Wins = wins
	c.Draws = draws
	c.Losses = losses
	c.Enabled = true

	return nil
}

// Contestants returns the registry's contestants in registry order.
func (r *Registry) Contestants() []*Contestant {
	out := make([]*Contestant, len(r.contestants))
	copy(out, r.contestants)

	return out
}

func (r *Registry) Len() int {
	return len(r.contestants)
}

// Shuffle randomizes registry order, which is the order pairing uses to
// break full ties.
func (r *Registry) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(r.contestants), func(i, j int) {
		r.contestants[i], r.contestants[j] = r.contestants[j], r.contestants[i]
	})
}

// Snapshot returns deep copies of the enabled contestants in registry order.
func (r *Registry) Snapshot() []Contestant {
	out := make([]Contestant, 0, len(r.contestants))
	for _, c := range r.contestants {
		if c.Enabled {
			out = append(out, c.clone())
		}
	}

	return out
}

func checkSeed(name string, wins, draws, losses int) error {
	if wins < 0 || draws < 0 || losses < 0 {
		return fmt.Errorf("%w: negative seed counters %d/%d/%d for %q",
			ErrInvalidRecord, wins, draws, losses, name)
	}

	return nil
}
