/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"math/rand"
	"time"
)

// Tournament is the state rebuilt from a full result log.
type Tournament struct {
	Registry *Registry
	Round    *Round
	Enabled  []Standing
	Disabled []Standing
}

type replayConfig struct {
	rng       *rand.Rand
	noShuffle bool
}

type ReplayOption func(*replayConfig)

// WithRand shuffles the roster with rng, which makes a run reproducible.
func WithRand(rng *rand.Rand) ReplayOption {
	return func(c *replayConfig) {
		c.rng = rng
	}
}

// WithoutShuffle keeps roster order, which makes pairing fully determined by
// the input.
func WithoutShuffle() ReplayOption {
	return func(c *replayConfig) {
		c.noShuffle = true
	}
}

// Rebuild seeds a registry from roster, shuffles it, ingests records and
// computes tiebreaks.
func Rebuild(roster []string, records []Record,
	opts ...ReplayOption) (*Registry, error) {

	cfg := replayConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	reg := NewRegistry()
	for _, name := range roster {
		if _, err := reg.Create(name); err != nil {
			return nil, fmt.Errorf("roster: %w", err)
		}
	}
	if !cfg.noShuffle {
		reg.Shuffle(cfg.rng)
	}
	if err := reg.Ingest(records); err != nil {
		return nil, err
	}
	if err := reg.ComputeTiebreaks(); err != nil {
		return nil, err
	}

	return reg, nil
}

// Replay rebuilds the registry and pairs the next round. The registry is
// owned by this call until it returns.
func Replay(roster []string, records []Record,
	opts ...ReplayOption) (*Tournament, error) {

	reg, err := Rebuild(roster, records, opts...)
	if err != nil {
		return nil, err
	}
	round, err := reg.Pair()
	if err != nil {
		return nil, err
	}

	t := &Tournament{
		Registry: reg,
		Round:    round,
	}
	t.Enabled, t.Disabled = reg.Standings()

	return t, nil
}
