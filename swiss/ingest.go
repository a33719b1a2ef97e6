/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "fmt"

// Ingest applies records in order and stops at the first failure. The
// returned error carries the 1-based record index.
func (r *Registry) Ingest(records []Record) error {
	for idx, rec := range records {
		if err := r.Apply(rec); err != nil {
			return fmt.Errorf("record %d (%v): %w", idx+1, rec, err)
		}
	}

	return nil
}

// Apply dispatches a single record.
func (r *Registry) Apply(rec Record) error {
	switch v := rec.(type) {
	case MatchResult:
		return r.ApplyMatch(v)
	case ByeResult:
		return r.ApplyBye(v)
	case AddCommand:
		return r.ApplyAdminAdd(v)
	case DisableCommand:
		return r.ApplyAdminDisable(v)
	case EnableCommand:
		return r.ApplyAdminEnable(v)
	default:
		return fmt.Errorf("%w: unsupported record type %T", ErrInvalidRecord,
			rec)
	}
}

// ApplyMatch credits both sides and links their histories. Both names are
// resolved before anything is mutated.
func (r *Registry) ApplyMatch(m MatchResult) error {
	if m.A == m.B {
		return fmt.Errorf("%w: %q cannot play itself", ErrInvalidRecord, m.A)
	}
	if !m.OutcomeA.valid() {
		return fmt.Errorf("%w: %v", ErrInvalidOutcome, m.OutcomeA)
	}
	if !m.OutcomeB.valid() {
		return fmt.Errorf("%w: %v", ErrInvalidOutcome, m.OutcomeB)
	}
	a, err := r.Lookup(m.A)
	if err != nil {
		return err
	}
	b, err := r.Lookup(m.B)
	if err != nil {
		return err
	}

	a.record(m.OutcomeA)
	a.History[b.Name] = struct{}{}
	b.record(m.OutcomeB)
	b.History[a.Name] = struct{}{}

	return nil
}

// ApplyBye counts a bye as a win without touching history.
func (r *Registry) ApplyBye(b ByeResult) error {
	c, err := r.Lookup(b.Name)
	if err != nil {
		return err
	}
	c.Wins++
	c.Byes++

	return nil
}

func (r *Registry) ApplyAdminAdd(a AddCommand) error {
	if err := checkSeed(a.Name, a.Wins, a.Draws, a.Losses); err != nil {
		return err
	}
	c, err := r.Create(a.Name)
	if err != nil {
		return err
	}
	c.Wins = a.Wins
	c.Draws = a.Draws
	c.Losses = a.Losses

	return nil
}

// ApplyAdminDisable requires an enabled contestant.
func (r *Registry) ApplyAdminDisable(d DisableCommand) error {
	c, err := r.Lookup(d.Name)
	if err != nil {
		return err
	}
	if !c.Enabled {
		return fmt.Errorf("%w: no enabled contestant named %q",
			ErrUnknownContestant, d.Name)
	}

	return r.SetEnabled(d.Name, false)
}

// ApplyAdminEnable requires a disabled contestant and resets its counters.
func (r *Registry) ApplyAdminEnable(e EnableCommand) error {
	c, err := r.Lookup(e.Name)
	if err != nil {
		return err
	}
	if c.Enabled {
		return fmt.Errorf("%w: %q", ErrAlreadyEnabled, e.Name)
	}

	return r.ResetAndEnable(e.Name, e.Wins, e.Draws, e.Losses)
}
