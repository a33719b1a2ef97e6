/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "fmt"

// Record is one entry of the result log. The set of implementations is
// closed: MatchResult, ByeResult, AddCommand, DisableCommand, EnableCommand.
type Record interface {
	fmt.Stringer
	isRecord()
}

// MatchResult is a completed game between A and B. The two outcomes are
// applied independently of each other.
type MatchResult struct {
	A        string
	OutcomeA Outcome
	B        string
	OutcomeB Outcome
}

// ByeResult is an automatic win without an opponent.
type ByeResult struct {
	Name string
}

// AddCommand registers a late entrant with seed counters.
type AddCommand struct {
	Name   string
	Wins   int
	Draws  int
	Losses int
}

// DisableCommand withdraws a contestant from future rounds.
type DisableCommand struct {
	Name string
}

// EnableCommand returns a withdrawn contestant with replacement counters.
type EnableCommand struct {
	Name   string
	Wins   int
	Draws  int
	Losses int
}

func (MatchResult) isRecord()    {}
func (ByeResult) isRecord()      {}
func (AddCommand) isRecord()     {}
func (DisableCommand) isRecord() {}
func (EnableCommand) isRecord()  {}

func (m MatchResult) String() string {
	return fmt.Sprintf("%s,%v,%s,%v", m.A, m.OutcomeA, m.B, m.OutcomeB)
}

func (b ByeResult) String() string {
	return fmt.Sprintf("%s,BYE", b.Name)
}

func (a AddCommand) String() string {
	return fmt.Sprintf("#add %s,%d,%d,%d", a.Name, a.Wins, a.Draws, a.Losses)
}

func (d DisableCommand) String() string {
	return fmt.Sprintf("#disable %s", d.Name)
}

func (e EnableCommand) String() string {
	return fmt.Sprintf("#enable %s,%d,%d,%d", e.Name, e.Wins, e.Draws,
		e.Losses)
}
