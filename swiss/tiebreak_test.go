/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"errors"
	"testing"
)

func TestComputeTiebreaks(t *testing.T) {
	reg := newTestRegistry(t, "A", "X", "Y", "Z")
	err := reg.Ingest([]Record{
		MatchResult{"A", OutcomeWin, "X", OutcomeLoss},
		MatchResult{"Y", OutcomeDraw, "Z", OutcomeDraw},
		MatchResult{"A", OutcomeDraw, "Y", OutcomeDraw},
		MatchResult{"X", OutcomeWin, "Z", OutcomeLoss},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := reg.ComputeTiebreaks(); err != nil {
		t.Fatalf("ComputeTiebreaks returned error: %v", err)
	}

	a, _ := reg.Lookup("A")
	x, _ := reg.Lookup("X")
	y, _ := reg.Lookup("Y")
	if a.Tiebreak != x.MatchPoints()+y.MatchPoints() {
		t.Errorf("A tiebreak = %d; want %d", a.Tiebreak,
			x.MatchPoints()+y.MatchPoints())
	}
	// X: 2 points, Y: 2 draws = 2 points
	if a.Tiebreak != 4 {
		t.Errorf("A tiebreak = %d; want 4", a.Tiebreak)
	}
	z, _ := reg.Lookup("Z")
	// Z faced Y (2) and X (2)
	if z.Tiebreak != 4 {
		t.Errorf("Z tiebreak = %d; want 4", z.Tiebreak)
	}
}

func TestComputeTiebreaksUsesCurrentScores(t *testing.T) {
	reg := newTestRegistry(t, "A", "B", "C")
	if err := reg.ApplyMatch(MatchResult{"A", OutcomeWin, "B",
		OutcomeLoss}); err != nil {
		t.Fatal(err)
	}
	if err := reg.ComputeTiebreaks(); err != nil {
		t.Fatal(err)
	}
	a, _ := reg.Lookup("A")
	if a.Tiebreak != 0 {
		t.Errorf("A tiebreak = %d; want 0", a.Tiebreak)
	}

	// B's later win raises A's tiebreak on recomputation
	if err := reg.ApplyMatch(MatchResult{"B", OutcomeWin, "C",
		OutcomeLoss}); err != nil {
		t.Fatal(err)
	}
	if err := reg.ComputeTiebreaks(); err != nil {
		t.Fatal(err)
	}
	if a.Tiebreak != 2 {
		t.Errorf("A tiebreak = %d; want 2", a.Tiebreak)
	}
}

func TestComputeTiebreaksUnknownHistory(t *testing.T) {
	reg := newTestRegistry(t, "A")
	a, _ := reg.Lookup("A")
	a.History["Ghost"] = struct{}{}

	if err := reg.ComputeTiebreaks(); !errors.Is(err, ErrUnknownContestant) {
		t.Errorf("err = %v; want ErrUnknownContestant", err)
	}
}
