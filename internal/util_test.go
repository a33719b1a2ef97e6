/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
	"time"
)

func TestScoreToString(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, "0"},
		{0.5, "½"},
		{1, "1"},
		{2.5, "2½"},
		{7, "7"},
	}
	for _, c := range cases {
		if got := ScoreToString(c.score); got != c.want {
			t.Errorf("ScoreToString(%v) = %q; want %q", c.score, got, c.want)
		}
	}
	if got := MatchPointsToString(5); got != "2½" {
		t.Errorf("MatchPointsToString(5) = %q; want 2½", got)
	}
}

func TestParseDateOrZero(t *testing.T) {
	for _, in := range []string{"", "null", "  "} {
		got, err := ParseDateOrZero(in)
		if err != nil || !got.IsZero() {
			t.Errorf("ParseDateOrZero(%q) = %v, %v; want zero", in, got, err)
		}
	}

	got, err := ParseDateOrZero("2026-10-15")
	if err != nil {
		t.Fatalf("ParseDateOrZero returned error: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.October || got.Day() != 15 {
		t.Errorf("ParseDateOrZero = %v; want 2026-10-15", got)
	}

	got, err = ParseDateOrZero("October 15, 2026")
	if err != nil || got.Day() != 15 {
		t.Errorf("ParseDateOrZero(long form) = %v, %v", got, err)
	}
}
