/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/mikeb26/swisstd/swiss"
)

// newTestView pairs a five player field after one round, with F withdrawn.
// The next round is E vs. A, C vs. B and a bye for D.
func newTestView(t *testing.T) *View {
	t.Helper()
	records := []swiss.Record{
		swiss.MatchResult{A: "A", OutcomeA: swiss.OutcomeWin, B: "B",
			OutcomeB: swiss.OutcomeLoss},
		swiss.MatchResult{A: "C", OutcomeA: swiss.OutcomeDraw, B: "D",
			OutcomeB: swiss.OutcomeDraw},
		swiss.ByeResult{Name: "E"},
		swiss.DisableCommand{Name: "F"},
	}
	tourney, err := swiss.Replay([]string{"A", "B", "C", "D", "E", "F"},
		records, swiss.WithoutShuffle())
	if err != nil {
		t.Fatalf("Replay returned error: %v", err)
	}

	return NewView("", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		tourney.Registry, tourney.Round)
}

func TestNewView(t *testing.T) {
	v := newTestView(t)
	if v.Title != DefaultTitle {
		t.Errorf("Title = %q; want %q", v.Title, DefaultTitle)
	}
	if v.RoundNumber() != 2 {
		t.Errorf("RoundNumber = %d; want 2", v.RoundNumber())
	}
	var names []string
	for _, s := range v.Enabled {
		names = append(names, s.Name)
	}
	if got := strings.Join(names, ","); got != "A,E,C,D,B" {
		t.Errorf("Enabled order = %v; want A,E,C,D,B", got)
	}
	if len(v.Disabled) != 1 || v.Disabled[0].Name != "F" {
		t.Errorf("Disabled = %+v; want F only", v.Disabled)
	}
}

func TestHTML(t *testing.T) {
	v := newTestView(t)
	var buf bytes.Buffer
	if err := HTML(&buf, v); err != nil {
		t.Fatalf("HTML returned error: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("unable to parse generated HTML: %v", err)
	}
	if got := doc.Find("h1").Text(); got != DefaultTitle {
		t.Errorf("h1 = %q; want %q", got, DefaultTitle)
	}
	if got := doc.Find("title").Text(); got != DefaultTitle {
		t.Errorf("title = %q; want %q", got, DefaultTitle)
	}
	if got := doc.Find("p.date").Text(); got != "Thursday, March 5, 2026" {
		t.Errorf("date = %q; want %q", got, "Thursday, March 5, 2026")
	}

	var matchups []string
	doc.Find("ul#matchups li").Each(func(_ int, s *goquery.Selection) {
		matchups = append(matchups, s.Text())
	})
	want := []string{"E vs. A", "C vs. B", "D gets a BYE"}
	if strings.Join(matchups, "|") != strings.Join(want, "|") {
		t.Errorf("matchups = %q; want %q", matchups, want)
	}

	tables := doc.Find("table")
	if tables.Length() != 2 {
		t.Fatalf("found %d tables; want 2", tables.Length())
	}
	headers := tables.First().Find("th")
	if headers.Length() != 7 || headers.Last().Text() != "Buchholz" {
		t.Errorf("standings headers = %d ending %q; want 7 ending Buchholz",
			headers.Length(), headers.Last().Text())
	}

	rows := tables.First().Find("tbody tr")
	if rows.Length() != 5 {
		t.Fatalf("standings rows = %d; want 5", rows.Length())
	}
	cells := func(row *goquery.Selection) []string {
		var out []string
		row.Find("td").Each(func(_ int, s *goquery.Selection) {
			out = append(out, s.Text())
		})
		return out
	}
	if got := strings.Join(cells(rows.First()), ","); got != "A,1.0,1,1,0,0,0.0" {
		t.Errorf("first row = %v; want A,1.0,1,1,0,0,0.0", got)
	}
	if got := strings.Join(cells(rows.Last()), ","); got != "B,0.0,1,0,0,1,1.0" {
		t.Errorf("last row = %v; want B,0.0,1,0,0,1,1.0", got)
	}

	disabled := tables.Last().Find("tbody tr")
	if disabled.Length() != 1 || disabled.Find("td").First().Text() != "F" {
		t.Errorf("disabled table = %q; want F only", disabled.Text())
	}
}

func TestHTMLEscapesNames(t *testing.T) {
	reg := swiss.NewRegistry()
	if _, err := reg.Create("<b>Bobby</b>"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	var buf bytes.Buffer
	if err := HTML(&buf, NewView("Club & Friends", time.Time{}, reg,
		nil)); err != nil {
		t.Fatalf("HTML returned error: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<b>Bobby</b>") {
		t.Errorf("HTML did not escape contestant name:\n%s", out)
	}
	if strings.Contains(out, "Next Round Matchups") {
		t.Errorf("HTML rendered matchups without a round:\n%s", out)
	}
	if strings.Contains(out, `class="date"`) {
		t.Errorf("HTML rendered a zero date:\n%s", out)
	}
}

func TestText(t *testing.T) {
	v := newTestView(t)
	got := Text(v)

	want := `Swiss-System Tournament Results
Thu Mar 5, 2026

Standings prior to Round 2:

Place  Name  Score  Games  W  D  L  Buchholz
1.     A     1      1      1  0  0  0
       E     1      1      1  0  0  0
3.     C     ½      1      0  1  0  ½
       D     ½      1      0  1  0  ½
5.     B     0      1      0  0  1  1

Pairings for Round 2:

Board  Player  Opponent
1.     E       A
2.     C       B
       D       BYE

Disabled Contestants:

Place  Name  Score  Games  W  D  L  Buchholz
1.     F     0      0      0  0  0  0

`
	if got != want {
		t.Errorf("Text =\n%s\nwant\n%s", got, want)
	}
}

func TestPairingsTextWithoutRound(t *testing.T) {
	v := &View{Title: DefaultTitle}
	if got := PairingsText(v); got != "No pairings available\n\n" {
		t.Errorf("PairingsText = %q; want no pairings message", got)
	}
	if got := StandingsText(v); !strings.Contains(got, "No active contestants") {
		t.Errorf("StandingsText = %q; want no contestants message", got)
	}
}

func TestPadCountsRunes(t *testing.T) {
	if got := pad("2½", 4); got != "2½  " {
		t.Errorf("pad(2½, 4) = %q; want %q", got, "2½  ")
	}
	if got := pad("toolong", 3); got != "toolong" {
		t.Errorf("pad(toolong, 3) = %q; want unchanged", got)
	}
}
