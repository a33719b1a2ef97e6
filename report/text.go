/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	"fmt"
	"strings"

	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/swiss"
)

// Text renders the same content as HTML as aligned plain-text tables.
func Text(v *View) string {
	var sb strings.Builder

	sb.WriteString(header(v))
	sb.WriteString(StandingsText(v))
	sb.WriteString(PairingsText(v))
	if len(v.Disabled) != 0 {
		sb.WriteString("Disabled Contestants:\n\n")
		writeStandingsTable(&sb, v.Disabled)
	}

	return sb.String()
}

func header(v *View) string {
	if v.Date.IsZero() {
		return fmt.Sprintf("%s\n\n", v.Title)
	}
	return fmt.Sprintf("%s\n%s\n\n", v.Title, v.Date.Format("Mon Jan 2, 2006"))
}

// StandingsText formats the enabled contestants' standings.
func StandingsText(v *View) string {
	var sb strings.Builder

	if v.Round != nil {
		sb.WriteString(fmt.Sprintf("Standings prior to Round %v:\n\n",
			v.RoundNumber()))
	} else {
		sb.WriteString("Standings:\n\n")
	}
	if len(v.Enabled) == 0 {
		sb.WriteString("No active contestants\n\n")
		return sb.String()
	}
	writeStandingsTable(&sb, v.Enabled)

	return sb.String()
}

func writeStandingsTable(sb *strings.Builder, standings []swiss.Standing) {
	type row struct{ rank, player, score, games, w, d, l, buchholz string }
	var rows []row
	priorPoints := -1
	for idx, s := range standings {
		var rank string
		if idx != 0 && s.MatchPoints == priorPoints {
			rank = ""
		} else {
			rank = fmt.Sprintf("%v.", idx+1)
			priorPoints = s.MatchPoints
		}
		rows = append(rows, row{
			rank:     rank,
			player:   s.Name,
			score:    internal.MatchPointsToString(s.MatchPoints),
			games:    fmt.Sprintf("%v", s.GamesPlayed),
			w:        fmt.Sprintf("%v", s.Wins),
			d:        fmt.Sprintf("%v", s.Draws),
			l:        fmt.Sprintf("%v", s.Losses),
			buchholz: internal.MatchPointsToString(s.Tiebreak),
		})
	}

	// Compute column widths
	maxP, maxN, maxS, maxG := len("Place"), len("Name"), len("Score"),
		len("Games")
	maxW, maxD, maxL := len("W"), len("D"), len("L")
	for _, r := range rows {
		maxP = max(maxP, len(r.rank))
		maxN = max(maxN, len([]rune(r.player)))
		maxS = max(maxS, len([]rune(r.score)))
		maxG = max(maxG, len(r.games))
		maxW = max(maxW, len(r.w))
		maxD = max(maxD, len(r.d))
		maxL = max(maxL, len(r.l))
	}

	sb.WriteString(fmt.Sprintf("%-*s  %s  %s  %-*s  %-*s  %-*s  %-*s  %s\n",
		maxP, "Place", pad("Name", maxN), pad("Score", maxS), maxG, "Games",
		maxW, "W", maxD, "D", maxL, "L", "Buchholz"))
	for _, r := range rows {
		sb.WriteString(strings.TrimRight(fmt.Sprintf(
			"%-*s  %s  %s  %-*s  %-*s  %-*s  %-*s  %s", maxP, r.rank,
			pad(r.player, maxN), pad(r.score, maxS), maxG, r.games, maxW, r.w,
			maxD, r.d, maxL, r.l, r.buchholz), " "))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// pad left-justifies s to width runes; %-*s counts bytes, which misaligns
// names and ½ scores outside ASCII.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// PairingsText formats the next round's boards and bye.
func PairingsText(v *View) string {
	if v.Round == nil {
		return "No pairings available\n\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pairings for Round %v:\n\n", v.RoundNumber()))

	type row struct{ board, player, opponent string }
	var rows []row
	for idx, m := range v.Round.Matchups {
		rows = append(rows, row{
			board:    fmt.Sprintf("%v.", idx+1),
			player:   m.A,
			opponent: m.B,
		})
	}
	if v.Round.HasBye() {
		rows = append(rows, row{player: v.Round.Bye, opponent: "BYE"})
	}

	maxB, maxPl := len("Board"), len("Player")
	for _, r := range rows {
		maxB = max(maxB, len(r.board))
		maxPl = max(maxPl, len([]rune(r.player)))
	}

	sb.WriteString(fmt.Sprintf("%-*s  %s  %s\n", maxB, "Board",
		pad("Player", maxPl), "Opponent"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %s  %s\n", maxB, r.board,
			pad(r.player, maxPl), r.opponent))
	}
	sb.WriteString("\n")

	return sb.String()
}
