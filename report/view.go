/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	"time"

	"github.com/mikeb26/swisstd/swiss"
)

const DefaultTitle = "Swiss-System Tournament Results"

// View is everything a report renders. Round is nil when the next round
// could not be paired.
type View struct {
	Title    string
	Date     time.Time
	Round    *swiss.Round
	Enabled  []swiss.Standing
	Disabled []swiss.Standing
}

// NewView builds a view of reg's current standings and the given round.
func NewView(title string, date time.Time, reg *swiss.Registry,
	round *swiss.Round) *View {

	if title == "" {
		title = DefaultTitle
	}
	v := &View{
		Title: title,
		Date:  date,
		Round: round,
	}
	v.Enabled, v.Disabled = reg.Standings()

	return v
}

// RoundNumber is the 1-based number of the round being paired.
func (v *View) RoundNumber() int {
	if v.Round == nil {
		return 0
	}
	return v.Round.Target + 1
}
