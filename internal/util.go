/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// ScoreToString renders a chess score using ½ for half points, e.g. "2½".
func ScoreToString(score float64) string {
	whole, frac := math.Modf(score)
	if frac == 0 {
		return fmt.Sprintf("%d", int(whole))
	}
	if whole == 0 {
		return "½"
	}
	return fmt.Sprintf("%d½", int(whole))
}

// MatchPointsToString renders 2-per-win match points as a chess score.
func MatchPointsToString(matchPoints int) string {
	return ScoreToString(float64(matchPoints) / 2.0)
}
