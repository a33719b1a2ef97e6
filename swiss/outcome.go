/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "fmt"

// Outcome is one side's result of a single game.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeDraw
	OutcomeLoss
)

// game points awarded per outcome; match points are their sum
const (
	winPoints  = 2
	drawPoints = 1
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "W"
	case OutcomeDraw:
		return "D"
	case OutcomeLoss:
		return "L"
	default:
		return "?"
	}
}

func (o Outcome) valid() bool {
	return o == OutcomeWin || o == OutcomeDraw || o == OutcomeLoss
}

// ParseOutcome converts a result log token into an Outcome.
func ParseOutcome(tok string) (Outcome, error) {
	switch tok {
	case "W":
		return OutcomeWin, nil
	case "D":
		return OutcomeDraw, nil
	case "L":
		return OutcomeLoss, nil
	default:
		return OutcomeLoss, fmt.Errorf("%w: %q", ErrInvalidOutcome, tok)
	}
}
