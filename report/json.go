/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	"encoding/json"
	"io"

	"github.com/mikeb26/swisstd/swiss"
)

type jsonReport struct {
	Title     string           `json:"title"`
	Date      string           `json:"date,omitempty"`
	Round     *swiss.Round     `json:"round"`
	Standings []swiss.Standing `json:"standings"`
	Disabled  []swiss.Standing `json:"disabled"`
}

// JSON writes the view for machine consumers. A missing round is encoded as
// null.
func JSON(w io.Writer, v *View) error {
	doc := jsonReport{
		Title:     v.Title,
		Round:     v.Round,
		Standings: v.Enabled,
		Disabled:  v.Disabled,
	}
	if !v.Date.IsZero() {
		doc.Date = v.Date.Format("2006-01-02")
	}
	if doc.Standings == nil {
		doc.Standings = []swiss.Standing{}
	}
	if doc.Disabled == nil {
		doc.Disabled = []swiss.Standing{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
