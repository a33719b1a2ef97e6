/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	"html/template"
	"io"

	_ "embed"
)

//go:embed report.html.tmpl
var reportTmplText string

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"points": func(matchPoints int) float64 {
		return float64(matchPoints) / 2.0
	},
}).Parse(reportTmplText))

// HTML writes the full results page: standings, next round matchups and
// disabled contestants.
func HTML(w io.Writer, v *View) error {
	return reportTmpl.Execute(w, v)
}
