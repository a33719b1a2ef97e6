/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package feed

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseRosterHTML extracts contestant names from a registration page's
// members table. The name is taken from the second cell of each body row;
// rows that are too short or repeat a name are skipped.
func ParseRosterHTML(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("unable to parse roster page: %w", err)
	}

	var names []string
	seen := make(map[string]bool)
	doc.Find("table#members tbody tr").Each(func(_ int, s *goquery.Selection) {
		cells := s.Find("td")
		if cells.Length() < 2 {
			return
		}
		name := normalizeName(cells.Eq(1).Text())
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	})
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no rows in table#members", ErrNoRoster)
	}

	return names, nil
}

// normalizeName collapses whitespace and turns "Last, First" into
// "First Last" since commas delimit the result log.
func normalizeName(raw string) string {
	name := strings.Join(strings.Fields(raw), " ")
	if last, first, ok := strings.Cut(name, ","); ok {
		name = strings.TrimSpace(strings.TrimSpace(first) + " " +
			strings.TrimSpace(last))
	}

	name = strings.ReplaceAll(name, ",", "")

	// a leading '#' would make the name's result lines parse as commands
	return strings.TrimSpace(strings.TrimLeft(name, "#"))
}
