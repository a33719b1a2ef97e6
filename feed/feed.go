/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package feed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/swiss"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMalformedLine  = errors.New("malformed line")
	ErrNoRoster       = errors.New("no roster")
	ErrExtraResults   = errors.New("results outside the primary log")
)

// Feed is a decoded result log: the seed roster, the ordered records and
// optional event metadata.
type Feed struct {
	Title   string
	Date    time.Time
	Roster  []string
	Records []swiss.Record
}

// Decode reads a result log. The first non-blank line is the comma separated
// roster; each following line is a game ("A,W,B,L"), a bye ("A,BYE"), an
// admin command ("#add", "#disable", "#enable") or metadata ("#event",
// "#date"). Lines starting with "# " are comments.
func Decode(r io.Reader) (*Feed, error) {
	f := &Feed{}
	haveRoster := false
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !haveRoster {
			roster, err := splitRoster(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			f.Roster = roster
			haveRoster = true
			continue
		}

		var err error
		if strings.HasPrefix(line, "#") {
			err = f.decodeCommand(line)
		} else {
			err = f.decodeResult(line)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read result log: %w", err)
	}
	if !haveRoster {
		return nil, ErrNoRoster
	}

	return f, nil
}

// splitRoster parses the roster line. A lone "," is an empty roster. Names
// may not start with '#' since a result line for them would read as a command.
func splitRoster(line string) ([]string, error) {
	var names []string
	for _, n := range strings.Split(line, ",") {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if strings.HasPrefix(n, "#") {
			return nil, fmt.Errorf("%w: roster name %q starts with #",
				ErrMalformedLine, n)
		}
		names = append(names, n)
	}

	return names, nil
}

func (f *Feed) decodeCommand(line string) error {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "#":
		return nil
	case "#add":
		name, w, d, l, err := parseSeed(line, rest)
		if err != nil {
			return err
		}
		f.Records = append(f.Records, swiss.AddCommand{Name: name, Wins: w,
			Draws: d, Losses: l})
	case "#enable":
		name, w, d, l, err := parseSeed(line, rest)
		if err != nil {
			return err
		}
		f.Records = append(f.Records, swiss.EnableCommand{Name: name, Wins: w,
			Draws: d, Losses: l})
	case "#disable":
		if rest == "" {
			return fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		f.Records = append(f.Records, swiss.DisableCommand{Name: rest})
	case "#event":
		f.Title = rest
	case "#date":
		d, err := internal.ParseDateOrZero(rest)
		if err != nil {
			return fmt.Errorf("%w: bad date %q: %v", ErrMalformedLine, rest,
				err)
		}
		f.Date = d
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	return nil
}

// parseSeed parses "name,wins,draws,losses".
func parseSeed(line string, args string) (string, int, int, int, error) {
	fields := splitFields(args)
	if len(fields) != 4 || fields[0] == "" ||
		strings.HasPrefix(fields[0], "#") {
		return "", 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	var counts [3]int
	for i := range counts {
		n, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return "", 0, 0, 0, fmt.Errorf("%w: %q: %v", ErrMalformedLine,
				line, err)
		}
		counts[i] = n
	}

	return fields[0], counts[0], counts[1], counts[2], nil
}

func (f *Feed) decodeResult(line string) error {
	fields := splitFields(line)
	switch len(fields) {
	case 4:
		if fields[0] == "" || fields[2] == "" {
			return fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		oa, err := swiss.ParseOutcome(fields[1])
		if err != nil {
			return err
		}
		ob, err := swiss.ParseOutcome(fields[3])
		if err != nil {
			return err
		}
		f.Records = append(f.Records, swiss.MatchResult{A: fields[0],
			OutcomeA: oa, B: fields[2], OutcomeB: ob})
	case 2:
		if fields[0] == "" {
			return fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		f.Records = append(f.Records, swiss.ByeResult{Name: fields[0]})
	default:
		return fmt.Errorf("%w: expected 2 or 4 fields in %q", ErrMalformedLine,
			line)
	}

	return nil
}

func splitFields(s string) []string {
	fields := strings.Split(s, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields
}

// MergeRoster appends names not already on the roster and returns how many
// were added.
func (f *Feed) MergeRoster(names []string) int {
	present := make(map[string]bool, len(f.Roster))
	for _, n := range f.Roster {
		present[n] = true
	}
	added := 0
	for _, n := range names {
		if !present[n] {
			f.Roster = append(f.Roster, n)
			present[n] = true
			added++
		}
	}

	return added
}

// Encode writes f in the form Decode reads.
func Encode(w io.Writer, f *Feed) error {
	bw := bufio.NewWriter(w)
	if len(f.Roster) == 0 {
		// blank lines are skipped by Decode
		fmt.Fprintln(bw, ",")
	} else {
		fmt.Fprintln(bw, strings.Join(f.Roster, ", "))
	}
	if f.Title != "" {
		fmt.Fprintf(bw, "#event %s\n", f.Title)
	}
	if !f.Date.IsZero() {
		fmt.Fprintf(bw, "#date %s\n", f.Date.Format("2006-01-02"))
	}
	for _, rec := range f.Records {
		fmt.Fprintln(bw, rec.String())
	}

	return bw.Flush()
}
