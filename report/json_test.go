/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, newTestView(t)); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}

	var doc struct {
		Title string `json:"title"`
		Date  string `json:"date"`
		Round struct {
			Target   int `json:"target"`
			Matchups []struct {
				A string `json:"a"`
				B string `json:"b"`
			} `json:"matchups"`
			Bye string `json:"bye"`
		} `json:"round"`
		Standings []struct {
			Name     string `json:"name"`
			Tiebreak int    `json:"tiebreak"`
		} `json:"standings"`
		Disabled []struct {
			Name string `json:"name"`
		} `json:"disabled"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unable to decode JSON report: %v", err)
	}

	if doc.Title != DefaultTitle || doc.Date != "2026-03-05" {
		t.Errorf("title, date = %q, %q; want %q, 2026-03-05", doc.Title,
			doc.Date, DefaultTitle)
	}
	if doc.Round.Target != 1 || len(doc.Round.Matchups) != 2 ||
		doc.Round.Bye != "D" {
		t.Errorf("round = %+v; want target 1, 2 matchups, bye D", doc.Round)
	}
	if doc.Round.Matchups[0].A != "E" || doc.Round.Matchups[0].B != "A" {
		t.Errorf("first matchup = %+v; want E vs. A", doc.Round.Matchups[0])
	}
	if len(doc.Standings) != 5 || doc.Standings[4].Tiebreak != 2 {
		t.Errorf("standings = %+v; want 5 with B's tiebreak 2", doc.Standings)
	}
	if len(doc.Disabled) != 1 || doc.Disabled[0].Name != "F" {
		t.Errorf("disabled = %+v; want F", doc.Disabled)
	}
}

func TestJSONWithoutRound(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, &View{Title: "t"}); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unable to decode JSON report: %v", err)
	}
	if doc["round"] != nil {
		t.Errorf("round = %v; want null", doc["round"])
	}
	if _, ok := doc["date"]; ok {
		t.Errorf("date present for a zero date")
	}
	if s, ok := doc["standings"].([]any); !ok || len(s) != 0 {
		t.Errorf("standings = %v; want empty list", doc["standings"])
	}
}
