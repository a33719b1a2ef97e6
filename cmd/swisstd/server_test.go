/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/swisstd/config"
)

const testLog = `A, B, C, D
#event Test Night
A,W,B,L
C,D,D,D
`

func newTestRuntime(t *testing.T, content string) *runtime {
	t.Helper()
	p := filepath.Join(t.TempDir(), "results.txt")
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg := config.Default()
	seed := int64(1)
	cfg.Seed = &seed

	return &runtime{cfg: cfg, client: http.DefaultClient, locations: []string{p}}
}

func get(t *testing.T, h http.Handler, path string,
	hdr map[string]string) *httptest.ResponseRecorder {

	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestServerRoutes(t *testing.T) {
	h := newServer(newTestRuntime(t, testLog)).routes()

	cases := []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/healthz", "text/plain; charset=utf-8", "ok"},
		{"/", "text/html; charset=utf-8", "<h2>Next Round Matchups</h2>"},
		{"/standings.txt", "text/plain; charset=utf-8", "Pairings for Round 2:"},
		{"/pairings.json", "application/json", `"title": "Test Night"`},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			rec := get(t, h, c.path, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("GET %v = %d; want 200: %s", c.path, rec.Code,
					rec.Body.String())
			}
			if got := rec.Header().Get("Content-Type"); got != c.contentType {
				t.Errorf("Content-Type = %q; want %q", got, c.contentType)
			}
			if !strings.Contains(rec.Body.String(), c.contains) {
				t.Errorf("GET %v body missing %q:\n%s", c.path, c.contains,
					rec.Body.String())
			}
		})
	}
}

func TestServerPairingsAreStable(t *testing.T) {
	h := newServer(newTestRuntime(t, testLog)).routes()
	first := get(t, h, "/pairings.json", nil).Body.String()
	second := get(t, h, "/pairings.json", nil).Body.String()
	if first != second {
		t.Errorf("pairings changed between requests:\n%s\n%s", first, second)
	}
}

func TestServerCORS(t *testing.T) {
	rt := newTestRuntime(t, testLog)
	rt.cfg.CORSOrigins = []string{"https://club.example.com"}
	h := newServer(rt).routes()

	rec := get(t, h, "/pairings.json",
		map[string]string{"Origin": "https://club.example.com"})
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got !=
		"https://club.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q; want the club origin", got)
	}

	rec = get(t, h, "/pairings.json",
		map[string]string{"Origin": "https://elsewhere.example.com"})
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q; want none", got)
	}
}

func TestServerBrokenLog(t *testing.T) {
	h := newServer(newTestRuntime(t, "A,B\nA,W,Z,L\n")).routes()
	rec := get(t, h, "/", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("GET / = %d; want 500", rec.Code)
	}
}

func TestServerStandingsWhenUnpairable(t *testing.T) {
	h := newServer(newTestRuntime(t, "A,B\nA,W,B,L\n")).routes()
	rec := get(t, h, "/standings.txt", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /standings.txt = %d; want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No pairings available") {
		t.Errorf("body = %q; want standings without pairings",
			rec.Body.String())
	}
}

func TestInteractionsDisabledWithoutKey(t *testing.T) {
	h := newServer(newTestRuntime(t, testLog)).routes()
	req := httptest.NewRequest(http.MethodPost, "/interactions",
		strings.NewReader(`{"type":1}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound && rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /interactions = %d; want 404 or 405", rec.Code)
	}
}

func signedInteraction(t *testing.T, priv ed25519.PrivateKey,
	body string) *http.Request {

	t.Helper()
	const timestamp = "1700000000"
	sig := ed25519.Sign(priv, []byte(timestamp+body))
	req := httptest.NewRequest(http.MethodPost, "/interactions",
		strings.NewReader(body))
	req.Header.Set("X-Signature-Ed25519", hex.EncodeToString(sig))
	req.Header.Set("X-Signature-Timestamp", timestamp)

	return req
}

func TestInteractions(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	rt := newTestRuntime(t, testLog)
	rt.cfg.DiscordPublicKey = hex.EncodeToString(pub)
	h := newServer(rt).routes()

	cases := []struct {
		name     string
		body     string
		contains string
	}{
		{"ping", `{"type":1}`, ""},
		{"pairings", `{"type":2,"data":{"name":"swiss","options":[{"name":"pairings","type":1}]}}`,
			"Pairings for Round 2:"},
		{"standings", `{"type":2,"data":{"name":"swiss","options":[{"name":"standings","type":1}]}}`,
			"Standings prior to Round 2:"},
		{"unknown subcommand", `{"type":2,"data":{"name":"swiss","options":[{"name":"crosstable","type":1}]}}`,
			"unknown subcommand"},
		{"unknown command", `{"type":2,"data":{"name":"td","options":[{"name":"pairings","type":1}]}}`,
			"unknown command"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, signedInteraction(t, priv, c.body))
			if rec.Code != http.StatusOK {
				t.Fatalf("POST /interactions = %d; want 200: %s", rec.Code,
					rec.Body.String())
			}
			var resp discordgo.InteractionResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unable to decode response: %v", err)
			}
			if c.contains == "" {
				if resp.Type != discordgo.InteractionResponsePong {
					t.Errorf("response type = %v; want pong", resp.Type)
				}
				return
			}
			if resp.Data == nil || !strings.Contains(resp.Data.Content,
				c.contains) {
				t.Errorf("response = %s; want content with %q",
					rec.Body.String(), c.contains)
			}
		})
	}
}

func TestInteractionsRejectBadSignature(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	_, otherPriv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	rt := newTestRuntime(t, testLog)
	rt.cfg.DiscordPublicKey = hex.EncodeToString(pub)
	h := newServer(rt).routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, signedInteraction(t, otherPriv, `{"type":1}`))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("POST /interactions = %d; want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "signature") {
		t.Errorf("body = %q; want a signature error", rec.Body.String())
	}
}
