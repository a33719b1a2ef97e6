/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"bytes"
	"crypto/ed25519"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mikeb26/swisstd/report"
)

// server replays the configured log on every request so reports follow the
// log as it grows.
type server struct {
	rt        *runtime
	publicKey ed25519.PublicKey
}

func newServer(rt *runtime) *server {
	return &server{
		rt:        rt,
		publicKey: rt.cfg.PublicKey(),
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/", s.handleIndex)
	r.Get("/standings.txt", s.handleText)
	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.rt.cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead,
				http.MethodOptions},
			MaxAge: 300,
		}))
		r.Get("/pairings.json", s.handleJSON)
	})
	if s.publicKey != nil {
		r.Post("/interactions", s.handleInteraction)
	}

	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

// serveView renders through a buffer so a failed render never sends a
// partial 200.
func (s *server) serveView(w http.ResponseWriter, r *http.Request,
	contentType string, renderFn func(*bytes.Buffer, *report.View) error) {

	v, err := s.rt.buildView(r.Context(), false)
	if err != nil {
		log.Printf("swisstd.serve: %v %v: %v", r.Method, r.URL.Path, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := renderFn(&buf, v); err != nil {
		log.Printf("swisstd.serve: %v %v: render failed: %v", r.Method,
			r.URL.Path, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("swisstd.serve: failed to write resp: err:%v", err)
	}
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, "text/html; charset=utf-8",
		func(buf *bytes.Buffer, v *report.View) error {
			return report.HTML(buf, v)
		})
}

func (s *server) handleText(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, "text/plain; charset=utf-8",
		func(buf *bytes.Buffer, v *report.View) error {
			_, err := buf.WriteString(report.Text(v))
			return err
		})
}

func (s *server) handleJSON(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, "application/json",
		func(buf *bytes.Buffer, v *report.View) error {
			return report.JSON(buf, v)
		})
}
