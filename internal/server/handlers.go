package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unbound-force/mcpreport/internal/badge"
	"github.com/unbound-force/mcpreport/internal/coverage"
	"github.com/unbound-force/mcpreport/internal/page"
	"github.com/unbound-force/mcpreport/internal/report"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// render buffers output so a failed render still yields a clean 500.
func (s *Server) render(w http.ResponseWriter, contentType string, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		s.log.Error("rendering report", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{"render failed"})
		return
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleHTML(w http.ResponseWriter, _ *http.Request) {
	s.render(w, "text/html; charset=utf-8", func(buf *bytes.Buffer) error {
		return report.WriteHTML(buf, page.New(), nil)
	})
}

func (s *Server) handleJSON(w http.ResponseWriter, _ *http.Request) {
	s.render(w, "application/json", func(buf *bytes.Buffer) error {
		return report.WriteJSON(buf, page.New(), s.cfg.Version)
	})
}

func (s *Server) handleYAML(w http.ResponseWriter, _ *http.Request) {
	s.render(w, "application/yaml", func(buf *bytes.Buffer) error {
		return report.WriteYAML(buf, page.New())
	})
}

// handleBadge serves a coverage badge for one component.
func (s *Server) handleBadge(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "component")
	rec, ok := coverage.Lookup(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{"unknown component"})
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(badge.SVG(rec.Coverage)))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
