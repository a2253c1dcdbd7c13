package handler

import (
	"net/http"
)

const (
	bodyNotFound        = "Not found"
	bodyServiceNotFound = "Service not found"
)

// writeText writes a plain-text response.
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// handleNotFound is the catch-all for paths no route or static file matched.
func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusNotFound, bodyNotFound)
}

// serverError logs err and answers 500. Nothing has been written to w yet
// because pages are rendered into a buffer first.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "render failed",
		"path", r.URL.Path,
		"error", err,
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
