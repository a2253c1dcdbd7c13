// Package testutil provides shared helpers for tests that need the fully
// assembled website. Everything is built from the embedded templates, catalog
// and assets, so no files or network are required.
package testutil

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zaenextech/website/internal/app"
)

// NewSite loads the embedded site and fails the test on any error.
func NewSite(t *testing.T) *app.Site {
	t.Helper()

	site, err := app.LoadSite("")
	if err != nil {
		t.Fatalf("testutil.NewSite: %v", err)
	}
	return site
}

// NewHandler returns the complete handler chain over the embedded site with
// logging discarded.
func NewHandler(t *testing.T, opts app.RouterOptions) http.Handler {
	t.Helper()
	return app.NewRouter(NewSite(t), DiscardLogger(), opts)
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Get performs a GET against h and returns the recorded response.
// Pass host "" to keep httptest's default (example.com).
func Get(t *testing.T, h http.Handler, host, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if host != "" {
		req.Host = host
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
