package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaenextech/website/internal/middleware"
)

// drainHandler reads the whole body and records what happened.
type drainHandler struct {
	called bool
	n      int
	err    error
}

func (d *drainHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.called = true
	var b []byte
	b, d.err = io.ReadAll(r.Body)
	d.n = len(b)
	w.WriteHeader(http.StatusOK)
}

func TestMaxBodySizeHandler(t *testing.T) {
	const limit = 64

	cases := []struct {
		name          string
		method        string
		limited       []string
		body          string
		contentLength int64 // -1 for unknown length
		wantStatus    int
		wantCalled    bool
		wantReadErr   bool
	}{
		{name: "GET without body", method: http.MethodGet, wantStatus: http.StatusOK, wantCalled: true},
		{name: "body within limit", method: http.MethodPost, body: strings.Repeat("x", limit), contentLength: limit, wantStatus: http.StatusOK, wantCalled: true},
		{name: "declared length over limit", method: http.MethodPost, body: strings.Repeat("x", limit+1), contentLength: limit + 1, wantStatus: http.StatusRequestEntityTooLarge},
		{name: "unknown length over limit", method: http.MethodPost, body: strings.Repeat("x", 4*limit), contentLength: -1, wantStatus: http.StatusOK, wantCalled: true, wantReadErr: true},
		{name: "limited method over limit", method: http.MethodGet, limited: []string{http.MethodGet}, body: strings.Repeat("x", limit+1), contentLength: limit + 1, wantStatus: http.StatusRequestEntityTooLarge},
		{name: "unlimited method passes through", method: http.MethodPost, limited: []string{http.MethodGet}, body: strings.Repeat("x", 4*limit), contentLength: 4 * limit, wantStatus: http.StatusOK, wantCalled: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next := &drainHandler{}
			h := middleware.NewMaxBodySizeHandler(limit, tc.limited...)(next)

			req := httptest.NewRequest(tc.method, "/contact", strings.NewReader(tc.body))
			if tc.body != "" {
				req.ContentLength = tc.contentLength
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCalled, next.called)
			if tc.wantReadErr {
				var tooLarge *http.MaxBytesError
				require.True(t, errors.As(next.err, &tooLarge))
				assert.EqualValues(t, limit, tooLarge.Limit)
				assert.Equal(t, limit, next.n)
			} else if tc.wantCalled {
				assert.NoError(t, next.err)
			}
		})
	}
}
