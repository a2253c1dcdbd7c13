package middleware

import (
	"net/http"

	"github.com/zaenextech/website/internal/assets"
)

// NewStaticHandler returns a middleware that answers GET and HEAD requests
// naming a file in idx and stops the chain there. Everything else, including
// directory paths and CORS preflights, falls through to next.
//
// corsOrigins, when non-empty, adds CORS headers to file responses only; pages
// and 404s never carry them.
func NewStaticHandler(idx *assets.Index, corsOrigins []string) func(http.Handler) http.Handler {
	withCORS := NewCORSHandler(corsOrigins)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				if f, ok := idx.Lookup(r.URL.Path); ok {
					withCORS(f).ServeHTTP(w, r)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
