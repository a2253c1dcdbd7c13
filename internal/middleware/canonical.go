package middleware

import (
	"net/http"
	"strings"
)

// NewCanonicalHostRedirect returns a middleware that permanently redirects
// requests for www.<canonicalHost> to https://<canonicalHost>, keeping the
// original path and query. The Host comparison ignores case. When enabled is
// false the middleware is a pass-through; callers enable it in production only.
func NewCanonicalHostRedirect(canonicalHost string, enabled bool) func(http.Handler) http.Handler {
	www := "www." + canonicalHost
	return func(next http.Handler) http.Handler {
		if !enabled || canonicalHost == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.EqualFold(r.Host, www) {
				http.Redirect(w, r, "https://"+canonicalHost+r.URL.RequestURI(), http.StatusMovedPermanently)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
