package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware that adds CORS headers for the given
// origins. It wraps static file responses only (see NewStaticHandler), which
// are GET or HEAD, so those are the only methods advertised.
//
// With no origins it returns a pass-through: rs/cors treats an empty list as
// "allow every origin", which is never what an unset CORS_ORIGINS means here.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
