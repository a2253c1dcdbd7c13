package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/zaenextech/website/internal/handler"
	"github.com/zaenextech/website/internal/middleware"
)

// RouterOptions carry the configuration the handler chain depends on.
type RouterOptions struct {
	CanonicalHost string
	Production    bool
	CORSOrigins   []string
	MaxBodyBytes  int64
}

// NewRouter builds the full handler chain. Middleware is applied in order:
//
//	RequestID → RealIP → SlogLogger → Recoverer → StripSlashes → GetHead → MaxBodySize →
//	canonical-host redirect → static files (with CORS) → page router
//
// The redirect runs before static lookup, and a static hit stops the chain
// before the page router. CORS headers are only added to static hits.
func NewRouter(site *Site, log *slog.Logger, opts RouterOptions) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)
	r.Use(chimiddleware.GetHead)
	if opts.MaxBodyBytes > 0 {
		// Only methods a route accepts are limited; anything else gets the 404.
		r.Use(middleware.NewMaxBodySizeHandler(opts.MaxBodyBytes, http.MethodGet, http.MethodHead))
	}
	r.Use(middleware.NewCanonicalHostRedirect(opts.CanonicalHost, opts.Production))
	r.Use(middleware.NewStaticHandler(site.Assets, opts.CORSOrigins))

	srv := handler.NewServer(handler.Deps{
		Services:      site.Catalog,
		Projects:      site.Projects,
		Pages:         site.Pages,
		Assets:        site.Assets,
		Logger:        log,
		CanonicalHost: opts.CanonicalHost,
	})
	srv.Routes(r)

	return r
}
