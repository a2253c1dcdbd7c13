// Package handler implements the HTTP handlers of the website: the fixed
// pages, service detail pages, explicit asset routes, the health check and
// the plain-text 404. All handlers are methods on Server; Routes registers
// them on a chi router.
package handler

import (
	"io"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/zaenextech/website/internal/assets"
	"github.com/zaenextech/website/internal/content"
	"github.com/zaenextech/website/internal/domain"
	"github.com/zaenextech/website/internal/render"
)

// ServiceCatalog is the read-only service table the handlers depend on.
// Defining it here, in the consumer package, lets tests inject a fake.
type ServiceCatalog interface {
	Lookup(slug string) (domain.ServiceRecord, error)
	All() []domain.ServiceRecord
}

// ProjectLibrary supplies the rendered project write-ups.
type ProjectLibrary interface {
	Project(slug string) (content.Page, error)
	Projects() []content.Page
}

// Renderer executes a named page template.
type Renderer interface {
	Render(w io.Writer, name string, data render.PageData) error
}

// Deps are the collaborators of a Server. All of them are built once at
// startup and never mutated, so a Server is safe for concurrent use.
type Deps struct {
	Services      ServiceCatalog
	Projects      ProjectLibrary
	Pages         Renderer
	Assets        *assets.Index
	Logger        *slog.Logger
	CanonicalHost string
}

// Server holds the dependencies shared by every handler.
type Server struct {
	services      ServiceCatalog
	projects      ProjectLibrary
	pages         Renderer
	assets        *assets.Index
	log           *slog.Logger
	canonicalHost string
}

// NewServer constructs the Server. A nil Logger falls back to slog.Default().
func NewServer(d Deps) *Server {
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		services:      d.Services,
		projects:      d.Projects,
		pages:         d.Pages,
		assets:        d.Assets,
		log:           log,
		canonicalHost: d.CanonicalHost,
	}
}

// Routes registers every route on r, including the catch-all 404 that also
// answers methods no route accepts.
func (s *Server) Routes(r chi.Router) {
	for _, route := range domain.Routes() {
		r.Get(route.Path, s.handlePage(route))
	}
	r.Get("/services/{slug}", s.handleServiceDetail)
	r.Get("/healthz", s.handleHealth)

	for _, a := range explicitAssets {
		r.Get(a.path, s.handleAsset(a))
	}

	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleNotFound)
}
