package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zaenextech/website/internal/domain"
	"github.com/zaenextech/website/internal/render"
)

const projectsPrefix = "/projects/"

// handlePage returns the handler for one entry of the fixed route table.
// Project detail routes (/projects/<slug>) also carry that write-up.
func (s *Server) handlePage(route domain.PageRoute) http.HandlerFunc {
	projectSlug := ""
	if strings.HasPrefix(route.Path, projectsPrefix) {
		projectSlug = strings.TrimPrefix(route.Path, projectsPrefix)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := s.pageData(r, route.ActivePage)
		if projectSlug != "" {
			if p, err := s.projects.Project(projectSlug); err == nil {
				data.Project = &p
			} else if !errors.Is(err, domain.ErrNotFound) {
				s.serverError(w, r, err)
				return
			}
		}
		s.render(w, r, route.Template, data)
	}
}

// handleServiceDetail handles GET /services/{slug}. The slug is
// percent-decoded before lookup. Unknown slugs get a plain-text 404; there is
// no other validation.
func (s *Server) handleServiceDetail(w http.ResponseWriter, r *http.Request) {
	slug, err := url.PathUnescape(chi.URLParam(r, "slug"))
	if err != nil {
		writeText(w, http.StatusNotFound, bodyServiceNotFound)
		return
	}
	rec, err := s.services.Lookup(slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeText(w, http.StatusNotFound, bodyServiceNotFound)
			return
		}
		s.serverError(w, r, err)
		return
	}

	data := s.pageData(r, domain.NavServices)
	data.Data = &rec
	s.render(w, r, "service-detail", data)
}

// pageData builds the view model shared by every page.
func (s *Server) pageData(r *http.Request, active string) render.PageData {
	d := render.PageData{
		ActivePage: active,
		Services:   s.services.All(),
		Projects:   s.projects.Projects(),
	}
	if s.canonicalHost != "" {
		d.CanonicalURL = "https://" + s.canonicalHost + r.URL.Path
	}
	return d
}

// render executes the page into a buffer so that a template failure turns
// into a clean 500 instead of a truncated page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data render.PageData) {
	var buf bytes.Buffer
	if err := s.pages.Render(&buf, name, data); err != nil {
		s.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
