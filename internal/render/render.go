// Package render parses the site's HTML templates and executes them.
// Every page template is parsed together with layout.html so the layout
// wraps every page; a page fills the "title" and "content" blocks.
package render

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"

	"github.com/zaenextech/website/internal/content"
	"github.com/zaenextech/website/internal/domain"
)

// Pages lists the templates a site must provide, without the .html suffix.
var Pages = []string{
	"index",
	"about",
	"services",
	"projects",
	"contact",
	"project-pcb",
	"service-detail",
}

// PageData is the view model passed to every template.
type PageData struct {
	// ActivePage is the navigation tag highlighted in the header.
	ActivePage string

	// Data is the looked-up service on /services/{slug}; nil elsewhere.
	Data *domain.ServiceRecord

	// Services and Projects feed listing sections.
	Services []domain.ServiceRecord
	Projects []content.Page

	// Project is the write-up shown on a project detail page.
	Project *content.Page

	// CanonicalURL is the absolute https URL of the page on the canonical host.
	CanonicalURL string
}

// Engine holds the parsed page set. It is read-only after New returns and
// safe for concurrent use.
type Engine struct {
	templates map[string]*template.Template
}

// Options configure template helpers.
type Options struct {
	// AssetVersion is appended as ?v= to URLs produced by the asset helper.
	// Empty leaves asset URLs untouched.
	AssetVersion string
}

func funcs(opts Options) template.FuncMap {
	return template.FuncMap{
		"asset": func(path string) string {
			if opts.AssetVersion == "" {
				return path
			}
			return path + "?v=" + url.QueryEscape(opts.AssetVersion)
		},
		"activeClass": func(active, tag string) string {
			if active == tag {
				return "active"
			}
			return ""
		},
	}
}

// New parses layout.html plus every name in Pages from fsys.
func New(fsys fs.FS, opts Options) (*Engine, error) {
	e := &Engine{templates: make(map[string]*template.Template, len(Pages))}
	fm := funcs(opts)
	for _, page := range Pages {
		t, err := template.New("layout.html").Funcs(fm).ParseFS(fsys, "layout.html", page+".html")
		if err != nil {
			return nil, fmt.Errorf("render.New: parsing %s: %w", page, err)
		}
		e.templates[page] = t
	}
	return e, nil
}

// Render executes the named page inside the layout and writes it to w.
func (e *Engine) Render(w io.Writer, name string, data PageData) error {
	t, ok := e.templates[name]
	if !ok {
		return fmt.Errorf("render: template %q: %w", name, domain.ErrNotFound)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

// Has reports whether name is a parsed page.
func (e *Engine) Has(name string) bool {
	_, ok := e.templates[name]
	return ok
}
