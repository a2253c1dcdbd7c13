// Package app assembles the website: it loads the immutable site data
// (catalog, project write-ups, templates, asset index) and builds the HTTP
// handler chain around the page router.
package app

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/zaenextech/website/internal/assets"
	"github.com/zaenextech/website/internal/catalog"
	"github.com/zaenextech/website/internal/content"
	"github.com/zaenextech/website/internal/render"
	"github.com/zaenextech/website/web"
)

// Site is everything a request may read. It is built once before the server
// starts and never modified afterwards.
type Site struct {
	Catalog  *catalog.Catalog
	Projects *content.Library
	Pages    *render.Engine
	Assets   *assets.Index
}

// LoadSite builds a Site from the embedded data. When assetDir is non-empty
// static files are indexed from that directory instead of the embedded copy.
func LoadSite(assetDir string) (*Site, error) {
	var static fs.FS = web.StaticFS()
	if assetDir != "" {
		info, err := os.Stat(assetDir)
		if err != nil {
			return nil, fmt.Errorf("app.LoadSite: asset dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("app.LoadSite: asset dir %s is not a directory", assetDir)
		}
		static = os.DirFS(assetDir)
	}

	cat, err := catalog.Embedded()
	if err != nil {
		return nil, fmt.Errorf("app.LoadSite: %w", err)
	}

	lib, err := content.Load(web.ContentFS())
	if err != nil {
		return nil, fmt.Errorf("app.LoadSite: %w", err)
	}

	idx, err := assets.Build(static, assets.DefaultTypeRules)
	if err != nil {
		return nil, fmt.Errorf("app.LoadSite: %w", err)
	}

	pages, err := render.New(web.TemplatesFS(), render.Options{AssetVersion: idx.Version()})
	if err != nil {
		return nil, fmt.Errorf("app.LoadSite: %w", err)
	}

	return &Site{Catalog: cat, Projects: lib, Pages: pages, Assets: idx}, nil
}
