// Package web embeds the site's HTML templates, static assets and Markdown
// content so the server ships as a single binary with no runtime path
// dependencies.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var templates embed.FS

// static is embedded recursively: css/, js/, img/ and the root-level files
// (favicon.ico, robots.txt, sitemap.xml, site.webmanifest).
//
//go:embed static
var static embed.FS

//go:embed content/projects/*.md
var content embed.FS

// TemplatesFS returns the page templates rooted at templates/.
func TemplatesFS() fs.FS { return mustSub(templates, "templates") }

// StaticFS returns the asset root served at "/".
func StaticFS() fs.FS { return mustSub(static, "static") }

// ContentFS returns the Markdown content root; write-ups live under projects/.
func ContentFS() fs.FS { return mustSub(content, "content") }

// mustSub panics only if dir is missing from the embedded tree, which the
// go:embed directives above rule out at compile time.
func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
