// Package content renders the long-form project write-ups shown under
// /projects. Each write-up is a Markdown file with a YAML front matter block:
//
//	---
//	title: Custom STM32 Sensor Board
//	summary: One-line teaser used on the projects listing.
//	---
//	# Markdown body...
//
// Files are rendered to HTML once, when the Library is loaded.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"

	"github.com/zaenextech/website/internal/domain"
)

const frontMatterDelim = "---"

type frontMatter struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
}

// Page is a long-form project write-up rendered from Markdown.
type Page struct {
	Slug    string
	Title   string
	Summary string
	Body    template.HTML
}

// Library holds rendered project pages keyed by slug.
type Library struct {
	pages map[string]Page
	order []string
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

// Load renders every projects/*.md file in fsys. The slug of a page is its
// file name without extension. Pages are ordered by file name.
func Load(fsys fs.FS) (*Library, error) {
	names, err := fs.Glob(fsys, "projects/*.md")
	if err != nil {
		return nil, fmt.Errorf("content.Load: %w", err)
	}

	md := newMarkdown()
	lib := &Library{pages: make(map[string]Page, len(names))}
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("content.Load: %w", err)
		}
		slug := strings.TrimSuffix(path.Base(name), ".md")
		page, err := render(md, slug, raw)
		if err != nil {
			return nil, fmt.Errorf("content.Load %s: %w", name, err)
		}
		lib.pages[slug] = page
		lib.order = append(lib.order, slug)
	}
	return lib, nil
}

func render(md goldmark.Markdown, slug string, raw []byte) (Page, error) {
	if !domain.ValidSlug(slug) {
		return Page{}, fmt.Errorf("%w: %q is not a valid slug", domain.ErrValidation, slug)
	}

	meta, body, err := splitFrontMatter(raw)
	if err != nil {
		return Page{}, err
	}
	if meta.Title == "" {
		return Page{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return Page{}, fmt.Errorf("markdown: %w", err)
	}

	return Page{
		Slug:    slug,
		Title:   meta.Title,
		Summary: meta.Summary,
		// goldmark escapes raw HTML unless html.WithUnsafe is set.
		Body: template.HTML(buf.String()),
	}, nil
}

// splitFrontMatter separates the leading "---" delimited YAML block from the
// Markdown body.
func splitFrontMatter(raw []byte) (frontMatter, []byte, error) {
	var meta frontMatter
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	if !strings.HasPrefix(text, frontMatterDelim+"\n") {
		return meta, nil, fmt.Errorf("%w: missing front matter", domain.ErrValidation)
	}
	rest := text[len(frontMatterDelim)+1:]
	end := strings.Index(rest, "\n"+frontMatterDelim+"\n")
	if end < 0 {
		return meta, nil, fmt.Errorf("%w: unterminated front matter", domain.ErrValidation)
	}

	dec := yaml.NewDecoder(strings.NewReader(rest[:end]))
	dec.KnownFields(true)
	if err := dec.Decode(&meta); err != nil {
		return meta, nil, fmt.Errorf("%w: front matter: %v", domain.ErrValidation, err)
	}
	return meta, []byte(rest[end+len(frontMatterDelim)+2:]), nil
}

// Project returns the write-up stored under slug, or an error wrapping
// domain.ErrNotFound.
func (l *Library) Project(slug string) (Page, error) {
	p, ok := l.pages[slug]
	if !ok {
		return Page{}, fmt.Errorf("content.Project %q: %w", slug, domain.ErrNotFound)
	}
	return p, nil
}

// Projects returns every write-up ordered by slug.
func (l *Library) Projects() []Page {
	out := make([]Page, 0, len(l.order))
	for _, slug := range l.order {
		out = append(out, l.pages[slug])
	}
	return out
}
