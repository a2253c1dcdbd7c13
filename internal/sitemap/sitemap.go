// Package sitemap generates the sitemaps.org XML document listing every
// public page of the site.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/zaenextech/website/internal/domain"
)

// Namespace is the sitemaps.org schema namespace.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []entry  `xml:"url"`
}

type entry struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Build renders the sitemap for baseURL: the fixed routes in table order,
// then one /services/<slug> entry per service in catalog order.
// baseURL must be an absolute http(s) URL; a trailing slash is ignored.
func Build(baseURL string, routes []domain.PageRoute, services []domain.ServiceRecord) ([]byte, error) {
	base, err := normalizeBase(baseURL)
	if err != nil {
		return nil, err
	}

	set := urlset{Xmlns: Namespace}
	for _, r := range routes {
		e := entry{Loc: base + r.Path, ChangeFreq: "monthly", Priority: "0.8"}
		if r.Path == "/" {
			e.ChangeFreq, e.Priority = "weekly", "1.0"
		}
		set.URLs = append(set.URLs, e)
	}
	for _, s := range services {
		set.URLs = append(set.URLs, entry{
			Loc:        base + "/services/" + url.PathEscape(s.Slug),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("sitemap.Build: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func normalizeBase(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("sitemap.Build: base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("sitemap.Build: base URL %q must be absolute http(s): %w", raw, domain.ErrValidation)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("sitemap.Build: base URL %q must not carry a query or fragment: %w", raw, domain.ErrValidation)
	}
	return strings.TrimSuffix(u.Scheme+"://"+u.Host+u.EscapedPath(), "/"), nil
}

// WriteFile writes data to path atomically, so a crawler never fetches a
// half-written sitemap.
func WriteFile(path string, data []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("sitemap.WriteFile: %w", err)
	}
	return nil
}
