// Package assets indexes the static asset root (CSS, JS, images, favicon,
// robots.txt, sitemap.xml, site.webmanifest) and serves individual files with
// long-lived caching and strong validators.
//
// The index is built once from an fs.FS and is read-only afterwards.
package assets

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
)

// MaxAge is the cache lifetime sent with every asset.
const MaxAge = 30 * 24 * time.Hour

// TypeRule forces a Content-Type for asset names matching Pattern
// (doublestar syntax, matched against the slash-separated name relative to
// the asset root).
type TypeRule struct {
	Pattern     string
	ContentType string
}

// DefaultTypeRules pin the well-known root files to fixed types, independent
// of the host's MIME table.
var DefaultTypeRules = []TypeRule{
	{Pattern: "favicon.ico", ContentType: "image/x-icon"},
	{Pattern: "robots.txt", ContentType: "text/plain; charset=utf-8"},
	{Pattern: "**/*sitemap.xml", ContentType: "application/xml; charset=utf-8"},
	{Pattern: "**/*site.webmanifest", ContentType: "application/manifest+json; charset=utf-8"},
}

// File is one indexed asset.
type File struct {
	Name        string // relative to the asset root, no leading slash
	ContentType string
	ETag        string // strong, quoted
	data        []byte
}

// Index maps request paths to files.
type Index struct {
	files   map[string]*File
	version string
}

// Build walks fsys and indexes every regular file. Hidden files (leading dot
// in any path element) are skipped.
func Build(fsys fs.FS, rules []TypeRule) (*Index, error) {
	for _, r := range rules {
		if !doublestar.ValidatePattern(r.Pattern) {
			return nil, fmt.Errorf("assets.Build: invalid pattern %q", r.Pattern)
		}
	}

	idx := &Index{files: map[string]*File{}}
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if name != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		sum := sha256.Sum256(data)
		idx.files[name] = &File{
			Name:        name,
			ContentType: contentType(name, data, rules),
			ETag:        strconv.Quote(hex.EncodeToString(sum[:16])),
			data:        data,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets.Build: %w", err)
	}
	idx.version = computeVersion(idx.files)
	return idx, nil
}

func contentType(name string, data []byte, rules []TypeRule) string {
	for _, r := range rules {
		if ok, _ := doublestar.Match(r.Pattern, name); ok {
			return r.ContentType
		}
	}
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}

// computeVersion derives a stable identifier from the set of asset ETags, so
// the same tree always yields the same version and any byte change yields a
// new one.
func computeVersion(files map[string]*File) string {
	names := make([]string, 0, len(files))
	for n := range files {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, n := range names {
		b.WriteString(n)
		b.WriteByte(0)
		b.WriteString(files[n].ETag)
		b.WriteByte(0)
	}
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(b.String()))
	return id.String()[:8]
}

// Lookup resolves a URL path to an asset. Directory paths, the root and
// paths that do not name an indexed file report false.
func (idx *Index) Lookup(urlPath string) (*File, bool) {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		return nil, false
	}
	f, ok := idx.files[name]
	return f, ok
}

// Version identifies the current asset tree; templates append it to asset
// URLs as a cache-busting query string.
func (idx *Index) Version() string {
	return idx.version
}

// Len reports the number of indexed files.
func (idx *Index) Len() int {
	return len(idx.files)
}

// ServeHTTP writes the file with its own Content-Type.
func (f *File) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.ServeAs(w, r, f.ContentType)
}

// ServeAs writes the file with the given Content-Type, a 30-day
// Cache-Control and the file's ETag. Conditional requests (If-None-Match),
// HEAD and byte ranges are answered by http.ServeContent.
func (f *File) ServeAs(w http.ResponseWriter, r *http.Request, contentType string) {
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Cache-Control", "public, max-age="+strconv.Itoa(int(MaxAge.Seconds())))
	h.Set("ETag", f.ETag)
	http.ServeContent(w, r, f.Name, time.Time{}, bytes.NewReader(f.data))
}
