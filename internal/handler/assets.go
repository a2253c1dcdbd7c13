package handler

import "net/http"

// explicitAsset pins a well-known root file to a fixed Content-Type.
type explicitAsset struct {
	path        string
	contentType string
}

var explicitAssets = []explicitAsset{
	{path: "/favicon.ico", contentType: "image/x-icon"},
	{path: "/robots.txt", contentType: "text/plain; charset=utf-8"},
	{path: "/sitemap.xml", contentType: "application/xml; charset=utf-8"},
	{path: "/site.webmanifest", contentType: "application/manifest+json; charset=utf-8"},
}

// handleAsset serves one explicit asset. The static middleware normally
// answers these paths first; this route guarantees the Content-Type when the
// router is reached directly and yields the generic 404 if the file is absent.
func (s *Server) handleAsset(a explicitAsset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.assets == nil {
			s.handleNotFound(w, r)
			return
		}
		f, ok := s.assets.Lookup(a.path)
		if !ok {
			s.handleNotFound(w, r)
			return
		}
		f.ServeAs(w, r, a.contentType)
	}
}
