package handler

import "net/http"

// handleHealth handles GET /healthz. It is a liveness probe: it always
// answers 200 "ok" and checks nothing.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "ok")
}
