// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
)

// apiNotFound answers unknown API paths and methods. chi's default 405 is
// replaced with the same 404 envelope, so callers cannot probe which methods
// a route accepts.
func apiNotFound(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, http.StatusNotFound, msgNotFound)
}

// notFound serves the static site for non-API GET and HEAD requests and the
// 404 envelope for everything else.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if isAPIPath(r.URL.Path) || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		apiNotFound(w, r)
		return
	}
	h.serveStatic(w, r)
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}
