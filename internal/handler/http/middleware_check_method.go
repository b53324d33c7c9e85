// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// CheckHTTPMethod is meant to be installed with [chi.Mux.MethodNotAllowed].
//
// chi calls it only when the path is a known route and the method is not
// registered for it. It answers 404 instead of chi's 405, so POST /health
// and GET /api/type look exactly like an unknown path. HEAD on GET routes
// never gets here; middleware.GetHead routes it to the GET handler first.
func CheckHTTPMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}
}
