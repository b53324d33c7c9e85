package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows every origin. Preflight requests are answered here and
// never reach the router.
func withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})
}
