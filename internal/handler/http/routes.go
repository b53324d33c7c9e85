package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.GetHead)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withCORS())
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/html"))

	router.Get("/", h.getDashboard)
	router.Get("/health", h.getHealth)
	router.Get("/api/status", h.getStatus)
	router.Get("/api/accounts", h.getAccounts)

	if h.services.KeyboardService != nil {
		router.Post("/api/type", h.typeText)
	}

	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}
