package handler

import (
	"github.com/MKhiriev/mailspring-api/internal/config"
	"github.com/MKhiriev/mailspring-api/internal/handler/http"
	"github.com/MKhiriev/mailspring-api/internal/logger"
	"github.com/MKhiriev/mailspring-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if services == nil {
		return nil, errNoServices
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Dashboard, logger),
	}, nil
}
