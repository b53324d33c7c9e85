package http

import (
	"github.com/MKhiriev/mailspring-api/internal/config"
	"github.com/MKhiriev/mailspring-api/internal/logger"
	"github.com/MKhiriev/mailspring-api/internal/service"
)

type Handler struct {
	services  *service.Services
	dashboard *dashboardPage

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Dashboard, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		dashboard: newDashboardPage(cfg),
		logger:    logger,
	}
}
