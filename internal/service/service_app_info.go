package service

import (
	"context"

	"github.com/MKhiriev/mailspring-api/internal/config"
	"github.com/MKhiriev/mailspring-api/internal/logger"
	"github.com/MKhiriev/mailspring-api/models"
)

type appInfoService struct {
	appVersion  string
	serviceName string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.Mailspring, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if cfg.ServiceName == "" {
		return nil, ErrServiceNameIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		serviceName: cfg.ServiceName,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetHealth(ctx context.Context) models.Health {
	return models.Health{Status: models.HealthStatusOK, Service: s.serviceName}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
