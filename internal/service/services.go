package service

import (
	"github.com/MKhiriev/mailspring-api/internal/adapter"
	"github.com/MKhiriev/mailspring-api/internal/config"
	"github.com/MKhiriev/mailspring-api/internal/logger"
	"github.com/MKhiriev/mailspring-api/internal/store"
)

type Services struct {
	AppInfoService AppInfoService
	StatusService  StatusService
	AccountService AccountService

	// KeyboardService is nil when keystroke injection is disabled.
	KeyboardService KeyboardService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfo, err := NewAppInfoService(cfg.Mailspring, logger)
	if err != nil {
		return nil, err
	}

	services := &Services{
		AppInfoService: appInfo,
		StatusService:  NewStatusService(storages.ConfigDocumentStorage, appInfo),
		AccountService: NewAccountService(storages.ConfigDocumentStorage),
	}

	if cfg.Keyboard.Disabled {
		logger.Info().Msg("keystroke injection disabled")
		return services, nil
	}

	services.KeyboardService = NewKeyboardService(adapter.NewKeystrokeInjector(cfg.Keyboard))
	return services, nil
}
