package store

import (
	"github.com/MKhiriev/mailspring-api/internal/config"
	"github.com/MKhiriev/mailspring-api/internal/logger"
)

type Storages struct {
	ConfigDocumentStorage ConfigDocumentStorage
}

func NewStorages(cfg config.Mailspring, logger *logger.Logger) *Storages {
	logger.Info().
		Str("dev_dir", cfg.DevConfigDir()).
		Str("prod_dir", cfg.ProdConfigDir()).
		Msg("creating storages...")

	return &Storages{
		ConfigDocumentStorage: NewConfigDocumentStorage(cfg),
	}
}
