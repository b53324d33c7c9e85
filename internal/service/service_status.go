package service

import (
	"context"
	"path/filepath"

	"github.com/MKhiriev/mailspring-api/internal/store"
	"github.com/MKhiriev/mailspring-api/models"
)

type statusService struct {
	documents store.ConfigDocumentStorage
	appInfo   AppInfoService
}

func NewStatusService(documents store.ConfigDocumentStorage, appInfo AppInfoService) StatusService {
	return &statusService{
		documents: documents,
		appInfo:   appInfo,
	}
}

// GetStatus checks existence separately from Locate, so the file may appear
// or vanish between the two checks.
func (s *statusService) GetStatus(ctx context.Context) (models.Status, error) {
	path := s.documents.Locate(ctx)

	configured, err := s.documents.Exists(ctx, path)
	if err != nil {
		return models.Status{}, err
	}

	return models.Status{
		Status:     models.StatusRunning,
		ConfigPath: filepath.Dir(path),
		Configured: configured,
		Version:    s.appInfo.GetAppVersion(ctx),
	}, nil
}
