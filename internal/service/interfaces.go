package service

import (
	"context"

	"github.com/MKhiriev/mailspring-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppInfoService reports static facts about the control panel itself.
type AppInfoService interface {
	GetHealth(ctx context.Context) models.Health
	GetAppVersion(ctx context.Context) string
}

// StatusService computes a fresh [models.Status] on every call.
type StatusService interface {
	GetStatus(ctx context.Context) (models.Status, error)
}

// AccountService returns the account list under the config document's
// wildcard key. A missing file or missing key yields an empty list, never an
// error.
type AccountService interface {
	GetAccounts(ctx context.Context) (models.Accounts, error)
}

// KeyboardService types text into the virtual display.
type KeyboardService interface {
	TypeText(ctx context.Context, text string) (models.TypeResponse, error)
}
