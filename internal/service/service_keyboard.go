package service

import (
	"context"

	"github.com/MKhiriev/mailspring-api/internal/adapter"
	"github.com/MKhiriev/mailspring-api/internal/logger"
	"github.com/MKhiriev/mailspring-api/models"
)

type keyboardService struct {
	injector adapter.KeystrokeInjector
}

func NewKeyboardService(injector adapter.KeystrokeInjector) KeyboardService {
	return &keyboardService{injector: injector}
}

// TypeText rejects empty text before anything is spawned. The response never
// carries the typed text.
func (s *keyboardService) TypeText(ctx context.Context, text string) (models.TypeResponse, error) {
	if text == "" {
		return models.TypeResponse{}, ErrEmptyText
	}

	if err := s.injector.TypeText(ctx, text); err != nil {
		logger.FromContext(ctx).Err(err).Int("text_length", len(text)).Msg("typing text failed")
		return models.TypeResponse{}, err
	}

	return models.TypeResponse{
		Status: models.TypeStatusSent,
		Text:   models.MaskedText,
	}, nil
}
