package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/mailspring-api/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpControlPanelAdapter struct {
	client *resty.Client
}

func NewHTTPControlPanelAdapter(cfg HTTPClientConfig) ControlPanelAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://127.0.0.1:6379"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &httpControlPanelAdapter{client: cli}
}

func (h *httpControlPanelAdapter) Health(ctx context.Context) (models.Health, error) {
	var health models.Health
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.Health{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Health{}, err
	}

	return health, nil
}

func (h *httpControlPanelAdapter) Status(ctx context.Context) (models.Status, error) {
	var status models.Status
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/api/status")
	if err != nil {
		return models.Status{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Status{}, err
	}

	return status, nil
}
