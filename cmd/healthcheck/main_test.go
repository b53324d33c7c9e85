package main

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/mailspring-api/internal/logger"
	"github.com/MKhiriev/mailspring-api/internal/mock"
	"github.com/MKhiriev/mailspring-api/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestProbeURL(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{"0.0.0.0:6379", "http://127.0.0.1:6379"},
		{":6379", "http://127.0.0.1:6379"},
		{"[::]:6379", "http://127.0.0.1:6379"},
		{"10.0.0.5:8080", "http://10.0.0.5:8080"},
		{"localhost:6379", "http://localhost:6379"},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			assert.Equal(t, tt.want, probeURL(tt.address))
		})
	}
}

func TestCheck(t *testing.T) {
	healthy := models.Health{Status: models.HealthStatusOK, Service: "mailspring-api"}

	tests := []struct {
		name    string
		prepare func(m *mock.MockControlPanelAdapter)
		wantErr error
	}{
		{
			name: "healthy",
			prepare: func(m *mock.MockControlPanelAdapter) {
				m.EXPECT().Health(gomock.Any()).Return(healthy, nil)
				m.EXPECT().Status(gomock.Any()).Return(models.Status{Status: models.StatusRunning}, nil)
			},
		},
		{
			name: "status failure is tolerated",
			prepare: func(m *mock.MockControlPanelAdapter) {
				m.EXPECT().Health(gomock.Any()).Return(healthy, nil)
				m.EXPECT().Status(gomock.Any()).Return(models.Status{}, errors.New("boom"))
			},
		},
		{
			name: "health failure",
			prepare: func(m *mock.MockControlPanelAdapter) {
				m.EXPECT().Health(gomock.Any()).Return(models.Health{}, context.DeadlineExceeded)
			},
			wantErr: context.DeadlineExceeded,
		},
		{
			name: "unexpected health body",
			prepare: func(m *mock.MockControlPanelAdapter) {
				m.EXPECT().Health(gomock.Any()).Return(models.Health{Status: "starting"}, nil)
			},
			wantErr: errUnexpectedHealth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := mock.NewMockControlPanelAdapter(gomock.NewController(t))
			tt.prepare(probe)

			err := check(context.Background(), probe, logger.Nop())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
