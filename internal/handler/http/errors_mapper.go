package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/mailspring-api/internal/adapter"
	"github.com/MKhiriev/mailspring-api/internal/logger"
	"github.com/MKhiriev/mailspring-api/internal/service"
	"github.com/MKhiriev/mailspring-api/internal/store"
	"github.com/MKhiriev/mailspring-api/internal/utils"
	"github.com/MKhiriev/mailspring-api/models"
)

var errInvalidRequestBody = errors.New("invalid request body")

var errorStatusMap = map[error]int{
	errInvalidRequestBody: http.StatusBadRequest,
	service.ErrEmptyText:  http.StatusBadRequest,

	store.ErrStatConfigDocument:      http.StatusInternalServerError,
	store.ErrReadConfigDocument:      http.StatusInternalServerError,
	store.ErrMalformedConfigDocument: http.StatusInternalServerError,

	adapter.ErrKeystrokeFailed:  http.StatusInternalServerError,
	adapter.ErrKeystrokeTimeout: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with {"error": err.Error()}. The message is passed
// through verbatim and may contain local filesystem paths.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Msg("error writing error response")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
