package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/mailspring-api/models"
)

// maxTypeRequestSize caps the body of POST /api/type.
const maxTypeRequestSize = 64 << 10

// typeText answers only after the typing tool has exited. The request context
// is handed down, so a client that disconnects kills the tool.
func (h *Handler) typeText(w http.ResponseWriter, r *http.Request) {
	var req models.TypeRequest

	// an empty body is a request without text, not a decoding failure
	err := json.NewDecoder(io.LimitReader(r.Body, maxTypeRequestSize)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, fmt.Errorf("%w: %w", errInvalidRequestBody, err))
		return
	}

	resp, err := h.services.KeyboardService.TypeText(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, resp)
}
