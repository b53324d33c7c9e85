package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/mailspring-api/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx response into [ErrUnexpectedStatus], carrying
// the "error" field of the body when the panel sent one.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Error != "" {
		body = errResp.Error
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
}
