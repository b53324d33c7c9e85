package server

import (
	"log"

	"github.com/MKhiriev/mailspring-api/internal/logger"
)

// newServerErrorLog routes net/http's internal errors (TLS handshakes,
// broken connections) into the structured log.
func newServerErrorLog(l *logger.Logger) *log.Logger {
	return log.New(l.With().Str("component", "net/http").Logger(), "", 0)
}
