package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/mailspring-api/internal/config"
	"github.com/MKhiriev/mailspring-api/internal/logger"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

type dashboardData struct {
	DesktopURL         string
	PollIntervalMillis int64
}

// dashboardPage is rendered once at construction; the page itself is
// static and does all of its work through the JSON endpoints.
type dashboardPage struct {
	body []byte
	err  error
}

func newDashboardPage(cfg config.Dashboard) *dashboardPage {
	var buf bytes.Buffer
	err := dashboardTemplate.Execute(&buf, dashboardData{
		DesktopURL:         cfg.DesktopURL,
		PollIntervalMillis: cfg.PollInterval.Milliseconds(),
	})

	return &dashboardPage{body: buf.Bytes(), err: err}
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	if h.dashboard.err != nil {
		writeError(w, r, h.dashboard.err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.dashboard.body); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing dashboard")
	}
}
