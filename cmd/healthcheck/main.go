// Command healthcheck probes a running control panel and exits non-zero
// when /health does not answer. It reads the same configuration as the
// server, so it can be used as a container HEALTHCHECK without arguments.
package main

import (
	"context"
	"net"
	"os"
	"time"

	"github.com/MKhiriev/mailspring-api/internal/adapter"
	"github.com/MKhiriev/mailspring-api/internal/config"
	"github.com/MKhiriev/mailspring-api/internal/logger"
	"github.com/MKhiriev/mailspring-api/models"
)

const probeTimeout = 5 * time.Second

func main() {
	log := logger.NewLogger("mailspring-healthcheck")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	probe := adapter.NewHTTPControlPanelAdapter(adapter.HTTPClientConfig{
		BaseURL: probeURL(cfg.Server.HTTPAddress),
		Timeout: probeTimeout,
	})

	if err = check(ctx, probe, log); err != nil {
		log.Error().Err(err).Msg("unhealthy")
		os.Exit(1)
	}
}

// check fails only when /health fails. A broken status endpoint is reported
// but does not mark the container unhealthy.
func check(ctx context.Context, probe adapter.ControlPanelAdapter, log *logger.Logger) error {
	health, err := probe.Health(ctx)
	if err != nil {
		return err
	}
	if health.Status != models.HealthStatusOK {
		return errUnexpectedHealth
	}

	status, err := probe.Status(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("status endpoint failed")
		return nil
	}

	log.Info().
		Str("service", health.Service).
		Str("version", status.Version).
		Bool("configured", status.Configured).
		Msg("healthy")
	return nil
}

// probeURL turns a listen address into a URL reachable from the same host.
// Wildcard hosts are replaced by the loopback address.
func probeURL(listenAddress string) string {
	host, port, err := net.SplitHostPort(listenAddress)
	if err != nil {
		return "http://" + listenAddress
	}

	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port)
}
