package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/halcyon-data/std/pkg/logger"
)

// FXModule defines the Fx module for the metrics package.
// It provides the Metrics factory to the dependency injection container and
// manages startup and graceful shutdown of the Prometheus HTTP server.
//
// Dependencies required by this module:
//   - A metrics.Config instance must be available in the container
//   - A *logger.LoggerClient for lifecycle logging
var FXModule = fx.Module("metrics",
	fx.Provide(NewMetrics),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle manages the startup and shutdown lifecycle
// of the Prometheus metrics HTTP server.
//
// OnStart launches the server in a background goroutine; OnStop shuts it
// down gracefully. This keeps metrics scrapeable for the application's whole
// lifetime without blocking startup.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.LoggerClient) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting Prometheus metrics server", nil, map[string]interface{}{
					"address": m.Server.Addr,
				})

				if err := m.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("Prometheus metrics server failed", err, map[string]interface{}{
						"address": m.Server.Addr,
					})
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Prometheus metrics server", nil, nil)
			return m.Server.Shutdown(ctx)
		},
	})
}
