package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/starpointai/starpoint-go/v1/logger"
)

// FXModule defines the Fx module for the metrics package.
// It provides the Metrics factory and registers lifecycle hooks that start
// and gracefully stop the optional Prometheus scrape endpoint.
//
// Dependencies required by this module:
// - A metrics.Config instance must be available in the dependency injection container
// - A logger.Logger instance for startup/shutdown logs
var FXModule = fx.Module("metrics",
	fx.Provide(NewMetrics),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle manages the startup and shutdown lifecycle of the
// Prometheus metrics HTTP server. When no server is configured (collect-only
// mode) the hooks are no-ops.
//
// Automatically invoked by the FXModule; does not need to be called directly.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if m.Server == nil {
				return nil
			}
			go func() {
				if err := m.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("metrics server terminated", err, nil)
				}
			}()
			log.Info("metrics server started", nil, map[string]interface{}{
				"address": m.Server.Addr,
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if m.Server == nil {
				return nil
			}
			log.Info("stopping metrics server", nil, nil)
			return m.Server.Shutdown(ctx)
		},
	})
}
