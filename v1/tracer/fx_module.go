package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/starpointai/starpoint-go/v1/logger"
)

// FXModule provides an Fx module that configures distributed tracing.
// It registers the tracer client with the dependency injection system and
// sets up lifecycle hooks that flush pending spans on shutdown.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    fx.Provide(tracer.NewConfig),
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers shutdown hooks for the tracer with the FX
// lifecycle, ensuring traces are flushed to exporters before termination.
//
// Automatically invoked by the FXModule; does not need to be called directly.
func RegisterTracerLifecycle(lc fx.Lifecycle, t *Tracer, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down tracer", nil, nil)
			if t.tracer == nil {
				return nil
			}
			return t.tracer.Shutdown(ctx)
		},
	})
}
