package starpoint

import (
	"go.uber.org/fx"
)

// FXModule wires the Starpoint client into Fx.
//
// It provides:
//   - *Config  (NewConfig, from environment variables)
//   - *Client  (NewClient)
//
// The client holds no resources beyond the shared HTTP transport, so no
// lifecycle hooks are needed.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    starpoint.FXModule,
//	    fx.Provide(logger.NewConfig),
//	    fx.Invoke(func(c *starpoint.Client) { ... }),
//	)
var FXModule = fx.Module(
	"starpoint",

	fx.Provide(
		NewConfig, // -> *Config
		NewClient, // -> *Client
	),
)
