package embedding

import (
	"go.uber.org/fx"
)

// FXModule wires the embedding client into Fx. It expects a
// *starpoint.Config and a *logger.Logger in the container, which the
// starpoint and logger modules provide.
var FXModule = fx.Module(
	"embedding",

	fx.Provide(
		NewClient, // -> *Client
	),
)
