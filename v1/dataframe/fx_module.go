package dataframe

import (
	"go.uber.org/fx"
)

// FXModule wires the dataframe adapter into Fx. It expects a
// *starpoint.Client and a *logger.Logger in the container.
var FXModule = fx.Module(
	"dataframe",

	fx.Provide(
		NewClient, // -> *Client
	),
)
