package openai

import (
	"go.uber.org/fx"
)

// FXModule wires the OpenAI adapter into Fx. It expects a *Config, a
// *starpoint.Client and a *logger.Logger in the container.
var FXModule = fx.Module(
	"openai",

	fx.Provide(
		NewClient, // -> *Client
	),
)
