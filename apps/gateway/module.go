package gateway

import (
	"go.uber.org/fx"

	"maison/apps/gateway/handlers"
)

var Module = fx.Options(
	handlers.Module,
)
