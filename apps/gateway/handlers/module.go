package handlers

import (
	"go.uber.org/fx"

	"maison/apps/gateway/handlers/admin"
	"maison/apps/gateway/handlers/auth"
	"maison/apps/gateway/handlers/cart"
	"maison/apps/gateway/handlers/catalog"
	"maison/apps/gateway/handlers/checkout"
	"maison/apps/gateway/handlers/middleware"
	"maison/apps/gateway/handlers/profile"
	"maison/apps/gateway/handlers/telegram"
	"maison/apps/gateway/handlers/view"
)

var Module = fx.Options(
	middleware.Module,
	auth.Module,
	cart.Module,
	catalog.Module,
	view.Module,
	checkout.Module,
	profile.Module,
	telegram.Module,
	admin.Module,
)
