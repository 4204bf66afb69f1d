package internal

import (
	"go.uber.org/fx"

	"maison/internal/admin"
	"maison/internal/auth"
	"maison/internal/cart"
	"maison/internal/catalog"
	"maison/internal/checkout"
	"maison/internal/command"
	"maison/internal/orders"
	"maison/internal/profile"
	"maison/internal/session"
	"maison/internal/telegram"
	"maison/internal/telegramlink"
	"maison/internal/view"
)

var Module = fx.Options(
	auth.Module,
	orders.Module,
	telegram.Module,
	session.Module,
	catalog.Module,
	cart.Module,
	checkout.Module,
	admin.Module,
	telegramlink.Module,
	profile.Module,
	view.Module,
	command.Module,
)
