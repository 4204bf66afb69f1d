package main

import (
	"go.uber.org/fx"

	"maison/apps/bot"
	"maison/apps/gateway"
	"maison/cmd/gateway/router"
	"maison/internal"
	"maison/pkg"
)

func main() {
	fx.New(
		gateway.Module,
		router.Module,
		pkg.Module,
		internal.Module,
		bot.Module,
	).Run()
}
