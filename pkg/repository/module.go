package repository

import (
	"go.uber.org/fx"

	"maison/pkg/repository/session"
)

var Module = fx.Options(
	session.Module,
)
