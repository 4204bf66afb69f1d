package pkg

import (
	"go.uber.org/fx"

	"maison/pkg/apiclient"
	"maison/pkg/config"
	"maison/pkg/logger"
	"maison/pkg/metrics"
	"maison/pkg/reply"
	"maison/pkg/repository"
	"maison/pkg/storage"
	"maison/pkg/tgrouter"
)

var Module = fx.Options(
	config.Module,
	logger.Module,
	metrics.Module,
	storage.Module,
	repository.Module,
	apiclient.Module,
	reply.Module,
	tgrouter.Module,
)
