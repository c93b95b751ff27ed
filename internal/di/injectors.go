//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"parkpulse/internal"
	"parkpulse/internal/controllers"
	"parkpulse/internal/livedata"
	"parkpulse/internal/providers"
	"parkpulse/internal/services"
	"parkpulse/internal/storage"
	"parkpulse/internal/structures"
	"parkpulse/internal/syncer"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewZstdCompressor,
		storage.NewObjectStore,
		storage.NewDocumentStore,
		livedata.NewClient,
		services.NewSyncService,
		services.NewUserService,
		syncer.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
