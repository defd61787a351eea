//go:build wireinject
// +build wireinject

package app

import "github.com/google/wire"

var CoreInfraSet = wire.NewSet(
	LoadSettings,
	ProvideLogger,
	ProvidePresenters,
	NewMetricsRegistry,
	NewMetrics,
)

var HandlerSet = wire.NewSet(
	NewDispatcher,
	NewHandler,
)

var AppSet = wire.NewSet(
	CoreInfraSet,
	HandlerSet,
	wire.Struct(new(ApplicationOptions), "*"),
	NewApplication,
)
