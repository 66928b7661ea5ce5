//go:build wireinject
// +build wireinject

package di

import (
	"CashView/pkg/config"
	"CashView/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Upstream clients
		ProvideBalanceSource,
		ProvideRateSource,

		// Use case
		ProvideAggregator,

		// HTTP surface
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
