package di

import (
	"CashView/internal/domain/repository"
	"CashView/internal/handler/api"
	"CashView/internal/service/frankfurter"
	"CashView/internal/service/trading212"
	"CashView/internal/usecase"
	"CashView/pkg/config"
	xhttp "CashView/pkg/http"
	applogger "CashView/pkg/logger"
	"CashView/pkg/metrics"
	"CashView/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideBalanceSource creates the Trading 212 client.
func ProvideBalanceSource(cfg *config.Config) repository.BalanceSource {
	return trading212.New(cfg.Trading212.BaseURL, cfg.Trading212.Timeout)
}

// ProvideRateSource creates the Frankfurter FX client.
func ProvideRateSource(cfg *config.Config, m repository.Metrics) repository.RateSource {
	c := frankfurter.New(cfg.FX.BaseURL, cfg.FX.Timeout, cfg.FX.LookbackDays)
	c.SetMetrics(m)
	return c
}

// ProvideAggregator creates the balance aggregation use case.
func ProvideAggregator(
	cfg *config.Config,
	balances repository.BalanceSource,
	rates repository.RateSource,
	m repository.Metrics,
	logger *applogger.Logger,
) *usecase.BalanceAggregator {
	return usecase.NewBalanceAggregator(cfg, balances, rates, m, logger)
}

// ProvideHandler creates the HTTP handler for all routes.
func ProvideHandler(cfg *config.Config, logger *applogger.Logger, agg *usecase.BalanceAggregator) xhttp.Handler {
	return api.NewBalancesHandler(logger, agg, cfg.Web.Dir)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler xhttp.Handler, logger *applogger.Logger) *server.App {
	return server.New(cfg, handler, logger)
}
