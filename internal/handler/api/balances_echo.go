package api

import (
	"net/http"
	"path/filepath"

	"CashView/internal/usecase"
	xhttp "CashView/pkg/http"
	xlogger "CashView/pkg/logger"

	"github.com/labstack/echo/v4"
)

// BalancesHandler exposes the aggregated balance report and the bundled
// dashboard. Response bodies on /balances and /healthz are fixed by the
// front-end contract and are written verbatim, unwrapped.
type BalancesHandler struct {
	logger *xlogger.Logger
	agg    *usecase.BalanceAggregator
	webDir string
}

func NewBalancesHandler(logger *xlogger.Logger, agg *usecase.BalanceAggregator, webDir string) *BalancesHandler {
	return &BalancesHandler{logger: logger, agg: agg, webDir: webDir}
}

func (h *BalancesHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/balances", h.Balances)

	if h.webDir != "" {
		e.File("/", filepath.Join(h.webDir, "index.html"))
		e.Static("/assets", h.webDir)
	}
}

// Healthz always reports ok; it checks nothing downstream.
func (h *BalancesHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *BalancesHandler) Balances(c echo.Context) error {
	report, err := h.agg.BuildReport(c.Request().Context())
	if err != nil {
		h.logger.Error("balance aggregation failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c, err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.JSON(http.StatusOK, report)
}
