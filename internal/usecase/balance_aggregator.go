package usecase

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"
	"time"

	"CashView/internal/domain/models"
	drepo "CashView/internal/domain/repository"
	"CashView/pkg/config"
	xhttp "CashView/pkg/http"
	applogger "CashView/pkg/logger"
	"CashView/pkg/util"
)

// BalanceAggregator builds the /balances report: it fans out one fetch per
// configured account plus the two FX queries, folds results into per-group
// and grand totals, and assembles the sorted payload. All state is
// request-local; nothing persists between calls.
type BalanceAggregator struct {
	cfg      *config.Config
	balances drepo.BalanceSource
	rates    drepo.RateSource
	metrics  drepo.Metrics
	logger   *applogger.Logger

	now func() time.Time
}

func NewBalanceAggregator(
	cfg *config.Config,
	balances drepo.BalanceSource,
	rates drepo.RateSource,
	metrics drepo.Metrics,
	logger *applogger.Logger,
) *BalanceAggregator {
	return &BalanceAggregator{
		cfg:      cfg,
		balances: balances,
		rates:    rates,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

type fetchResult struct {
	snap *models.AccountSnapshot
	err  error
}

// entry pairs an output row with its sort key. Error rows carry -Inf so they
// always land after every successful row.
type entry struct {
	res models.AccountResult
	key float64
}

// BuildReport executes one full aggregation pass. Account fetches and the
// two FX queries run concurrently and independently; each account failure is
// isolated to its own entry. The only hard failure is context cancellation.
func (a *BalanceAggregator) BuildReport(ctx context.Context) (*models.BalanceReport, error) {
	start := a.now()

	results := make([]fetchResult, len(a.cfg.Accounts))
	var usdToGBP *float64
	var fxSnap *models.FxSnapshot

	var wg sync.WaitGroup
	for i := range a.cfg.Accounts {
		wg.Add(1)
		go func(i int, acc config.AccountConfig) {
			defer wg.Done()
			snap, err := a.balances.FetchCash(ctx, models.AccountCredential{
				KeyID:  acc.KeyID,
				Secret: acc.Secret,
			})
			results[i] = fetchResult{snap: snap, err: err}
		}(i, a.cfg.Accounts[i])
	}

	// The two FX queries fire exactly once per report, never per account.
	wg.Add(2)
	go func() {
		defer wg.Done()
		r, err := a.rates.Rate(ctx, "USD", "GBP")
		if err != nil {
			// Degraded: USD amounts pass through unconverted.
			a.metrics.RecordError("fx_rate")
			a.logger.Warn("usd->gbp rate unavailable, conversion skipped", applogger.Error(err))
			return
		}
		usdToGBP = &r
	}()
	go func() {
		defer wg.Done()
		s, err := a.rates.SnapshotFromBase(ctx, a.cfg.FX.ReportBase, a.cfg.FX.ReportTargets)
		if err != nil {
			a.metrics.RecordError("fx_snapshot")
			a.logger.Warn("fx snapshot unavailable", applogger.Error(err))
			return
		}
		fxSnap = s
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grand := models.PersonTotals{}
	byPerson := make(map[string]*models.PersonTotals)
	var aliasOrder []string
	perAlias := make(map[string][]entry)

	for i, acc := range a.cfg.Accounts {
		alias := a.cfg.Alias(acc.Person)
		tot, ok := byPerson[alias]
		if !ok {
			tot = &models.PersonTotals{}
			byPerson[alias] = tot
			aliasOrder = append(aliasOrder, alias)
		}

		if err := results[i].err; err != nil {
			a.metrics.RecordFetch(acc.Person, acc.Account, "error")
			a.metrics.RecordError("account_fetch")
			a.logger.Warn("account fetch failed",
				applogger.String("person", acc.Person),
				applogger.String("account", acc.Account),
				applogger.Error(err),
			)
			perAlias[alias] = append(perAlias[alias], entry{
				res: models.AccountResult{Person: alias, Account: acc.Account, Error: errorMessage(err)},
				key: math.Inf(-1),
			})
			continue
		}
		a.metrics.RecordFetch(acc.Person, acc.Account, "ok")

		snap := results[i].snap
		free := snap.Free
		portfolio := snap.Portfolio()
		total := snap.Total

		// Per-account currency flag from config; one shared USD->GBP rate
		// applied uniformly to every USD-denominated account.
		fx := 1.0
		if acc.Currency == "USD" && usdToGBP != nil {
			fx = *usdToGBP
		}

		tot.FreeGBP += free * fx
		tot.PortfolioGBP += portfolio * fx
		tot.TotalGBP += total * fx
		grand.FreeGBP += free * fx
		grand.PortfolioGBP += portfolio * fx
		grand.TotalGBP += total * fx

		perAlias[alias] = append(perAlias[alias], entry{
			res: models.AccountResult{
				Person:          alias,
				Account:         acc.Account,
				DisplayCurrency: acc.Currency,
				Free:            &free,
				Portfolio:       &portfolio,
				Total:           &total,
			},
			key: total * fx,
		})
	}

	// Flatten group by group in first-seen order, then sort once: largest
	// GBP-equivalent total first, error rows last, stable within ties.
	entries := make([]entry, 0, len(a.cfg.Accounts))
	for _, alias := range aliasOrder {
		entries = append(entries, perAlias[alias]...)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key > entries[j].key
	})
	accounts := make([]models.AccountResult, len(entries))
	for i, e := range entries {
		accounts[i] = e.res
	}

	if fxSnap == nil {
		fxSnap = emptySnapshot(a.cfg.FX.ReportTargets)
	}

	// Report-currency grand totals are derived from the GBP grand total and
	// the dated snapshot; they are not sums of native per-account values.
	grandTotals := make(map[string]*float64, len(a.cfg.FX.ReportTargets)+1)
	base := grand.TotalGBP
	grandTotals[a.cfg.FX.ReportBase] = &base
	a.metrics.RecordGrandTotal(a.cfg.FX.ReportBase, base)
	for _, t := range a.cfg.FX.ReportTargets {
		if r := fxSnap.Rates[t]; r != nil {
			v := base * *r
			grandTotals[t] = &v
			a.metrics.RecordGrandTotal(t, v)
		} else {
			grandTotals[t] = nil
		}
	}

	a.metrics.RecordLatency("build_report", time.Since(start).Seconds())

	return &models.BalanceReport{
		AsOf:     util.ISOTimestamp(a.now()),
		Accounts: accounts,
		Summary: models.Summary{
			Grand:    grand,
			ByPerson: byPerson,
		},
		GrandTotals: grandTotals,
		FX:          *fxSnap,
	}, nil
}

// errorMessage keeps the upstream "<status>: <body>" wire contract for HTTP
// failures; transport errors keep their descriptive text.
func errorMessage(err error) string {
	var se *xhttp.StatusError
	if errors.As(err, &se) {
		return se.Error()
	}
	return err.Error()
}

func emptySnapshot(targets []string) *models.FxSnapshot {
	rates := make(map[string]*float64, len(targets))
	for _, t := range targets {
		rates[t] = nil
	}
	return &models.FxSnapshot{Date: nil, Rates: rates}
}
