package repository

import (
	"context"

	"CashView/internal/domain/models"
)

// BalanceSource fetches one account's cash snapshot from the brokerage.
type BalanceSource interface {
	FetchCash(ctx context.Context, cred models.AccountCredential) (*models.AccountSnapshot, error)
}

// RateSource resolves FX rates as of the most recent date with data,
// scanning backward over the configured lookback window.
type RateSource interface {
	// Rate returns the first non-null base->target rate found. Errors when
	// every day in the window misses.
	Rate(ctx context.Context, base, target string) (float64, error)

	// SnapshotFromBase returns the first dated rate set with at least one of
	// the targets present. All-null non-error result when the whole window
	// is empty.
	SnapshotFromBase(ctx context.Context, base string, targets []string) (*models.FxSnapshot, error)
}

// Metrics records operational counters for the aggregation pipeline.
type Metrics interface {
	RecordFetch(person, account, outcome string)
	RecordError(kind string)
	RecordFxProbe(base string)
	RecordGrandTotal(currency string, value float64)
	RecordLatency(op string, seconds float64)
}
