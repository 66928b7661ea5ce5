package frankfurter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"CashView/internal/domain/models"
	drepo "CashView/internal/domain/repository"
	xhttp "CashView/pkg/http"
	"CashView/pkg/util"
)

// ErrNoRate means every day in the lookback window came back without a rate.
var ErrNoRate = errors.New("fx lookup failed")

// Client implements a RateSource backed by a Frankfurter-style historical
// rate API. Providers publish no data for weekends and holidays, so every
// lookup scans backward day by day until it finds something.
type Client struct {
	baseURL      string
	lookbackDays int
	client       *xhttp.Client
	metrics      drepo.Metrics

	now func() time.Time
}

// New creates a new Frankfurter RateSource.
func New(baseURL string, timeout time.Duration, lookbackDays int) *Client {
	return &Client{
		baseURL:      baseURL,
		lookbackDays: lookbackDays,
		client:       xhttp.NewClient(xhttp.WithTimeout(timeout)),
		now:          time.Now,
	}
}

// SetMetrics attaches an optional probe recorder.
func (c *Client) SetMetrics(m drepo.Metrics) { c.metrics = m }

type rateResponse struct {
	Date  string              `json:"date"`
	Rates map[string]*float64 `json:"rates"`
}

func (c *Client) probe(ctx context.Context, date, base string, targets []string) (*rateResponse, error) {
	if c.metrics != nil {
		c.metrics.RecordFxProbe(base)
	}
	var rr rateResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/%s", c.baseURL, date),
		QueryParams: map[string][]string{
			"from": {base},
			"to":   {strings.Join(targets, ",")},
		},
	}, &rr)
	if err != nil {
		return nil, err
	}
	return &rr, nil
}

// Rate scans from today backward and returns the first non-null base->target
// rate. Transport failures and empty days both mean "try the previous day";
// exhausting the window is an error.
func (c *Client) Rate(ctx context.Context, base, target string) (float64, error) {
	for i := 0; i < c.lookbackDays; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		rr, err := c.probe(ctx, util.UTCDateOffset(c.now(), i), base, []string{target})
		if err != nil {
			continue
		}
		if r := rr.Rates[target]; r != nil && *r != 0 {
			return *r, nil
		}
	}
	return 0, fmt.Errorf("%w: no %s->%s rate in last %d days", ErrNoRate, base, target, c.lookbackDays)
}

// SnapshotFromBase scans the same window but accepts a partial hit: the
// first day with at least one target rate present wins. When the whole
// window is empty it degrades to an all-null snapshot instead of failing.
func (c *Client) SnapshotFromBase(ctx context.Context, base string, targets []string) (*models.FxSnapshot, error) {
	for i := 0; i < c.lookbackDays; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rr, err := c.probe(ctx, util.UTCDateOffset(c.now(), i), base, targets)
		if err != nil {
			continue
		}

		rates := make(map[string]*float64, len(targets))
		found := false
		for _, t := range targets {
			rates[t] = rr.Rates[t]
			if rr.Rates[t] != nil {
				found = true
			}
		}
		if found {
			date := rr.Date
			if date == "" {
				date = util.UTCDateOffset(c.now(), i)
			}
			return &models.FxSnapshot{Date: &date, Rates: rates}, nil
		}
	}

	rates := make(map[string]*float64, len(targets))
	for _, t := range targets {
		rates[t] = nil
	}
	return &models.FxSnapshot{Date: nil, Rates: rates}, nil
}
