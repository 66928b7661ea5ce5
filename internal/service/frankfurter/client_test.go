package frankfurter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"CashView/pkg/util"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// fxServer answers /{date} with the provided rates for that date and an
// empty rate set otherwise.
func fxServer(t *testing.T, byDate map[string]map[string]float64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Path[1:]
		rates := map[string]float64{}
		if rs, ok := byDate[date]; ok {
			rates = rs
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"date": date, "rates": rates})
	}))
}

func newTestClient(url string) *Client {
	c := New(url, 2*time.Second, 7)
	c.now = func() time.Time { return testNow }
	return c
}

func TestRateFindsBackdatedValue(t *testing.T) {
	// only day index 2 has data
	day2 := util.UTCDateOffset(testNow, 2)
	srv := fxServer(t, map[string]map[string]float64{
		day2: {"GBP": 0.8},
	})
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.Rate(context.Background(), "USD", "GBP")
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if got != 0.8 {
		t.Fatalf("got %v want 0.8", got)
	}
}

func TestRateLastDayOfWindow(t *testing.T) {
	day6 := util.UTCDateOffset(testNow, 6)
	srv := fxServer(t, map[string]map[string]float64{
		day6: {"GBP": 0.79},
	})
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.Rate(context.Background(), "USD", "GBP")
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if got != 0.79 {
		t.Fatalf("got %v want 0.79", got)
	}
}

func TestRateExhaustsWindow(t *testing.T) {
	srv := fxServer(t, nil)
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.Rate(context.Background(), "USD", "GBP"); !errors.Is(err, ErrNoRate) {
		t.Fatalf("expected ErrNoRate, got %v", err)
	}
}

func TestRateSkipsZero(t *testing.T) {
	day0 := util.UTCDateOffset(testNow, 0)
	day1 := util.UTCDateOffset(testNow, 1)
	srv := fxServer(t, map[string]map[string]float64{
		day0: {"GBP": 0},
		day1: {"GBP": 0.81},
	})
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.Rate(context.Background(), "USD", "GBP")
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if got != 0.81 {
		t.Fatalf("zero rate should be treated as missing, got %v", got)
	}
}

func TestRateSurvivesTransportErrors(t *testing.T) {
	day1 := util.UTCDateOffset(testNow, 1)
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"date":  day1,
			"rates": map[string]float64{"GBP": 0.82},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.Rate(context.Background(), "USD", "GBP")
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if got != 0.82 {
		t.Fatalf("got %v", got)
	}
}

func TestSnapshotAcceptsPartialHit(t *testing.T) {
	day1 := util.UTCDateOffset(testNow, 1)
	srv := fxServer(t, map[string]map[string]float64{
		day1: {"USD": 1.27}, // HKD missing that day
	})
	defer srv.Close()

	c := newTestClient(srv.URL)
	snap, err := c.SnapshotFromBase(context.Background(), "GBP", []string{"USD", "HKD"})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Date == nil || *snap.Date != day1 {
		t.Fatalf("date: %v", snap.Date)
	}
	if snap.Rates["USD"] == nil || *snap.Rates["USD"] != 1.27 {
		t.Fatalf("usd rate: %v", snap.Rates["USD"])
	}
	if snap.Rates["HKD"] != nil {
		t.Fatalf("hkd should be null, got %v", *snap.Rates["HKD"])
	}
}

func TestSnapshotDegradesToAllNull(t *testing.T) {
	srv := fxServer(t, nil)
	defer srv.Close()

	c := newTestClient(srv.URL)
	snap, err := c.SnapshotFromBase(context.Background(), "GBP", []string{"USD", "HKD"})
	if err != nil {
		t.Fatalf("degraded snapshot must not error: %v", err)
	}
	if snap.Date != nil {
		t.Fatalf("date should be null, got %v", *snap.Date)
	}
	if snap.Rates["USD"] != nil || snap.Rates["HKD"] != nil {
		t.Fatalf("rates should be null: %+v", snap.Rates)
	}
}
