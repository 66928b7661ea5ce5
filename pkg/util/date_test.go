package util

import (
	"testing"
	"time"
)

func TestUTCDateOffset(t *testing.T) {
	base := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	if got := UTCDateOffset(base, 0); got != "2025-03-02" {
		t.Fatalf("offset 0: %s", got)
	}
	// crosses the month boundary
	if got := UTCDateOffset(base, 3); got != "2025-02-27" {
		t.Fatalf("offset 3: %s", got)
	}
}

func TestUTCDateNormalizesZone(t *testing.T) {
	loc := time.FixedZone("east", 10*3600)
	// local date is already March 3rd, UTC still March 2nd
	ts := time.Date(2025, 3, 3, 2, 0, 0, 0, loc)
	if got := UTCDate(ts); got != "2025-03-02" {
		t.Fatalf("got %s", got)
	}
}

func TestISOTimestamp(t *testing.T) {
	ts := time.Date(2025, 3, 2, 10, 30, 0, 0, time.UTC)
	got := ISOTimestamp(ts)
	parsed, err := time.Parse(time.RFC3339Nano, got)
	if err != nil {
		t.Fatalf("not parseable: %v", err)
	}
	if !parsed.Equal(ts) {
		t.Fatalf("round trip mismatch: %v", parsed)
	}
}
