package util

import "time"

// FXDateFormat is the date layout used by FX historical-rate endpoints.
const FXDateFormat = "2006-01-02"

// UTCDate returns the calendar date of t in UTC, formatted for FX lookups.
func UTCDate(t time.Time) string {
	return t.UTC().Format(FXDateFormat)
}

// UTCDateOffset returns the UTC calendar date `days` before t.
func UTCDateOffset(t time.Time, days int) string {
	return t.UTC().AddDate(0, 0, -days).Format(FXDateFormat)
}

// ISOTimestamp renders t as an ISO-8601 UTC timestamp for response bodies.
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
