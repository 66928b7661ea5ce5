package models

import (
	"encoding/json"
	"testing"
)

func TestAsFloatCoercion(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"nil", nil, 0.0},
		{"float", 12.5, 12.5},
		{"int", 7, 7.0},
		{"numeric string", "3.25", 3.25},
		{"junk string", "not-a-number", 0.0},
		{"empty string", "", 0.0},
		{"bool true", true, 1.0},
		{"bool false", false, 0.0},
		{"object", map[string]interface{}{"x": 1}, 0.0},
		{"json number", json.Number("9.75"), 9.75},
		{"bad json number", json.Number("nope"), 0.0},
	}
	for _, tc := range cases {
		if got := AsFloat(tc.in); got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestSnapshotUnmarshalTolerant(t *testing.T) {
	body := []byte(`{"free": 100.5, "invested": null, "ppl": "junk", "extra": true}`)
	var s AccountSnapshot
	if err := json.Unmarshal(body, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Free != 100.5 {
		t.Fatalf("free: got %v", s.Free)
	}
	if s.Invested != 0 || s.PPL != 0 || s.Total != 0 {
		t.Fatalf("expected zero coercion, got %+v", s)
	}
}

func TestSnapshotPortfolio(t *testing.T) {
	s := AccountSnapshot{Invested: 500, PPL: 20}
	if got := s.Portfolio(); got != 520 {
		t.Fatalf("portfolio: got %v want 520", got)
	}
}

func TestAccountResultErrorEntryOmitsNumbers(t *testing.T) {
	b, err := json.Marshal(AccountResult{Person: "Louis", Account: "Invest", Error: "401: denied"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range []string{"free", "portfolio", "total", "displayCurrency"} {
		if _, ok := m[k]; ok {
			t.Fatalf("error entry should omit %q: %s", k, b)
		}
	}
	if m["error"] != "401: denied" {
		t.Fatalf("error field: %v", m["error"])
	}
}

func TestAccountResultZeroBalancesSerialize(t *testing.T) {
	zero := 0.0
	b, err := json.Marshal(AccountResult{Person: "Louis", Account: "Invest", DisplayCurrency: "GBP", Free: &zero, Portfolio: &zero, Total: &zero})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range []string{"free", "portfolio", "total"} {
		if v, ok := m[k]; !ok || v != 0.0 {
			t.Fatalf("zero balance %q should serialize: %s", k, b)
		}
	}
}
