package models

import (
	"encoding/json"
	"strconv"
)

// AccountCredential is one basic-auth key pair for the brokerage API.
type AccountCredential struct {
	KeyID  string
	Secret string
}

// AccountSnapshot is the raw cash snapshot for a single account. Every field
// is optional upstream; missing or non-numeric values coerce to 0.0.
type AccountSnapshot struct {
	Free     float64
	Invested float64
	PPL      float64 // unrealised profit/loss
	Total    float64
}

// UnmarshalJSON tolerates nulls, absent keys and non-numeric junk in the
// upstream body, the same way the front-end contract requires: bad input is
// a zero, never a decode failure.
func (s *AccountSnapshot) UnmarshalJSON(b []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	s.Free = AsFloat(raw["free"])
	s.Invested = AsFloat(raw["invested"])
	s.PPL = AsFloat(raw["ppl"])
	s.Total = AsFloat(raw["total"])
	return nil
}

// Portfolio is invested cost basis plus unrealised P/L, an approximation of
// current holdings value.
func (s *AccountSnapshot) Portfolio() float64 {
	return s.Invested + s.PPL
}

// AsFloat coerces an arbitrary decoded JSON value to float64. Anything that
// is not a number (or a numeric string) yields 0.0.
func AsFloat(v interface{}) float64 {
	switch x := v.(type) {
	case nil:
		return 0.0
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0.0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0.0
		}
		return f
	case bool:
		if x {
			return 1.0
		}
		return 0.0
	default:
		return 0.0
	}
}

// AccountResult is one entry in the report's flattened accounts list. Person
// carries the reporting group (alias), not necessarily the configured name.
// Numeric fields are pointers so error entries omit them entirely while
// successful zero balances still serialize.
type AccountResult struct {
	Person          string   `json:"person"`
	Account         string   `json:"account"`
	DisplayCurrency string   `json:"displayCurrency,omitempty"`
	Free            *float64 `json:"free,omitempty"`
	Portfolio       *float64 `json:"portfolio,omitempty"`
	Total           *float64 `json:"total,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// PersonTotals accumulates GBP-normalized totals for one reporting group.
type PersonTotals struct {
	FreeGBP      float64 `json:"free_gbp"`
	PortfolioGBP float64 `json:"portfolio_gbp"`
	TotalGBP     float64 `json:"total_gbp"`
}

// FxSnapshot is the most recent dated rate set found within the lookback
// window. Date and rates are null when every probed day came back empty.
type FxSnapshot struct {
	Date  *string             `json:"date"`
	Rates map[string]*float64 `json:"rates"`
}

// Summary groups the grand totals and per-group breakdown.
type Summary struct {
	Grand    PersonTotals             `json:"grand"`
	ByPerson map[string]*PersonTotals `json:"byPerson"`
}

// BalanceReport is the full /balances response body.
type BalanceReport struct {
	AsOf        string              `json:"asOf"`
	Accounts    []AccountResult     `json:"accounts"`
	Summary     Summary             `json:"summary"`
	GrandTotals map[string]*float64 `json:"grandTotals"`
	FX          FxSnapshot          `json:"fx"`
}
