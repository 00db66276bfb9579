package entity

import "time"

// FxRates is a USD-based exchange rate snapshot. Immutable once constructed;
// the fx service refreshes it at most once per TTL window.
type FxRates struct {
	Base  string             `json:"base"`
	Date  time.Time          `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// SteamPrice is an exact storefront-quoted amount for one app in one region.
type SteamPrice struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// PriceKind tags which source produced a displayed local price.
type PriceKind string

const (
	// PriceExact comes straight from the storefront for the viewer's region.
	PriceExact PriceKind = "exact"
	// PriceApprox is the USD amount run through the FX table.
	PriceApprox PriceKind = "approx"
)
