package fx

import (
	"time"

	"dealradar/internal/domain/entity"
)

// Static rates used when the live source is unreachable and nothing is
// cached. Snapshot of the USD table on the date below; conversion must
// always produce some number.
func FallbackRates() entity.FxRates {
	return entity.FxRates{
		Base: "USD",
		Date: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		Rates: map[string]float64{
			"USD": 1,
			"EUR": 0.92,
			"GBP": 0.79,
			"JPY": 145.9,
			"CAD": 1.34,
			"AUD": 1.50,
			"CHF": 0.86,
			"CNY": 7.17,
			"SEK": 10.26,
			"NOK": 10.42,
			"DKK": 6.86,
			"PLN": 4.01,
			"CZK": 22.7,
			"HUF": 349.2,
			"RON": 4.57,
			"BRL": 4.86,
			"MXN": 16.9,
			"ARS": 818.4,
			"CLP": 916.3,
			"INR": 83.1,
			"IDR": 15585,
			"PHP": 55.9,
			"THB": 35.1,
			"VND": 24520,
			"KRW": 1330.4,
			"TWD": 31.3,
			"SGD": 1.34,
			"NZD": 1.61,
			"ZAR": 18.8,
			"TRY": 30.1,
			"UAH": 37.6,
			"ILS": 3.72,
		},
	}
}
