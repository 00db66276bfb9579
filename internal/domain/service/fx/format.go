package fx

import (
	"fmt"

	"dealradar/internal/domain/entity"
)

// Currencies with no minor unit: amounts render without decimals.
//
//nolint:gochecknoglobals
var zeroMinorUnit = map[string]bool{
	"JPY": true,
	"KRW": true,
	"VND": true,
	"CLP": true,
	"IDR": true,
	"HUF": true,
}

//nolint:gochecknoglobals
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"INR": "₹",
	"BRL": "R$",
	"CAD": "C$",
	"AUD": "A$",
	"NZD": "NZ$",
	"MXN": "MX$",
	"TRY": "₺",
	"UAH": "₴",
	"ILS": "₪",
	"THB": "฿",
	"VND": "₫",
	"PLN": "zł",
	"CHF": "CHF ",
}

// ConvertFromUsd converts a USD amount into the target currency. A nil rate
// table means USD parity; an unknown code defaults its multiplier to 1
// rather than rejecting the request.
func ConvertFromUsd(amountUsd float64, currencyCode string, rates *entity.FxRates) float64 {
	if rates == nil {
		return amountUsd
	}

	multiplier, ok := rates.Rates[currencyCode]
	if !ok {
		multiplier = 1
	}

	return amountUsd * multiplier
}

// FormatCurrency renders an amount per currency convention: no decimals for
// zero-minor-unit currencies, two otherwise, and the raw code with no symbol
// when the currency is unknown.
func FormatCurrency(amount float64, currencyCode string) string {
	digits := 2
	if zeroMinorUnit[currencyCode] {
		digits = 0
	}

	if symbol, ok := currencySymbols[currencyCode]; ok {
		return fmt.Sprintf("%s%.*f", symbol, digits, amount)
	}

	return fmt.Sprintf("%s %.*f", currencyCode, digits, amount)
}
