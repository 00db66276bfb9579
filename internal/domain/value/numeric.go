package value

import (
	"math"
	"strconv"
	"strings"
)

// The upstream catalog sends every numeric field as a string. These helpers
// are the single parsing boundary for that input: anything unparseable or
// non-finite becomes 0, never NaN, never an error.

func ParseUntrustedFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}

func ParseUntrustedInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}

	return n
}
