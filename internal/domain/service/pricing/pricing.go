package pricing

import (
	"fmt"
	"math"

	"dealradar/internal/domain/entity"
	"dealradar/internal/domain/service/quality"
)

const (
	// Anything at or below a cent is treated as free rather than a pricing
	// bug (sub-cent residuals show up in the upstream catalog).
	freePriceCeiling = 0.01

	// Both thresholds must hold for the insane tier. Tunable constants.
	insaneMinDiscountFraction = 0.40
	insaneMinScore            = 1.0
)

// DealScore is the value-weighted measure of a discount.
type DealScore struct {
	// DiscountFraction is savings relative to list price, clamped to [0, 1].
	DiscountFraction float64
	// Score weighs the fraction by log10 of the list price, so a 70%-off $2
	// title does not outrank a 40%-off $60 one.
	Score           float64
	DiscountPercent int
	Savings         float64
}

// Compute scores a (listPrice, currentPrice) pair. A non-positive list price
// yields all zeroes: degenerate free-catalog entries never divide by zero.
func Compute(listPrice, currentPrice float64) DealScore {
	if listPrice <= 0 {
		return DealScore{}
	}

	savings := math.Max(0, listPrice-currentPrice)
	fraction := math.Min(math.Max(savings/listPrice, 0), 1)

	return DealScore{
		DiscountFraction: fraction,
		Score:            fraction * math.Log10(listPrice+1),
		DiscountPercent:  int(math.Round(fraction * 100)),
		Savings:          savings,
	}
}

// Classify buckets a deal into free, insane or sale.
func Classify(listPrice, currentPrice float64) entity.Tier {
	if currentPrice <= freePriceCeiling {
		return entity.TierFree
	}

	// No reference price, no meaningful discount.
	if listPrice <= 0 {
		return entity.TierSale
	}

	score := Compute(listPrice, currentPrice)

	if score.DiscountFraction >= insaneMinDiscountFraction && score.Score >= insaneMinScore {
		return entity.TierInsane
	}

	return entity.TierSale
}

// ClassifyDeal is Classify with the quality gate applied: an insane verdict
// is downgraded to sale unless the title rates good or great, so deep
// discounts on shovelware are not promoted as amazing deals.
func ClassifyDeal(d entity.Deal) entity.Tier {
	tier := Classify(d.ListPrice, d.CurrentPrice)
	if tier != entity.TierInsane {
		return tier
	}

	if quality.TierOf(d) == entity.QualityUnknown {
		return entity.TierSale
	}

	return entity.TierInsane
}

// FormatPrice renders the current USD price with its discount percentage.
func FormatPrice(listPrice, currentPrice float64) string {
	if currentPrice <= freePriceCeiling {
		return "Free"
	}

	percent := Compute(listPrice, currentPrice).DiscountPercent
	if percent <= 0 {
		return fmt.Sprintf("$%.2f (no discount)", currentPrice)
	}

	return fmt.Sprintf("$%.2f (-%d%%)", currentPrice, percent)
}
