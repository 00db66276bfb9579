package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dealradar/internal/domain/entity"
	"dealradar/internal/domain/service/pricing"
)

func TestCompute(t *testing.T) {
	rq := require.New(t)

	score := pricing.Compute(60, 24)
	rq.InDelta(0.6, score.DiscountFraction, 1e-9)
	rq.InDelta(36, score.Savings, 1e-9)
	rq.Equal(60, score.DiscountPercent)
	rq.Greater(score.Score, 1.0)

	// Half off a cheap title scores low despite the big fraction.
	cheap := pricing.Compute(5, 2)
	rq.InDelta(0.6, cheap.DiscountFraction, 1e-9)
	rq.Less(cheap.Score, 1.0)

	// Degenerate list prices never divide by zero.
	rq.Equal(pricing.DealScore{}, pricing.Compute(0, 5))
	rq.Equal(pricing.DealScore{}, pricing.Compute(-1, 5))

	// A price above list clamps to zero discount.
	raised := pricing.Compute(10, 15)
	rq.Zero(raised.DiscountFraction)
	rq.Zero(raised.Savings)
	rq.Zero(raised.DiscountPercent)
}

func TestClassify(t *testing.T) {
	rq := require.New(t)

	rq.Equal(entity.TierInsane, pricing.Classify(60, 24))
	rq.Equal(entity.TierSale, pricing.Classify(5, 2))
	rq.Equal(entity.TierFree, pricing.Classify(10, 0.01))
	rq.Equal(entity.TierFree, pricing.Classify(10, 0))

	// Deep fraction but low absolute value stays a sale.
	rq.Equal(entity.TierSale, pricing.Classify(2, 0.5))

	// No reference price means no meaningful discount.
	rq.Equal(entity.TierSale, pricing.Classify(0, 5))
}

func TestClassifyDealQualityGate(t *testing.T) {
	rq := require.New(t)

	insanePrices := entity.Deal{ListPrice: 60, CurrentPrice: 24}

	// Unknown quality downgrades insane to sale.
	rq.Equal(entity.TierSale, pricing.ClassifyDeal(insanePrices))

	rated := insanePrices
	rated.SteamRatingPercent = 85
	rated.SteamRatingCount = 500
	rq.Equal(entity.TierInsane, pricing.ClassifyDeal(rated))

	critic := insanePrices
	critic.MetacriticScore = 88
	rq.Equal(entity.TierInsane, pricing.ClassifyDeal(critic))

	// Free and sale tiers pass through untouched.
	free := entity.Deal{ListPrice: 10, CurrentPrice: 0}
	rq.Equal(entity.TierFree, pricing.ClassifyDeal(free))
}

func TestFormatPrice(t *testing.T) {
	rq := require.New(t)

	rq.Equal("$29.99 (-50%)", pricing.FormatPrice(59.99, 29.99))
	rq.Equal("Free", pricing.FormatPrice(10, 0))
	rq.Equal("Free", pricing.FormatPrice(10, 0.01))
	rq.Equal("$59.99 (no discount)", pricing.FormatPrice(59.99, 59.99))
	rq.Equal("$5.00 (no discount)", pricing.FormatPrice(0, 5))
}
