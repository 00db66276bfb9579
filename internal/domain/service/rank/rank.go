package rank

import (
	"sort"
	"strings"

	"dealradar/internal/domain/entity"
	"dealradar/internal/domain/service/pricing"
	"dealradar/internal/domain/service/quality"
)

// Mode selects the sort order for a browsable deal list.
type Mode string

const (
	ModeQuality   Mode = "quality"
	ModeDiscount  Mode = "discount"
	ModePriceLow  Mode = "price-low"
	ModePriceHigh Mode = "price-high"
)

func (m Mode) String() string {
	return string(m)
}

// ParseMode resolves a user-supplied sort mode, defaulting to discount.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeQuality, ModeDiscount, ModePriceLow, ModePriceHigh:
		return Mode(s), true
	case "":
		return ModeDiscount, true
	default:
		return ModeDiscount, false
	}
}

type ranked struct {
	deal        entity.Deal
	score       pricing.DealScore
	qualityRank int
}

// Sort orders deals by the given mode. Every mode is a total order: each
// tie-break chain ends in a case-sensitive title comparison, so sorting is
// deterministic and repeatable. The input slice is not modified.
func Sort(deals []entity.Deal, mode Mode) []entity.Deal {
	items := make([]ranked, len(deals))
	for i, d := range deals {
		items[i] = ranked{
			deal:        d,
			score:       pricing.Compute(d.ListPrice, d.CurrentPrice),
			qualityRank: quality.TierOf(d).Rank(),
		}
	}

	less := comparator(mode)

	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})

	result := make([]entity.Deal, len(items))
	for i, it := range items {
		result[i] = it.deal
	}

	return result
}

func comparator(mode Mode) func(a, b ranked) bool {
	switch mode {
	case ModeQuality:
		return func(a, b ranked) bool {
			return chain(a, b,
				desc(float64(a.qualityRank), float64(b.qualityRank)),
				desc(a.score.Score, b.score.Score),
				desc(a.deal.DealRating, b.deal.DealRating),
				asc(a.deal.CurrentPrice, b.deal.CurrentPrice),
			)
		}
	case ModePriceLow:
		return func(a, b ranked) bool {
			return chain(a, b,
				asc(a.deal.CurrentPrice, b.deal.CurrentPrice),
				desc(a.score.Score, b.score.Score),
				desc(float64(a.qualityRank), float64(b.qualityRank)),
			)
		}
	case ModePriceHigh:
		return func(a, b ranked) bool {
			return chain(a, b,
				desc(a.deal.CurrentPrice, b.deal.CurrentPrice),
				desc(a.score.Score, b.score.Score),
				desc(float64(a.qualityRank), float64(b.qualityRank)),
			)
		}
	default: // ModeDiscount
		return func(a, b ranked) bool {
			return chain(a, b,
				desc(a.score.Score, b.score.Score),
				desc(float64(a.score.DiscountPercent), float64(b.score.DiscountPercent)),
				desc(a.score.Savings, b.score.Savings),
				asc(a.deal.CurrentPrice, b.deal.CurrentPrice),
			)
		}
	}
}

// ordering is -1 when a sorts first, +1 when b does, 0 to defer to the next
// key in the chain.
type ordering int

func asc(a, b float64) ordering {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func desc(a, b float64) ordering {
	return -asc(a, b)
}

func chain(a, b ranked, keys ...ordering) bool {
	for _, k := range keys {
		if k != 0 {
			return k < 0
		}
	}

	return strings.Compare(a.deal.Title, b.deal.Title) < 0
}
