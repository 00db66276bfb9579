package merge

import (
	"github.com/samber/lo"

	"dealradar/internal/domain/entity"
	"dealradar/internal/domain/value"
)

// ByGame unions deals that represent the same underlying game (same identity
// key) into one record per game. Input records are never mutated; output
// order is the insertion order of each key's first occurrence.
func ByGame(deals []entity.Deal) []entity.Deal {
	grouped := make(map[string]entity.Deal, len(deals))
	order := make([]string, 0, len(deals))

	for _, d := range deals {
		key := d.IdentityKey()

		existing, ok := grouped[key]
		if !ok {
			grouped[key] = clone(d)
			order = append(order, key)

			continue
		}

		grouped[key] = pair(existing, d)
	}

	result := make([]entity.Deal, 0, len(order))
	for _, key := range order {
		result = append(result, grouped[key])
	}

	return result
}

// pair merges a later constituent b into the accumulated record a. The base
// record is whichever has the strictly lower current price, so ties keep the
// earlier-seen constituent.
func pair(a, b entity.Deal) entity.Deal {
	base := a
	if b.CurrentPrice < a.CurrentPrice {
		base = b
	}

	out := clone(base)

	out.Platforms = lo.Uniq(append(append([]value.StoreKey{}, a.Platforms...), b.Platforms...))

	// Later constituents win per link key.
	out.ClaimLinks = make(map[value.StoreKey]string, len(a.ClaimLinks)+len(b.ClaimLinks))
	for k, v := range a.ClaimLinks {
		out.ClaimLinks[k] = v
	}
	for k, v := range b.ClaimLinks {
		out.ClaimLinks[k] = v
	}

	// Quality signals never drop below any constituent: prefer a non-zero
	// max, fall back to the base record's own value otherwise.
	out.SteamRatingPercent = maxOrBase(a.SteamRatingPercent, b.SteamRatingPercent, base.SteamRatingPercent)
	out.SteamRatingCount = maxOrBase(a.SteamRatingCount, b.SteamRatingCount, base.SteamRatingCount)
	out.MetacriticScore = maxOrBase(a.MetacriticScore, b.MetacriticScore, base.MetacriticScore)
	out.DealRating = maxOrBaseFloat(a.DealRating, b.DealRating, base.DealRating)

	return out
}

func clone(d entity.Deal) entity.Deal {
	out := d
	out.Platforms = append([]value.StoreKey{}, d.Platforms...)

	if d.ClaimLinks != nil {
		out.ClaimLinks = make(map[value.StoreKey]string, len(d.ClaimLinks))
		for k, v := range d.ClaimLinks {
			out.ClaimLinks[k] = v
		}
	}

	return out
}

func maxOrBase(a, b, base int) int {
	m := max(a, b)
	if m == 0 {
		return base
	}

	return m
}

func maxOrBaseFloat(a, b, base float64) float64 {
	m := max(a, b)
	if m == 0 {
		return base
	}

	return m
}
