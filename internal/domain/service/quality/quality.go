package quality

import (
	"dealradar/internal/domain/entity"
)

// Reputation thresholds. Missing signals are zero, so absence never
// upgrades a tier.
const (
	greatRatingPercent = 90
	greatRatingCount   = 1000
	greatMetacritic    = 85

	goodRatingPercent = 80
	goodRatingCount   = 200
	goodMetacritic    = 75
)

// TierOf buckets a deal's reputation signals into great, good or unknown.
func TierOf(d entity.Deal) entity.QualityTier {
	switch {
	case (d.SteamRatingPercent >= greatRatingPercent && d.SteamRatingCount >= greatRatingCount) ||
		d.MetacriticScore >= greatMetacritic:
		return entity.QualityGreat
	case (d.SteamRatingPercent >= goodRatingPercent && d.SteamRatingCount >= goodRatingCount) ||
		d.MetacriticScore >= goodMetacritic:
		return entity.QualityGood
	default:
		return entity.QualityUnknown
	}
}
