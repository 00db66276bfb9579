package deals

import (
	"fmt"

	"dealradar/internal/domain/entity"
	"dealradar/internal/domain/value"
)

const (
	steamAppURLFormat = "https://store.steampowered.com/app/%s"
	redirectURLFormat = "https://www.cheapshark.com/redirect?dealID=%s"
)

// MapDeal normalizes one raw catalog record into the canonical Deal shape.
// storeName may be empty; the id table then decides the key alone.
func MapDeal(raw RawDeal, storeName string) entity.Deal {
	key := value.CanonicalStoreKey(raw.StoreID, storeName)

	d := entity.Deal{
		Title:              raw.Title,
		Image:              raw.Thumb,
		ListPrice:          value.ParseUntrustedFloat(raw.NormalPrice),
		CurrentPrice:       value.ParseUntrustedFloat(raw.SalePrice),
		Platforms:          []value.StoreKey{key},
		DealID:             raw.DealID,
		GameID:             raw.GameID,
		SteamAppID:         raw.SteamAppID,
		SteamRatingPercent: value.ParseUntrustedInt(raw.SteamRatingPercent),
		SteamRatingCount:   value.ParseUntrustedInt(raw.SteamRatingCount),
		MetacriticScore:    value.ParseUntrustedInt(raw.MetacriticScore),
		DealRating:         value.ParseUntrustedFloat(raw.DealRating),
	}

	links := make(map[value.StoreKey]string, 2)

	if raw.SteamAppID != "" {
		links[value.StoreSteam] = fmt.Sprintf(steamAppURLFormat, raw.SteamAppID)
	}
	if raw.DealID != "" {
		links[key] = fmt.Sprintf(redirectURLFormat, raw.DealID)
	}

	if len(links) > 0 {
		d.ClaimLinks = links
	}

	return d
}
