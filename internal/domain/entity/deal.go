package entity

import (
	"dealradar/internal/domain/value"
)

// Deal is one purchasable offer, or a merged group of offers for the same
// game across storefronts.
type Deal struct {
	Title        string  `json:"title"`
	Image        string  `json:"image,omitempty"`
	ListPrice    float64 `json:"list_price"`
	CurrentPrice float64 `json:"current_price"`

	// Storefronts the offer is available on. Insertion order is kept until
	// merge; after merge the set is deduplicated.
	Platforms []value.StoreKey `json:"platforms"`

	// Upstream identifiers, optional.
	DealID     string `json:"deal_id,omitempty"`
	GameID     string `json:"game_id,omitempty"`
	SteamAppID string `json:"steam_app_id,omitempty"`

	// Storefront key -> purchase/redirect URL.
	ClaimLinks map[value.StoreKey]string `json:"claim_links,omitempty"`

	// Quality and ranking signals, zero when absent.
	SteamRatingPercent int     `json:"steam_rating_percent,omitempty"`
	SteamRatingCount   int     `json:"steam_rating_count,omitempty"`
	MetacriticScore    int     `json:"metacritic_score,omitempty"`
	DealRating         float64 `json:"deal_rating,omitempty"`
}

// IdentityKey recognizes "the same game" across listings: steam app id wins,
// then the upstream game id, then the normalized title.
func (d Deal) IdentityKey() string {
	if d.SteamAppID != "" {
		return d.SteamAppID
	}
	if d.GameID != "" {
		return d.GameID
	}

	return value.NormalizeTitle(d.Title)
}
