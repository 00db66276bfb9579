package deals_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dealradar/internal/domain/service/deals"
	"dealradar/internal/domain/value"
)

func rawHades() deals.RawDeal {
	return deals.RawDeal{
		Title:              "Hades",
		DealID:             "abc123",
		StoreID:            "1",
		GameID:             "98765",
		SalePrice:          "12.49",
		NormalPrice:        "24.99",
		SteamAppID:         "1145360",
		SteamRatingPercent: "98",
		SteamRatingCount:   "250000",
		MetacriticScore:    "93",
		DealRating:         "9.6",
		Thumb:              "https://img.example/hades.jpg",
	}
}

func TestMapDeal(t *testing.T) {
	rq := require.New(t)

	d := deals.MapDeal(rawHades(), "Steam")

	rq.Equal("Hades", d.Title)
	rq.InDelta(24.99, d.ListPrice, 1e-9)
	rq.InDelta(12.49, d.CurrentPrice, 1e-9)
	rq.Equal([]value.StoreKey{value.StoreSteam}, d.Platforms)
	rq.Equal("1145360", d.SteamAppID)
	rq.Equal(98, d.SteamRatingPercent)
	rq.Equal(250000, d.SteamRatingCount)
	rq.Equal(93, d.MetacriticScore)
	rq.InDelta(9.6, d.DealRating, 1e-9)

	// A steam-backed record links both the app page and the redirect.
	rq.Equal("https://store.steampowered.com/app/1145360", d.ClaimLinks[value.StoreSteam])
}

func TestMapDealRedirectLink(t *testing.T) {
	rq := require.New(t)

	raw := rawHades()
	raw.StoreID = "25"
	raw.SteamAppID = ""

	d := deals.MapDeal(raw, "Epic Games Store")

	rq.Equal([]value.StoreKey{value.StoreEpic}, d.Platforms)
	rq.Equal("https://www.cheapshark.com/redirect?dealID=abc123", d.ClaimLinks[value.StoreEpic])
	rq.NotContains(d.ClaimLinks, value.StoreSteam)
}

func TestMapDealBadNumericFields(t *testing.T) {
	rq := require.New(t)

	raw := rawHades()
	raw.SalePrice = "not-a-number"
	raw.NormalPrice = ""
	raw.SteamRatingPercent = "NaN"
	raw.DealRating = "Inf"

	d := deals.MapDeal(raw, "Steam")

	// Unparseable numerics become zero, never an error.
	rq.Zero(d.CurrentPrice)
	rq.Zero(d.ListPrice)
	rq.Zero(d.SteamRatingPercent)
	rq.Zero(d.DealRating)
}

func TestMapDealUnknownStoreFallsBackToName(t *testing.T) {
	rq := require.New(t)

	raw := rawHades()
	raw.StoreID = "999"

	d := deals.MapDeal(raw, "Some Steam Reseller")
	rq.Equal([]value.StoreKey{value.StoreSteam}, d.Platforms)

	d = deals.MapDeal(raw, "Totally Unknown Shop")
	rq.Equal([]value.StoreKey{value.StoreKey("999")}, d.Platforms)
}
