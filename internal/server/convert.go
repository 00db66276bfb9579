package server

import (
	"dealradar/internal/domain/entity"
	"dealradar/internal/domain/service/deals"
	"dealradar/internal/domain/value"
	"dealradar/pkg/lox"
	"dealradar/pkg/rest"
)

func newRESTDeal(d deals.DisplayDeal) rest.Deal {
	links := make(map[string]string, len(d.ClaimLinks))
	for store, link := range d.ClaimLinks {
		links[store.String()] = link
	}

	return rest.Deal{
		Title:           d.Title,
		Image:           d.Image,
		ListPrice:       d.ListPrice,
		CurrentPrice:    d.CurrentPrice,
		Platforms:       lox.Map(d.Platforms, value.StoreKey.String),
		ClaimLinks:      links,
		Tier:            string(d.Tier),
		Quality:         string(d.Quality),
		Score:           d.Score,
		DiscountPercent: d.DiscountPercent,
		PriceLabel:      d.PriceLabel,
		LocalPrice:      d.LocalPrice,
		LocalCurrency:   d.LocalCurrency,
		LocalPriceLabel: d.LocalPriceLabel,
		PriceKind:       string(d.PriceKind),
		SteamAppID:      d.SteamAppID,
		DealRating:      d.DealRating,
	}
}

func newRESTDealList(list []deals.DisplayDeal, q deals.ListQuery) rest.DealList {
	page := q.Page
	if page < 1 {
		page = 1
	}

	return rest.DealList{
		Deals: lox.Map(list, newRESTDeal),
		Page:  page,
		Sort:  q.Sort.String(),
	}
}

func newRESTStore(s deals.StoreInfo) rest.Store {
	return rest.Store{
		ID:     s.ID,
		Key:    s.Key.String(),
		Name:   s.Name,
		Active: s.Active,
	}
}

func newRESTStoreList(stores []deals.StoreInfo) rest.StoreList {
	return rest.StoreList{
		Stores: lox.Map(stores, newRESTStore),
	}
}

func newRESTRates(rates entity.FxRates) rest.Rates {
	return rest.Rates{
		Base:  rates.Base,
		Date:  rates.Date.Format("2006-01-02"),
		Rates: rates.Rates,
	}
}

func newRESTRefreshResult(result deals.RefreshResult) rest.RefreshResult {
	return rest.RefreshResult{
		Fetched: result.Fetched,
		Merged:  result.Merged,
		Alerts:  len(result.Alerts),
	}
}
