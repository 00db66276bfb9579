package deals_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dealradar/internal/domain"
	"dealradar/internal/domain/entity"
	"dealradar/internal/domain/service/deals"
	"dealradar/internal/domain/service/fx"
	"dealradar/internal/domain/service/rank"
	"dealradar/internal/domain/value"
	"dealradar/pkg/errcodes"
)

type fakeCatalog struct {
	deals      []deals.RawDeal
	stores     []deals.StoreInfo
	dealsErr   error
	storeCalls int
}

func (f *fakeCatalog) Deals(context.Context, deals.DealsQuery) ([]deals.RawDeal, error) {
	return f.deals, f.dealsErr
}

func (f *fakeCatalog) Stores(context.Context) ([]deals.StoreInfo, error) {
	f.storeCalls++
	return f.stores, nil
}

type nullRateSource struct{}

func (nullRateSource) Latest(context.Context) (entity.FxRates, error) {
	return entity.FxRates{}, errors.New("offline")
}

type nullPriceSource struct{}

func (nullPriceSource) AppPrice(context.Context, string, string) (entity.SteamPrice, bool, error) {
	return entity.SteamPrice{}, false, nil
}

type nullStore struct{}

func (nullStore) Get(context.Context, string) ([]byte, bool)         { return nil, false }
func (nullStore) Set(context.Context, string, []byte, time.Duration) {}
func (nullStore) Remove(context.Context, string)                     {}

func offlineFx() *fx.Service {
	return fx.NewService(nullRateSource{}, nullPriceSource{}, nullStore{}).
		WithNetworkAvailable(false)
}

func newTestService(catalog *fakeCatalog) *deals.Service {
	return deals.NewService(catalog, nil, offlineFx())
}

func TestRefreshMergesAndAlerts(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	catalog := &fakeCatalog{
		deals: []deals.RawDeal{
			{
				Title: "Hades", StoreID: "1", SteamAppID: "1145360",
				NormalPrice: "59.99", SalePrice: "29.99",
				SteamRatingPercent: "98", SteamRatingCount: "250000",
			},
			{
				Title: "Hades", StoreID: "25", SteamAppID: "1145360",
				NormalPrice: "59.99", SalePrice: "19.99",
				SteamRatingPercent: "98", SteamRatingCount: "250000",
			},
			{
				Title: "Shovelware 9000", StoreID: "1",
				NormalPrice: "59.99", SalePrice: "2.99",
			},
		},
	}

	svc := newTestService(catalog)

	result, err := svc.Refresh(ctx)
	rq.NoError(err)
	rq.Equal(3, result.Fetched)
	rq.Equal(2, result.Merged)

	// Only the well-rated deep discount alerts; shovelware is filtered by
	// the quality gate.
	rq.Len(result.Alerts, 1)
	rq.Equal("Hades", result.Alerts[0].Deal.Title)
	rq.Equal(entity.TierInsane, result.Alerts[0].Tier)

	// The same find does not alert twice within the dedupe window.
	again, err := svc.Refresh(ctx)
	rq.NoError(err)
	rq.Empty(again.Alerts)
}

func TestRefreshCatalogDown(t *testing.T) {
	rq := require.New(t)

	catalog := &fakeCatalog{dealsErr: errors.New("connection refused")}
	svc := newTestService(catalog)

	_, err := svc.Refresh(context.Background())
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.CatalogUnavailable, code)
}

func TestStoresCachedUntilInvalidated(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	catalog := &fakeCatalog{
		stores: []deals.StoreInfo{{ID: "1", Name: "Steam", Active: true}},
	}
	svc := newTestService(catalog)

	first, err := svc.Stores(ctx)
	rq.NoError(err)
	rq.Equal(value.StoreSteam, first[0].Key)
	rq.Equal(1, catalog.storeCalls)

	_, err = svc.Stores(ctx)
	rq.NoError(err)
	rq.Equal(1, catalog.storeCalls)

	svc.InvalidateStores()

	_, err = svc.Stores(ctx)
	rq.NoError(err)
	rq.Equal(2, catalog.storeCalls)
}

func TestListRanksAndConverts(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	catalog := &fakeCatalog{
		deals: []deals.RawDeal{
			{Title: "Cheap", StoreID: "1", NormalPrice: "5.00", SalePrice: "1.00"},
			{Title: "Big", StoreID: "1", NormalPrice: "60.00", SalePrice: "24.00"},
		},
	}
	svc := newTestService(catalog)

	_, err := svc.Refresh(ctx)
	rq.NoError(err)

	list, err := svc.List(ctx, deals.ListQuery{Sort: rank.ModeDiscount})
	rq.NoError(err)
	rq.Len(list, 2)

	rq.Equal("Big", list[0].Title)
	rq.Equal(entity.PriceApprox, list[0].PriceKind)
	rq.Equal("USD", list[0].LocalCurrency)
	rq.Equal("$24.00", list[0].LocalPriceLabel)
	rq.Equal(60, list[0].DiscountPercent)
}

func TestListPagination(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	raws := make([]deals.RawDeal, 0, 5)
	for _, title := range []string{"A", "B", "C", "D", "E"} {
		raws = append(raws, deals.RawDeal{
			Title: title, StoreID: "1", NormalPrice: "10.00", SalePrice: "5.00",
		})
	}

	svc := newTestService(&fakeCatalog{deals: raws})

	_, err := svc.Refresh(ctx)
	rq.NoError(err)

	page1, err := svc.List(ctx, deals.ListQuery{Page: 1, PageSize: 2})
	rq.NoError(err)
	rq.Len(page1, 2)

	page3, err := svc.List(ctx, deals.ListQuery{Page: 3, PageSize: 2})
	rq.NoError(err)
	rq.Len(page3, 1)

	empty, err := svc.List(ctx, deals.ListQuery{Page: 4, PageSize: 2})
	rq.NoError(err)
	rq.Empty(empty)
}

func TestFilterDeals(t *testing.T) {
	rq := require.New(t)

	input := []entity.Deal{
		{Title: "On Steam", CurrentPrice: 5, ListPrice: 10, Platforms: []value.StoreKey{value.StoreSteam}},
		{Title: "On Epic", CurrentPrice: 30, ListPrice: 30, Platforms: []value.StoreKey{value.StoreEpic}},
		{Title: "Free", CurrentPrice: 0, ListPrice: 0, Platforms: []value.StoreKey{value.StoreGog}},
	}

	byStore := deals.FilterDeals(input, deals.ListFilter{Stores: []value.StoreKey{value.StoreSteam}})
	rq.Len(byStore, 1)
	rq.Equal("On Steam", byStore[0].Title)

	byPrice := deals.FilterDeals(input, deals.ListFilter{MinPrice: 1, MaxPrice: 10})
	rq.Len(byPrice, 1)

	// A zero-price giveaway still counts as on sale.
	onSale := deals.FilterDeals(input, deals.ListFilter{OnSaleOnly: true})
	rq.Len(onSale, 2)
	rq.Equal("On Steam", onSale[0].Title)
	rq.Equal("Free", onSale[1].Title)
}
