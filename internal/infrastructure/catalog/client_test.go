package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"dealradar/internal/domain/service/deals"
	"dealradar/internal/domain/value"
	"dealradar/internal/infrastructure/catalog"
)

func TestDeals(t *testing.T) {
	rq := require.New(t)

	var gotQuery string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/deals", r.URL.Path)
		gotQuery = r.URL.RawQuery

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"title":"Hades","dealID":"abc","storeID":"1","salePrice":"12.49","normalPrice":"24.99","steamAppID":"1145360"}
		]`))
	}))
	t.Cleanup(ts.Close)

	client := catalog.NewClient(ts.URL, ts.Client())

	raws, err := client.Deals(context.Background(), deals.DealsQuery{
		StoreIDs: []string{"1", "25"},
		OnSale:   true,
		PageSize: 60,
	})
	rq.NoError(err)
	rq.Len(raws, 1)
	rq.Equal("Hades", raws[0].Title)
	rq.Equal("12.49", raws[0].SalePrice)

	rq.Contains(gotQuery, "storeID=1%2C25")
	rq.Contains(gotQuery, "onSale=1")
	rq.Contains(gotQuery, "pageSize=60")
}

func TestStores(t *testing.T) {
	rq := require.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/stores", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"storeID":"1","storeName":"Steam","isActive":1},
			{"storeID":"16","storeName":"Shiny Loot","isActive":0}
		]`))
	}))
	t.Cleanup(ts.Close)

	client := catalog.NewClient(ts.URL, ts.Client())

	stores, err := client.Stores(context.Background())
	rq.NoError(err)
	rq.Len(stores, 2)
	rq.Equal(value.StoreSteam, stores[0].Key)
	rq.True(stores[0].Active)
	rq.False(stores[1].Active)
}

func TestDealsUpstreamError(t *testing.T) {
	rq := require.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(ts.Close)

	client := catalog.NewClient(ts.URL, ts.Client())

	_, err := client.Deals(context.Background(), deals.DealsQuery{})
	rq.ErrorContains(err, "unexpected status 502")
}
