package fx_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dealradar/internal/domain/entity"
	"dealradar/internal/domain/service/fx"
)

type fakeRateSource struct {
	rates entity.FxRates
	err   error
	calls int
}

func (f *fakeRateSource) Latest(context.Context) (entity.FxRates, error) {
	f.calls++
	return f.rates, f.err
}

type fakePriceSource struct {
	price entity.SteamPrice
	ok    bool
	err   error
	calls int
}

func (f *fakePriceSource) AppPrice(context.Context, string, string) (entity.SteamPrice, bool, error) {
	f.calls++
	return f.price, f.ok, f.err
}

type fakeStore struct {
	data map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}}
}

func (f *fakeStore) Get(_ context.Context, key string) ([]byte, bool) {
	val, ok := f.data[key]
	return val, ok
}

func (f *fakeStore) Set(_ context.Context, key string, val []byte, _ time.Duration) {
	f.data[key] = val
}

func (f *fakeStore) Remove(_ context.Context, key string) {
	delete(f.data, key)
}

func ratesWith(eur float64) entity.FxRates {
	return entity.FxRates{
		Base:  "USD",
		Date:  time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		Rates: map[string]float64{"USD": 1, "EUR": eur},
	}
}

func TestUsdRatesCachesWithinTTL(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	source := &fakeRateSource{rates: ratesWith(0.9)}
	svc := fx.NewService(source, &fakePriceSource{}, newFakeStore())

	first := svc.UsdRates(ctx)
	rq.InDelta(0.9, first.Rates["EUR"], 1e-9)
	rq.Equal(1, source.calls)

	// Second call inside the TTL serves the cache.
	_ = svc.UsdRates(ctx)
	rq.Equal(1, source.calls)
}

func TestUsdRatesRefetchesAfterTTL(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	now := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	source := &fakeRateSource{rates: ratesWith(0.9)}
	svc := fx.NewService(source, &fakePriceSource{}, newFakeStore()).
		WithClock(func() time.Time { return now })

	_ = svc.UsdRates(ctx)
	rq.Equal(1, source.calls)

	now = now.Add(25 * time.Hour)
	source.rates = ratesWith(0.95)

	refreshed := svc.UsdRates(ctx)
	rq.Equal(2, source.calls)
	rq.InDelta(0.95, refreshed.Rates["EUR"], 1e-9)
}

func TestUsdRatesServesStaleOnFetchFailure(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	now := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	source := &fakeRateSource{rates: ratesWith(0.9)}
	svc := fx.NewService(source, &fakePriceSource{}, newFakeStore()).
		WithClock(func() time.Time { return now })

	_ = svc.UsdRates(ctx)

	now = now.Add(25 * time.Hour)
	source.err = errors.New("rate source down")

	stale := svc.UsdRates(ctx)
	rq.InDelta(0.9, stale.Rates["EUR"], 1e-9)
}

func TestUsdRatesFallsBackWhenNothingCached(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	fallbacks := 0
	source := &fakeRateSource{err: errors.New("rate source down")}
	svc := fx.NewService(source, &fakePriceSource{}, newFakeStore()).
		WithFallbackObserver(func() { fallbacks++ })

	got := svc.UsdRates(ctx)
	rq.Equal(fx.FallbackRates().Rates["EUR"], got.Rates["EUR"])
	rq.Equal(1, fallbacks)
}

func TestUsdRatesOfflineMode(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	source := &fakeRateSource{rates: ratesWith(0.9)}
	svc := fx.NewService(source, &fakePriceSource{}, newFakeStore()).
		WithNetworkAvailable(false)

	got := svc.UsdRates(ctx)
	rq.Zero(source.calls)
	rq.Equal(fx.FallbackRates().Rates["EUR"], got.Rates["EUR"])
}

func TestInvalidateRatesForcesRefetch(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	source := &fakeRateSource{rates: ratesWith(0.9)}
	svc := fx.NewService(source, &fakePriceSource{}, newFakeStore())

	_ = svc.UsdRates(ctx)
	svc.InvalidateRates(ctx)
	_ = svc.UsdRates(ctx)

	rq.Equal(2, source.calls)
}

func TestSteamLocalPrice(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	prices := &fakePriceSource{
		price: entity.SteamPrice{Amount: 1999, Currency: "JPY"},
		ok:    true,
	}
	svc := fx.NewService(&fakeRateSource{}, prices, newFakeStore())

	got, ok := svc.SteamLocalPrice(ctx, "1145360", "jp")
	rq.True(ok)
	rq.Equal("JPY", got.Currency)
	rq.Equal(1, prices.calls)

	// Cached per (app, region) pair.
	_, ok = svc.SteamLocalPrice(ctx, "1145360", "jp")
	rq.True(ok)
	rq.Equal(1, prices.calls)

	// A different region is a separate cache entry.
	_, _ = svc.SteamLocalPrice(ctx, "1145360", "de")
	rq.Equal(2, prices.calls)
}

func TestSteamLocalPriceUnavailable(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := fx.NewService(&fakeRateSource{}, &fakePriceSource{ok: false}, newFakeStore())

	_, ok := svc.SteamLocalPrice(ctx, "1145360", "jp")
	rq.False(ok)

	// Errors degrade to unavailable.
	svc = fx.NewService(&fakeRateSource{}, &fakePriceSource{err: errors.New("boom")}, newFakeStore())
	_, ok = svc.SteamLocalPrice(ctx, "1145360", "jp")
	rq.False(ok)

	// Empty identifiers never hit the source.
	_, ok = svc.SteamLocalPrice(ctx, "", "jp")
	rq.False(ok)
}

func TestConvertFromUsd(t *testing.T) {
	rq := require.New(t)

	rates := ratesWith(0.9)

	rq.InDelta(9, fx.ConvertFromUsd(10, "EUR", &rates), 1e-9)
	rq.InDelta(10, fx.ConvertFromUsd(10, "XXX", &rates), 1e-9)
	rq.InDelta(10, fx.ConvertFromUsd(10, "EUR", nil), 1e-9)
}

func TestFormatCurrency(t *testing.T) {
	rq := require.New(t)

	rq.Equal("$19.99", fx.FormatCurrency(19.99, "USD"))
	rq.Equal("€18.39", fx.FormatCurrency(18.39, "EUR"))
	rq.Equal("¥2918", fx.FormatCurrency(2918.0, "JPY"))
	rq.Equal("SEK 205.20", fx.FormatCurrency(205.2, "SEK"))
}
