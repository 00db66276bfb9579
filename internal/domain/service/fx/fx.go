package fx

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"

	"dealradar/internal/domain/entity"
	"dealradar/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	ratesCacheKey = "fx:usd-rates"
	ratesTTL      = 24 * time.Hour

	steamPriceKeyFormat = "steam-price:%s:%s"
	steamPriceTTL       = 12 * time.Hour
)

// RateSource fetches a live USD-based exchange rate table.
type RateSource interface {
	Latest(ctx context.Context) (entity.FxRates, error)
}

// PriceSource fetches an exact storefront-quoted price for one app in one
// region. ok=false means the store has no data for the pair.
type PriceSource interface {
	AppPrice(ctx context.Context, appID, regionCode string) (entity.SteamPrice, bool, error)
}

// Store is the key/value persistence used for TTL caching. Absent keys,
// parse failures and backend errors are all cache misses, never hard errors.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration)
	Remove(ctx context.Context, key string)
}

// envelope wraps cached payloads with their write time so freshness is
// decided by the service, not the backend.
type envelope struct {
	SavedAt time.Time           `json:"savedAt"`
	Data    jsoniter.RawMessage `json:"data"`
}

// Service converts USD amounts into a viewer's currency and looks up exact
// regional storefront prices. Conversion never fails: a dead rate source
// degrades to cached and then to built-in fallback rates.
type Service struct {
	rates  RateSource
	prices PriceSource
	store  Store

	now              func() time.Time
	networkAvailable bool

	// Called each time conversion degrades to the built-in table.
	onFallback func()
}

func NewService(rates RateSource, prices PriceSource, store Store) *Service {
	return &Service{
		rates:            rates,
		prices:           prices,
		store:            store,
		now:              time.Now,
		networkAvailable: true,
	}
}

// WithNetworkAvailable disables live fetching, e.g. for offline runtimes and
// tests. The service then serves cached or fallback data only.
func (s *Service) WithNetworkAvailable(ok bool) *Service {
	s.networkAvailable = ok
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) WithFallbackObserver(fn func()) *Service {
	s.onFallback = fn
	return s
}

func (s *Service) fallbackRates() entity.FxRates {
	if s.onFallback != nil {
		s.onFallback()
	}

	return FallbackRates()
}

// UsdRates returns the cached table if fresher than the TTL, otherwise
// fetches live rates and caches them. On any failure it returns stale cached
// data if present, else the built-in fallback table.
func (s *Service) UsdRates(ctx context.Context) entity.FxRates {
	cached, fresh := s.cachedRates(ctx)

	if fresh {
		return *cached
	}

	if !s.networkAvailable {
		if cached != nil {
			return *cached
		}

		return s.fallbackRates()
	}

	live, err := s.rates.Latest(ctx)
	if err != nil {
		logger(ctx).Warn("fx rates fetch failed, serving fallback", logx.Error(err))

		if cached != nil {
			return *cached
		}

		return s.fallbackRates()
	}

	if live.Base == "" {
		live.Base = "USD"
	}
	if live.Date.IsZero() {
		live.Date = s.now()
	}

	s.writeEnvelope(ctx, ratesCacheKey, live)

	return live
}

// InvalidateRates drops the cached table so the next UsdRates call fetches.
func (s *Service) InvalidateRates(ctx context.Context) {
	s.store.Remove(ctx, ratesCacheKey)
}

// SteamLocalPrice returns the exact storefront price for (appID, regionCode),
// cached for 12 hours per pair. ok=false means unavailable, not an error.
func (s *Service) SteamLocalPrice(ctx context.Context, appID, regionCode string) (entity.SteamPrice, bool) {
	if appID == "" || regionCode == "" {
		return entity.SteamPrice{}, false
	}

	key := fmt.Sprintf(steamPriceKeyFormat, appID, regionCode)

	var price entity.SteamPrice
	if s.readEnvelope(ctx, key, steamPriceTTL, &price) {
		return price, true
	}

	if !s.networkAvailable {
		return entity.SteamPrice{}, false
	}

	price, ok, err := s.prices.AppPrice(ctx, appID, regionCode)
	if err != nil {
		logger(ctx).Warn("steam price fetch failed",
			logx.Error(err),
			slog.String(logx.FieldAppID, appID),
			slog.String(logx.FieldRegion, regionCode),
		)

		return entity.SteamPrice{}, false
	}

	if !ok {
		return entity.SteamPrice{}, false
	}

	s.writeEnvelope(ctx, key, price)

	return price, true
}

func (s *Service) cachedRates(ctx context.Context) (rates *entity.FxRates, fresh bool) {
	raw, ok := s.store.Get(ctx, ratesCacheKey)
	if !ok {
		return nil, false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false
	}

	var cached entity.FxRates
	if err := json.Unmarshal(env.Data, &cached); err != nil {
		return nil, false
	}

	return &cached, s.now().Sub(env.SavedAt) < ratesTTL
}

func (s *Service) readEnvelope(ctx context.Context, key string, ttl time.Duration, dest any) bool {
	raw, ok := s.store.Get(ctx, key)
	if !ok {
		return false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return false
	}

	if s.now().Sub(env.SavedAt) >= ttl {
		return false
	}

	return json.Unmarshal(env.Data, dest) == nil
}

func (s *Service) writeEnvelope(ctx context.Context, key string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}

	raw, err := json.Marshal(envelope{SavedAt: s.now(), Data: payload})
	if err != nil {
		return
	}

	// TTL doubled so stale data survives for the degraded path above.
	s.store.Set(ctx, key, raw, 2*ratesTTL)
}
