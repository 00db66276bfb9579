package deals

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"dealradar/internal/domain"
	"dealradar/internal/domain/entity"
	"dealradar/internal/domain/service/fx"
	"dealradar/internal/domain/service/merge"
	"dealradar/internal/domain/service/pricing"
	"dealradar/internal/domain/service/quality"
	"dealradar/internal/domain/service/rank"
	"dealradar/internal/domain/value"
	"dealradar/pkg/errcodes"
	"dealradar/pkg/logx"
)

const (
	storeDirectoryKey = "directory"
	storeDirectoryTTL = 6 * time.Hour

	alertDedupeTTL = time.Hour

	defaultPageSize = 60
	maxPageSize     = 200
)

// DealsQuery is the upstream catalog fetch filter.
type DealsQuery struct {
	StoreIDs   []string
	OnSale     bool
	LowerPrice float64
	UpperPrice float64
	PageSize   int
	PageNumber int
	SortBy     string
}

// RawDeal is one upstream catalog record. Numeric fields arrive as strings
// and pass through the value parsing boundary exactly once, in MapDeal.
type RawDeal struct {
	Title              string `json:"title"`
	DealID             string `json:"dealID"`
	StoreID            string `json:"storeID"`
	GameID             string `json:"gameID"`
	SalePrice          string `json:"salePrice"`
	NormalPrice        string `json:"normalPrice"`
	SteamAppID         string `json:"steamAppID"`
	SteamRatingPercent string `json:"steamRatingPercent"`
	SteamRatingCount   string `json:"steamRatingCount"`
	MetacriticScore    string `json:"metacriticScore"`
	DealRating         string `json:"dealRating"`
	Thumb              string `json:"thumb"`
}

// StoreInfo is one storefront directory entry.
type StoreInfo struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Active bool           `json:"active"`
	Key    value.StoreKey `json:"key"`
}

type CatalogClient interface {
	Deals(ctx context.Context, q DealsQuery) ([]RawDeal, error)
	Stores(ctx context.Context) ([]StoreInfo, error)
}

type DealRepository interface {
	UpsertDeals(ctx context.Context, deals []entity.Deal) error
	ListDeals(ctx context.Context, f ListFilter) ([]entity.Deal, error)
}

// ListFilter narrows the stored snapshot before ranking.
type ListFilter struct {
	Stores     []value.StoreKey
	MinPrice   float64
	MaxPrice   float64
	OnSaleOnly bool
}

// ListQuery selects, converts and orders the browsable list.
type ListQuery struct {
	Sort     rank.Mode
	Filter   ListFilter
	Currency string
	Region   string
	Page     int
	PageSize int
}

// DisplayDeal is one list row: the merged record plus everything the UI
// renders per item.
type DisplayDeal struct {
	entity.Deal

	Tier            entity.Tier
	Quality         entity.QualityTier
	Score           float64
	DiscountPercent int
	Savings         float64

	PriceLabel      string
	LocalPrice      float64
	LocalCurrency   string
	LocalPriceLabel string
	PriceKind       entity.PriceKind
}

type RefreshResult struct {
	Fetched int
	Merged  int
	Alerts  []entity.DealAlert
}

// Service turns raw catalog records into the canonical merged snapshot and
// assembles display lists from it.
type Service struct {
	catalog CatalogClient
	repo    DealRepository
	fx      *fx.Service

	fetchQuery DealsQuery

	// Explicit directory cache, invalidated via InvalidateStores.
	storeDir  *cache.Cache
	alertSeen *cache.Cache

	mu       sync.RWMutex
	snapshot []entity.Deal
}

func NewService(catalog CatalogClient, repo DealRepository, fxService *fx.Service) *Service {
	return &Service{
		catalog: catalog,
		repo:    repo,
		fx:      fxService,
		fetchQuery: DealsQuery{
			OnSale:   true,
			PageSize: 60,
		},
		storeDir:  cache.New(storeDirectoryTTL, storeDirectoryTTL),
		alertSeen: cache.New(alertDedupeTTL, alertDedupeTTL),
	}
}

func (s *Service) WithFetchQuery(q DealsQuery) *Service {
	s.fetchQuery = q
	return s
}

// Stores returns the storefront directory, cached until the TTL or an
// explicit invalidation.
func (s *Service) Stores(ctx context.Context) ([]StoreInfo, error) {
	if cached, found := s.storeDir.Get(storeDirectoryKey); found {
		return cached.([]StoreInfo), nil
	}

	stores, err := s.catalog.Stores(ctx)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.CatalogUnavailable, "fetch store directory")
	}

	for i := range stores {
		stores[i].Key = value.CanonicalStoreKey(stores[i].ID, stores[i].Name)
	}

	s.storeDir.Set(storeDirectoryKey, stores, cache.DefaultExpiration)

	return stores, nil
}

// InvalidateStores drops the cached directory so the next call refetches.
func (s *Service) InvalidateStores() {
	s.storeDir.Flush()
}

// Refresh pulls the current catalog page set, normalizes and merges it,
// persists the snapshot and reports insane-tier finds not alerted recently.
func (s *Service) Refresh(ctx context.Context) (RefreshResult, error) {
	raws, err := s.catalog.Deals(ctx, s.fetchQuery)
	if err != nil {
		// The catalog has no fallback table: surface a descriptive error.
		return RefreshResult{}, domain.WrapError(err, errcodes.CatalogUnavailable, "fetch catalog deals")
	}

	nameByID := s.storeNames(ctx)

	normalized := make([]entity.Deal, 0, len(raws))
	for _, raw := range raws {
		normalized = append(normalized, MapDeal(raw, nameByID[raw.StoreID]))
	}

	merged := merge.ByGame(normalized)

	s.mu.Lock()
	s.snapshot = merged
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.UpsertDeals(ctx, merged); err != nil {
			// The in-memory snapshot still serves reads.
			logger(ctx).Error("snapshot upsert failed", logx.Error(err))
		}
	}

	result := RefreshResult{
		Fetched: len(raws),
		Merged:  len(merged),
		Alerts:  s.collectAlerts(merged),
	}

	return result, nil
}

func (s *Service) collectAlerts(merged []entity.Deal) []entity.DealAlert {
	var alerts []entity.DealAlert

	for _, d := range merged {
		tier := pricing.ClassifyDeal(d)
		if tier != entity.TierInsane {
			continue
		}

		key := d.IdentityKey()
		if _, seen := s.alertSeen.Get(key); seen {
			continue
		}
		s.alertSeen.Set(key, true, cache.DefaultExpiration)

		score := pricing.Compute(d.ListPrice, d.CurrentPrice)
		alerts = append(alerts, entity.DealAlert{
			Deal:            d,
			Tier:            tier,
			Quality:         quality.TierOf(d),
			DiscountPercent: score.DiscountPercent,
			Score:           score.Score,
		})
	}

	return alerts
}

// List assembles the ranked display list for one page.
func (s *Service) List(ctx context.Context, q ListQuery) ([]DisplayDeal, error) {
	source := s.load(ctx, q.Filter)

	ranked := rank.Sort(source, q.Sort)
	page := paginate(ranked, q.Page, q.PageSize)

	currency := strings.ToUpper(q.Currency)
	if currency == "" {
		currency = "USD"
	}

	region := q.Region
	if region == "" {
		region = regionForCurrency(currency)
	}

	rates := s.fx.UsdRates(ctx)

	result := make([]DisplayDeal, 0, len(page))
	for _, d := range page {
		result = append(result, s.display(ctx, d, currency, region, &rates))
	}

	return result, nil
}

func (s *Service) display(
	ctx context.Context,
	d entity.Deal,
	currency, region string,
	rates *entity.FxRates,
) DisplayDeal {
	score := pricing.Compute(d.ListPrice, d.CurrentPrice)

	row := DisplayDeal{
		Deal:            d,
		Tier:            pricing.ClassifyDeal(d),
		Quality:         quality.TierOf(d),
		Score:           score.Score,
		DiscountPercent: score.DiscountPercent,
		Savings:         score.Savings,
		PriceLabel:      pricing.FormatPrice(d.ListPrice, d.CurrentPrice),
	}

	// Exact storefront quote wins over the FX approximation when available.
	if exact, ok := s.fx.SteamLocalPrice(ctx, d.SteamAppID, region); ok {
		row.LocalPrice = exact.Amount
		row.LocalCurrency = exact.Currency
		row.LocalPriceLabel = fx.FormatCurrency(exact.Amount, exact.Currency)
		row.PriceKind = entity.PriceExact

		return row
	}

	converted := fx.ConvertFromUsd(d.CurrentPrice, currency, rates)
	row.LocalPrice = converted
	row.LocalCurrency = currency
	row.LocalPriceLabel = fx.FormatCurrency(converted, currency)
	row.PriceKind = entity.PriceApprox

	return row
}

// load reads the persisted snapshot, falling back to the last in-memory one
// when the repository read fails.
func (s *Service) load(ctx context.Context, f ListFilter) []entity.Deal {
	if s.repo != nil {
		fromRepo, err := s.repo.ListDeals(ctx, f)
		if err == nil {
			return fromRepo
		}

		logger(ctx).Warn("snapshot read failed, serving in-memory copy", logx.Error(err))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return FilterDeals(s.snapshot, f)
}

func (s *Service) storeNames(ctx context.Context) map[string]string {
	stores, err := s.Stores(ctx)
	if err != nil {
		// Normalization still works from ids alone.
		logger(ctx).Warn("store directory unavailable", logx.Error(err))
		return nil
	}

	names := make(map[string]string, len(stores))
	for _, st := range stores {
		names[st.ID] = st.Name
	}

	return names
}

// FilterDeals applies a ListFilter in memory, mirroring the repository's
// WHERE clause for the fallback path.
func FilterDeals(deals []entity.Deal, f ListFilter) []entity.Deal {
	wanted := make(map[value.StoreKey]bool, len(f.Stores))
	for _, key := range f.Stores {
		wanted[key] = true
	}

	result := make([]entity.Deal, 0, len(deals))

	for _, d := range deals {
		if f.MinPrice > 0 && d.CurrentPrice < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && d.CurrentPrice > f.MaxPrice {
			continue
		}
		if f.OnSaleOnly && d.CurrentPrice >= d.ListPrice && d.CurrentPrice > pricingFreeCeiling {
			continue
		}
		if len(wanted) > 0 && !hasAnyPlatform(d, wanted) {
			continue
		}

		result = append(result, d)
	}

	return result
}

// Matches the pricing engine's free threshold so a zero-price entry with a
// zero list price still counts as on sale.
const pricingFreeCeiling = 0.01

func hasAnyPlatform(d entity.Deal, wanted map[value.StoreKey]bool) bool {
	for _, p := range d.Platforms {
		if wanted[p] {
			return true
		}
	}

	return false
}

func paginate(deals []entity.Deal, page, pageSize int) []entity.Deal {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(deals) {
		return nil
	}

	end := start + pageSize
	if end > len(deals) {
		end = len(deals)
	}

	return deals[start:end]
}

//nolint:gochecknoglobals
var regionByCurrency = map[string]string{
	"USD": "us",
	"EUR": "de",
	"GBP": "gb",
	"JPY": "jp",
	"CAD": "ca",
	"AUD": "au",
	"BRL": "br",
	"PLN": "pl",
	"KRW": "kr",
	"CNY": "cn",
	"INR": "in",
	"MXN": "mx",
	"TRY": "tr",
	"UAH": "ua",
	"NOK": "no",
	"SEK": "se",
	"DKK": "dk",
	"CHF": "ch",
	"NZD": "nz",
	"ZAR": "za",
}

func regionForCurrency(currency string) string {
	return regionByCurrency[currency]
}

// Describe renders a short log line for one query, used by the worker.
func (q DealsQuery) Describe() string {
	return fmt.Sprintf("stores=%v onSale=%t pageSize=%d", q.StoreIDs, q.OnSale, q.PageSize)
}
