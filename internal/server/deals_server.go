package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"dealradar/internal/domain"
	"dealradar/internal/domain/entity"
	"dealradar/internal/domain/service/deals"
	"dealradar/internal/domain/service/pricing"
	"dealradar/internal/domain/service/quality"
	"dealradar/internal/domain/service/rank"
	"dealradar/internal/domain/value"
	"dealradar/pkg/errcodes"
	"dealradar/pkg/httpx/reply"
	"dealradar/pkg/httpx/req"
	"dealradar/pkg/rest"
)

type dealsService interface {
	List(ctx context.Context, q deals.ListQuery) ([]deals.DisplayDeal, error)
	Stores(ctx context.Context) ([]deals.StoreInfo, error)
	Refresh(ctx context.Context) (deals.RefreshResult, error)
}

type fxService interface {
	UsdRates(ctx context.Context) entity.FxRates
}

type DealsServer struct {
	dealsService dealsService
	fxService    fxService
}

func NewDealsServer(dealsService dealsService, fxService fxService) DealsServer {
	return DealsServer{
		dealsService: dealsService,
		fxService:    fxService,
	}
}

func (s DealsServer) getV1Deals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	query, err := parseDealsQuery(r)
	if err != nil {
		return err
	}

	list, err := s.dealsService.List(ctx, query)
	if err != nil {
		return replyDomainError(ctx, w, fmt.Errorf("dealsService.List: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDealList(list, query))

	return nil
}

func (s DealsServer) getV1Stores(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	stores, err := s.dealsService.Stores(ctx)
	if err != nil {
		return replyDomainError(ctx, w, fmt.Errorf("dealsService.Stores: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTStoreList(stores))

	return nil
}

func (s DealsServer) getV1Rates(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	rates := s.fxService.UsdRates(ctx)

	reply.JSON(ctx, w, http.StatusOK, newRESTRates(rates))

	return nil
}

func (s DealsServer) postV1Refresh(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	result, err := s.dealsService.Refresh(ctx)
	if err != nil {
		return replyDomainError(ctx, w, fmt.Errorf("dealsService.Refresh: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTRefreshResult(result))

	return nil
}

func (s DealsServer) postV1Classify(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ClassifyRequest
	if err := req.Read(r, &request); err != nil {
		return err
	}

	deal := entity.Deal{
		ListPrice:          request.ListPrice,
		CurrentPrice:       request.CurrentPrice,
		SteamRatingPercent: request.SteamRatingPercent,
		SteamRatingCount:   request.SteamRatingCount,
		MetacriticScore:    request.MetacriticScore,
	}
	score := pricing.Compute(deal.ListPrice, deal.CurrentPrice)

	reply.JSON(ctx, w, http.StatusOK, rest.ClassifyVerdict{
		Tier:            pricing.ClassifyDeal(deal).String(),
		Quality:         quality.TierOf(deal).String(),
		Score:           score.Score,
		DiscountPercent: score.DiscountPercent,
		Savings:         score.Savings,
		PriceLabel:      pricing.FormatPrice(deal.ListPrice, deal.CurrentPrice),
	})

	return nil
}

//nolint:cyclop // flat field-by-field query parsing
func parseDealsQuery(r *http.Request) (deals.ListQuery, error) {
	values := r.URL.Query()

	sortMode, ok := rank.ParseMode(values.Get("sort"))
	if !ok {
		return deals.ListQuery{}, failure.NewInvalidArgumentError(
			fmt.Sprintf("unknown sort mode %q", values.Get("sort")),
			failure.WithCode(errcodes.InvalidSortMode),
			failure.WithDescription("Supported: quality, discount, price-low, price-high"),
		)
	}

	var stores []value.StoreKey
	if raw := values.Get("stores"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			key, ok := value.ParseStoreKey(part)
			if !ok {
				return deals.ListQuery{}, failure.NewInvalidArgumentError(
					fmt.Sprintf("unknown store key %q", part),
					failure.WithCode(errcodes.InvalidStoreKey),
				)
			}
			stores = append(stores, key)
		}
	}

	minPrice, err := parsePrice(values.Get("minPrice"))
	if err != nil {
		return deals.ListQuery{}, err
	}

	maxPrice, err := parsePrice(values.Get("maxPrice"))
	if err != nil {
		return deals.ListQuery{}, err
	}

	currency := strings.ToUpper(values.Get("currency"))
	if currency != "" && len(currency) != 3 {
		return deals.ListQuery{}, failure.NewInvalidArgumentError(
			fmt.Sprintf("invalid currency code %q", values.Get("currency")),
			failure.WithCode(errcodes.InvalidCurrency),
			failure.WithDescription("Expected a three-letter ISO 4217 code"),
		)
	}

	page, err := parsePositiveInt(values.Get("page"))
	if err != nil {
		return deals.ListQuery{}, err
	}

	pageSize, err := parsePositiveInt(values.Get("pageSize"))
	if err != nil {
		return deals.ListQuery{}, err
	}

	return deals.ListQuery{
		Sort: sortMode,
		Filter: deals.ListFilter{
			Stores:     stores,
			MinPrice:   minPrice,
			MaxPrice:   maxPrice,
			OnSaleOnly: values.Get("onSale") == "true",
		},
		Currency: currency,
		Region:   strings.ToLower(values.Get("region")),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func parsePrice(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		return 0, failure.NewInvalidArgumentError(
			fmt.Sprintf("invalid price bound %q", raw),
			failure.WithCode(errcodes.InvalidPriceBound),
		)
	}

	return price, nil
}

func parsePositiveInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, failure.NewInvalidArgumentError(
			fmt.Sprintf("invalid paging value %q", raw),
			failure.WithCode(errcodes.InvalidPaging),
		)
	}

	return n, nil
}

// replyDomainError maps a catalog outage to 502 directly; everything else
// flows through the shared reply taxonomy.
func replyDomainError(ctx context.Context, w http.ResponseWriter, err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) && appErr.Code == errcodes.CatalogUnavailable {
		reply.JSON(ctx, w, http.StatusBadGateway, rest.Error{
			Code:    rest.ErrorCode(appErr.Code.String()),
			Message: appErr.Message,
		})

		return nil
	}

	return err
}
