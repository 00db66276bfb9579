package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"dealradar/internal/domain/service/deals"
	"dealradar/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Client talks to the deal aggregation API (CheapShark wire format).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Deals fetches one page of raw deal records.
func (c *Client) Deals(ctx context.Context, q deals.DealsQuery) ([]deals.RawDeal, error) {
	params := url.Values{}

	if len(q.StoreIDs) > 0 {
		params.Set("storeID", strings.Join(q.StoreIDs, ","))
	}
	if q.OnSale {
		params.Set("onSale", "1")
	}
	if q.LowerPrice > 0 {
		params.Set("lowerPrice", strconv.FormatFloat(q.LowerPrice, 'f', -1, 64))
	}
	if q.UpperPrice > 0 {
		params.Set("upperPrice", strconv.FormatFloat(q.UpperPrice, 'f', -1, 64))
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.PageNumber > 0 {
		params.Set("pageNumber", strconv.Itoa(q.PageNumber))
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}

	var raws []deals.RawDeal
	if err := c.getJSON(ctx, "/deals?"+params.Encode(), &raws); err != nil {
		return nil, fmt.Errorf("catalog.Deals: %w", err)
	}

	return raws, nil
}

// storeRecord is the upstream directory entry shape.
type storeRecord struct {
	StoreID   string `json:"storeID"`
	StoreName string `json:"storeName"`
	IsActive  int    `json:"isActive"`
}

// Stores fetches the storefront directory.
func (c *Client) Stores(ctx context.Context) ([]deals.StoreInfo, error) {
	var records []storeRecord
	if err := c.getJSON(ctx, "/stores", &records); err != nil {
		return nil, fmt.Errorf("catalog.Stores: %w", err)
	}

	stores := make([]deals.StoreInfo, 0, len(records))
	for _, rec := range records {
		stores = append(stores, deals.StoreInfo{
			ID:     rec.StoreID,
			Name:   rec.StoreName,
			Active: rec.IsActive == 1,
			Key:    value.CanonicalStoreKey(rec.StoreID, rec.StoreName),
		})
	}

	return stores, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}
