package fxapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"dealradar/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Client fetches USD exchange rate tables (open.er-api.com wire format).
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

type latestResponse struct {
	Result         string             `json:"result"`
	BaseCode       string             `json:"base_code"`
	TimeLastUpdate int64              `json:"time_last_update_unix"`
	Rates          map[string]float64 `json:"rates"`
}

// Latest returns the current USD-based rate table.
func (c *Client) Latest(ctx context.Context) (entity.FxRates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/latest/USD", http.NoBody)
	if err != nil {
		return entity.FxRates{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.FxRates{}, fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.FxRates{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entity.FxRates{}, fmt.Errorf("json.Decode: %w", err)
	}

	if body.Result != "success" || len(body.Rates) == 0 {
		return entity.FxRates{}, fmt.Errorf("rate source returned %q with %d rates", body.Result, len(body.Rates))
	}

	return entity.FxRates{
		Base:  body.BaseCode,
		Date:  time.Unix(body.TimeLastUpdate, 0).UTC(),
		Rates: body.Rates,
	}, nil
}
