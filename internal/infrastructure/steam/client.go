package steam

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"dealradar/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Client fetches exact regional prices from the Steam storefront API.
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

type appDetails struct {
	Success bool `json:"success"`
	Data    struct {
		IsFree        bool `json:"is_free"`
		PriceOverview *struct {
			Currency string `json:"currency"`
			Final    int64  `json:"final"`
		} `json:"price_overview"`
	} `json:"data"`
}

// AppPrice returns the storefront-quoted price of an app in a region's local
// currency. ok=false means the store has no price data for the pair.
func (c *Client) AppPrice(ctx context.Context, appID, regionCode string) (entity.SteamPrice, bool, error) {
	params := url.Values{}
	params.Set("appids", appID)
	params.Set("cc", regionCode)
	params.Set("filters", "price_overview")

	endpoint := c.baseURL + "/appdetails?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return entity.SteamPrice{}, false, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.SteamPrice{}, false, fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.SteamPrice{}, false, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	// The response is keyed by app id.
	var body map[string]appDetails
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entity.SteamPrice{}, false, fmt.Errorf("json.Decode: %w", err)
	}

	details, ok := body[appID]
	if !ok || !details.Success || details.Data.PriceOverview == nil {
		return entity.SteamPrice{}, false, nil
	}

	overview := details.Data.PriceOverview

	return entity.SteamPrice{
		// Prices arrive in minor units.
		Amount:   float64(overview.Final) / 100,
		Currency: overview.Currency,
	}, true, nil
}
