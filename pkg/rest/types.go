package rest

// Deal is one row of the browsable list.
type Deal struct {
	Title           string            `json:"title"`
	Image           string            `json:"image,omitempty"`
	ListPrice       float64           `json:"listPrice"`
	CurrentPrice    float64           `json:"currentPrice"`
	Platforms       []string          `json:"platforms"`
	ClaimLinks      map[string]string `json:"claimLinks,omitempty"`
	Tier            string            `json:"tier"`
	Quality         string            `json:"quality"`
	Score           float64           `json:"score"`
	DiscountPercent int               `json:"discountPercent"`
	PriceLabel      string            `json:"priceLabel"`
	LocalPrice      float64           `json:"localPrice"`
	LocalCurrency   string            `json:"localCurrency"`
	LocalPriceLabel string            `json:"localPriceLabel"`
	PriceKind       string            `json:"priceKind"`
	SteamAppID      string            `json:"steamAppId,omitempty"`
	DealRating      float64           `json:"dealRating,omitempty"`
}

type DealList struct {
	Deals []Deal `json:"deals"`
	Page  int    `json:"page"`
	Sort  string `json:"sort"`
}

// Store is one storefront directory entry.
type Store struct {
	ID     string `json:"id"`
	Key    string `json:"key"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type StoreList struct {
	Stores []Store `json:"stores"`
}

// Rates is the current FX snapshot.
type Rates struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// ClassifyRequest asks for a one-off verdict on a price pair with optional
// quality signals.
type ClassifyRequest struct {
	ListPrice          float64 `json:"listPrice" validate:"gte=0"`
	CurrentPrice       float64 `json:"currentPrice" validate:"gte=0"`
	SteamRatingPercent int     `json:"steamRatingPercent" validate:"gte=0,lte=100"`
	SteamRatingCount   int     `json:"steamRatingCount" validate:"gte=0"`
	MetacriticScore    int     `json:"metacriticScore" validate:"gte=0,lte=100"`
}

type ClassifyVerdict struct {
	Tier            string  `json:"tier"`
	Quality         string  `json:"quality"`
	Score           float64 `json:"score"`
	DiscountPercent int     `json:"discountPercent"`
	Savings         float64 `json:"savings"`
	PriceLabel      string  `json:"priceLabel"`
}

type RefreshResult struct {
	Fetched int `json:"fetched"`
	Merged  int `json:"merged"`
	Alerts  int `json:"alerts"`
}

// Error is the error response model.
type Error struct {
	// Code is the machine-readable error code.
	Code ErrorCode `json:"code"`

	// Message is a human-readable description for the UI.
	Message string `json:"message"`
}

type ErrorCode string
