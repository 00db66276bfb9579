package persistence

import (
	"encoding/json"
	"time"

	"dealradar/internal/domain/entity"
	"dealradar/internal/domain/value"
)

// dealSchema maps one row of the deals table.
type dealSchema struct {
	IdentityKey        string    `db:"identity_key"`
	Title              string    `db:"title"`
	Image              string    `db:"image"`
	ListPrice          float64   `db:"list_price"`
	CurrentPrice       float64   `db:"current_price"`
	Platforms          []byte    `db:"platforms"`
	DealID             string    `db:"deal_id"`
	GameID             string    `db:"game_id"`
	SteamAppID         string    `db:"steam_app_id"`
	ClaimLinks         []byte    `db:"claim_links"`
	SteamRatingPercent int       `db:"steam_rating_percent"`
	SteamRatingCount   int       `db:"steam_rating_count"`
	MetacriticScore    int       `db:"metacritic_score"`
	DealRating         float64   `db:"deal_rating"`
	Position           int       `db:"position"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func fromDeal(d entity.Deal, position int) (dealSchema, error) {
	platforms, err := json.Marshal(d.Platforms)
	if err != nil {
		return dealSchema{}, err
	}

	links, err := json.Marshal(d.ClaimLinks)
	if err != nil {
		return dealSchema{}, err
	}

	return dealSchema{
		IdentityKey:        d.IdentityKey(),
		Title:              d.Title,
		Image:              d.Image,
		ListPrice:          d.ListPrice,
		CurrentPrice:       d.CurrentPrice,
		Platforms:          platforms,
		DealID:             d.DealID,
		GameID:             d.GameID,
		SteamAppID:         d.SteamAppID,
		ClaimLinks:         links,
		SteamRatingPercent: d.SteamRatingPercent,
		SteamRatingCount:   d.SteamRatingCount,
		MetacriticScore:    d.MetacriticScore,
		DealRating:         d.DealRating,
		Position:           position,
		UpdatedAt:          time.Now(),
	}, nil
}

func (s *dealSchema) toDomain() (entity.Deal, error) {
	var platforms []value.StoreKey
	if len(s.Platforms) > 0 {
		if err := json.Unmarshal(s.Platforms, &platforms); err != nil {
			return entity.Deal{}, err
		}
	}

	var links map[value.StoreKey]string
	if len(s.ClaimLinks) > 0 {
		if err := json.Unmarshal(s.ClaimLinks, &links); err != nil {
			return entity.Deal{}, err
		}
	}

	return entity.Deal{
		Title:              s.Title,
		Image:              s.Image,
		ListPrice:          s.ListPrice,
		CurrentPrice:       s.CurrentPrice,
		Platforms:          platforms,
		DealID:             s.DealID,
		GameID:             s.GameID,
		SteamAppID:         s.SteamAppID,
		ClaimLinks:         links,
		SteamRatingPercent: s.SteamRatingPercent,
		SteamRatingCount:   s.SteamRatingCount,
		MetacriticScore:    s.MetacriticScore,
		DealRating:         s.DealRating,
	}, nil
}
