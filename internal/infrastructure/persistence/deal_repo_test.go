package persistence_test

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib"

	"dealradar/internal/domain/entity"
	"dealradar/internal/domain/service/deals"
	"dealradar/internal/domain/value"
	"dealradar/internal/infrastructure/persistence"
	"dealradar/pkg/dbtest"
)

// Requires a live database; set TEST_PG_DSN to run.
func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("TEST_PG_DSN")
	if dsn == "" {
		t.Skip("TEST_PG_DSN is not set")
	}

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, dbtest.MigrateFromFile(db, "../../../migrations/001_deals.sql"))
	require.NoError(t, dbtest.Truncate(db, "deals"))

	return db
}

func snapshot() []entity.Deal {
	return []entity.Deal{
		{
			Title:        "Hades",
			ListPrice:    24.99,
			CurrentPrice: 9.99,
			Platforms:    []value.StoreKey{value.StoreSteam, value.StoreEpic},
			SteamAppID:   "1145360",
			ClaimLinks: map[value.StoreKey]string{
				value.StoreSteam: "https://store.steampowered.com/app/1145360",
			},
			SteamRatingPercent: 98,
			SteamRatingCount:   250000,
		},
		{
			Title:        "Celeste",
			ListPrice:    19.99,
			CurrentPrice: 19.99,
			Platforms:    []value.StoreKey{value.StoreGog},
			SteamAppID:   "504230",
		},
	}
}

func TestDealRepositoryRoundTrip(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := persistence.NewDealRepository(testDB(t))

	rq.NoError(repo.UpsertDeals(ctx, snapshot()))

	got, err := repo.ListDeals(ctx, deals.ListFilter{})
	rq.NoError(err)
	rq.Len(got, 2)

	// Merge order survives the round trip.
	rq.Equal("Hades", got[0].Title)
	rq.Equal([]value.StoreKey{value.StoreSteam, value.StoreEpic}, got[0].Platforms)
	rq.Equal("https://store.steampowered.com/app/1145360", got[0].ClaimLinks[value.StoreSteam])
	rq.Equal(98, got[0].SteamRatingPercent)
}

func TestDealRepositoryUpsertReplaces(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := persistence.NewDealRepository(testDB(t))

	rq.NoError(repo.UpsertDeals(ctx, snapshot()))

	updated := snapshot()[:1]
	updated[0].CurrentPrice = 4.99

	rq.NoError(repo.UpsertDeals(ctx, updated))

	got, err := repo.ListDeals(ctx, deals.ListFilter{})
	rq.NoError(err)
	rq.Len(got, 1)
	rq.InDelta(4.99, got[0].CurrentPrice, 1e-9)
}

func TestDealRepositoryFilters(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := persistence.NewDealRepository(testDB(t))

	rq.NoError(repo.UpsertDeals(ctx, snapshot()))

	cheap, err := repo.ListDeals(ctx, deals.ListFilter{MaxPrice: 10})
	rq.NoError(err)
	rq.Len(cheap, 1)
	rq.Equal("Hades", cheap[0].Title)

	onSale, err := repo.ListDeals(ctx, deals.ListFilter{OnSaleOnly: true})
	rq.NoError(err)
	rq.Len(onSale, 1)

	byStore, err := repo.ListDeals(ctx, deals.ListFilter{Stores: []value.StoreKey{value.StoreGog}})
	rq.NoError(err)
	rq.Len(byStore, 1)
	rq.Equal("Celeste", byStore[0].Title)
}
