package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dealradar/internal/domain/value"
)

func TestCanonicalStoreKey(t *testing.T) {
	rq := require.New(t)

	rq.Equal(value.StoreSteam, value.CanonicalStoreKey("1", "Steam"))
	rq.Equal(value.StoreEpic, value.CanonicalStoreKey("25", "Epic Games Store"))
	rq.Equal(value.StoreHumble, value.CanonicalStoreKey("11", "Humble Store"))
	rq.Equal(value.StoreGog, value.CanonicalStoreKey("7", "GOG"))

	// The id table wins even with a misleading name.
	rq.Equal(value.StoreSteam, value.CanonicalStoreKey("1", "Epic"))

	// Unmapped ids fall back to a name substring match.
	rq.Equal(value.StoreSteam, value.CanonicalStoreKey("999", "Some Steam Reseller"))
	rq.Equal(value.StoreGog, value.CanonicalStoreKey("999", "gog marketplace"))

	// No match keeps the raw id so the storefront is never lost.
	rq.Equal(value.StoreKey("999"), value.CanonicalStoreKey("999", "Unheard Of Shop"))
}

func TestParseStoreKey(t *testing.T) {
	rq := require.New(t)

	key, ok := value.ParseStoreKey("steam")
	rq.True(ok)
	rq.Equal(value.StoreSteam, key)

	key, ok = value.ParseStoreKey("  Epic  ")
	rq.True(ok)
	rq.Equal(value.StoreEpic, key)

	_, ok = value.ParseStoreKey("myspace")
	rq.False(ok)
}
