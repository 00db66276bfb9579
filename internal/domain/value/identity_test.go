package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dealradar/internal/domain/value"
)

func TestNormalizeTitle(t *testing.T) {
	rq := require.New(t)

	rq.Equal("hades", value.NormalizeTitle("Hades™"))
	rq.Equal("doom eternal", value.NormalizeTitle("  DOOM   Eternal®  "))
	rq.Equal("okami hd", value.NormalizeTitle("OKAMI HD©"))
	rq.Equal("", value.NormalizeTitle("   "))
}
