package quality_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dealradar/internal/domain/entity"
	"dealradar/internal/domain/service/quality"
)

func TestTierOf(t *testing.T) {
	rq := require.New(t)

	rq.Equal(entity.QualityGreat, quality.TierOf(entity.Deal{
		SteamRatingPercent: 90, SteamRatingCount: 1000,
	}))
	rq.Equal(entity.QualityGreat, quality.TierOf(entity.Deal{
		MetacriticScore: 85,
	}))

	rq.Equal(entity.QualityGood, quality.TierOf(entity.Deal{
		SteamRatingPercent: 80, SteamRatingCount: 200,
	}))
	rq.Equal(entity.QualityGood, quality.TierOf(entity.Deal{
		MetacriticScore: 75,
	}))

	// A high percent on a thin sample is not enough.
	rq.Equal(entity.QualityUnknown, quality.TierOf(entity.Deal{
		SteamRatingPercent: 95, SteamRatingCount: 50,
	}))

	// Missing signals stay zero and never upgrade a tier.
	rq.Equal(entity.QualityUnknown, quality.TierOf(entity.Deal{}))
}
