package search

import (
	"testing"

	"automo/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func provAt(name string, lat, lon float64) *entity.Provider {
	return &entity.Provider{BusinessName: name, Latitude: lat, Longitude: lon}
}

func TestRankByProximity_InclusiveBoundary(t *testing.T) {
	origin := orb.Point{0, 0}
	inside := provAt("inside", 0, 0.5)
	outside := provAt("outside", 0, 2)

	// Radius chosen as the exact distance of "inside" so the boundary case
	// exercises <=, not <.
	exact := DistanceMiles(origin, orb.Point{0.5, 0})

	matches := RankByProximity([]*entity.Provider{inside, outside}, &origin, exact, DefaultUnlimitedRadiusMiles)
	require.Len(t, matches, 1)
	assert.Equal(t, "inside", matches[0].Provider.BusinessName)

	// Nudge the radius below the exact distance and the entity drops out.
	matches = RankByProximity([]*entity.Provider{inside}, &origin, exact-0.001, DefaultUnlimitedRadiusMiles)
	assert.Empty(t, matches)
}

func TestRankByProximity_UnlimitedSentinelKeepsEverything(t *testing.T) {
	origin := orb.Point{0, 0}
	far := provAt("far", 60, 120)

	matches := RankByProximity([]*entity.Provider{far}, &origin, DefaultUnlimitedRadiusMiles, DefaultUnlimitedRadiusMiles)
	require.Len(t, matches, 1)
	require.NotNil(t, matches[0].Distance)
	assert.Greater(t, *matches[0].Distance, DefaultUnlimitedRadiusMiles)
}

func TestRankByProximity_SortsAscendingByDistance(t *testing.T) {
	origin := orb.Point{0, 0}
	providers := []*entity.Provider{
		provAt("mid", 0, 1),
		provAt("near", 0, 0.1),
		provAt("farther", 0, 3),
	}

	matches := RankByProximity(providers, &origin, 500, DefaultUnlimitedRadiusMiles)
	require.Len(t, matches, 3)
	assert.Equal(t, "near", matches[0].Provider.BusinessName)
	assert.Equal(t, "mid", matches[1].Provider.BusinessName)
	assert.Equal(t, "farther", matches[2].Provider.BusinessName)
}

func TestRankByProximity_StableForEqualDistances(t *testing.T) {
	origin := orb.Point{0, 0}
	// East and west of the origin by the same offset: identical distance.
	first := provAt("first", 0, 1)
	second := provAt("second", 0, -1)

	matches := RankByProximity([]*entity.Provider{first, second}, &origin, 100, DefaultUnlimitedRadiusMiles)
	require.Len(t, matches, 2)
	assert.Equal(t, "first", matches[0].Provider.BusinessName)
	assert.Equal(t, "second", matches[1].Provider.BusinessName)
}

func TestRankByProximity_NoOriginPassesThrough(t *testing.T) {
	providers := []*entity.Provider{
		provAt("b", 10, 10),
		provAt("a", 0, 0),
		provAt("c", 5, 5),
	}

	matches := RankByProximity(providers, nil, 25, DefaultUnlimitedRadiusMiles)
	require.Len(t, matches, len(providers))
	for i, m := range matches {
		assert.Same(t, providers[i], m.Provider)
		assert.Nil(t, m.Distance)
	}
}
