package search

import (
	"testing"

	"automo/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSearchPipeline_EndToEnd walks the full rank-then-filter pipeline with
// three providers: A at the origin, B one degree of longitude east (~69 mi),
// C far away. Radius 100 keeps A and B in that order; adding a rating floor
// of 4 leaves only A.
func TestSearchPipeline_EndToEnd(t *testing.T) {
	a := &entity.Provider{BusinessName: "A", Latitude: 0, Longitude: 0, Rating: 5, MobileService: true}
	b := &entity.Provider{BusinessName: "B", Latitude: 0, Longitude: 1, Rating: 3, MobileService: false}
	c := &entity.Provider{BusinessName: "C", Latitude: 10, Longitude: 10, Rating: 4, MobileService: true}

	origin := orb.Point{0, 0}
	ranked := RankByProximity([]*entity.Provider{a, b, c}, &origin, 100, DefaultUnlimitedRadiusMiles)

	require.Len(t, ranked, 2)
	assert.Equal(t, "A", ranked[0].Provider.BusinessName)
	assert.InDelta(t, 0, *ranked[0].Distance, 1e-9)
	assert.Equal(t, "B", ranked[1].Provider.BusinessName)
	assert.InDelta(t, 69, *ranked[1].Distance, 1)

	filtered := ApplyCriteria(ranked, Criteria{MinRating: 4})
	require.Len(t, filtered, 1)
	assert.Equal(t, "A", filtered[0].Provider.BusinessName)
}
