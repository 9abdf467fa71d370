package search

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceMiles_IdenticalPointsAreZero(t *testing.T) {
	points := []orb.Point{
		{0, 0},
		{121.5, 25.03},
		{-122.4, 37.77},
		{-180, -90},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, DistanceMiles(p, p))
	}
}

func TestDistanceMiles_Symmetry(t *testing.T) {
	a := orb.Point{-87.62, 41.88}  // Chicago
	b := orb.Point{-118.24, 34.05} // Los Angeles

	assert.InDelta(t, DistanceMiles(a, b), DistanceMiles(b, a), 1e-9)
}

func TestDistanceMiles_OneDegreeLongitudeAtEquator(t *testing.T) {
	// One degree of longitude at the equator is about 69 statute miles;
	// this pins both the formula and the Earth-radius constant.
	a := orb.Point{0, 0}
	b := orb.Point{1, 0}

	assert.InDelta(t, 69.0, DistanceMiles(a, b), 1.0)
}

func TestDistanceMiles_NonNegative(t *testing.T) {
	a := orb.Point{179.9, 0.1}
	b := orb.Point{-179.9, -0.1}

	assert.GreaterOrEqual(t, DistanceMiles(a, b), 0.0)
}
