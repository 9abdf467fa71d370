// Package search implements the provider search pipeline: great-circle
// distance, radius filtering with proximity ranking, and composite attribute
// filtering. Everything here is a pure in-memory transform; callers fetch the
// candidate list and hand it over.
package search

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusMiles is the mean Earth radius in statute miles.
const earthRadiusMiles = 3959.0

// DistanceMiles returns the great-circle distance between two points in
// statute miles, using the haversine formula. Points follow the orb
// convention: {longitude, latitude} in degrees. Inputs are trusted; NaN
// propagates.
func DistanceMiles(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	deltaLat := (b.Lat() - a.Lat()) * math.Pi / 180
	deltaLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}
