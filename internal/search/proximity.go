package search

import (
	"sort"

	"automo/internal/domain/entity"

	"github.com/paulmach/orb"
)

// DefaultUnlimitedRadiusMiles is the threshold at or above which a radius
// means "no distance constraint". The UI exposes it as the largest radius
// option; it is configurable, not a hard-coded mode.
const DefaultUnlimitedRadiusMiles = 1000.0

// Match is a provider annotated with its distance from the search origin.
// Distance is nil when the search had no origin.
type Match struct {
	Provider *entity.Provider
	Distance *float64 // miles from the origin
}

// RankByProximity annotates each provider with its distance from origin,
// keeps those within radiusMiles (inclusive), and sorts ascending by
// distance. Ties keep their input order. When radiusMiles is at or above
// unlimitedAt the distance constraint is dropped and every provider is kept,
// still annotated and sorted. A nil origin skips the whole step: the input
// order is preserved and no distance is attached.
func RankByProximity(providers []*entity.Provider, origin *orb.Point, radiusMiles, unlimitedAt float64) []Match {
	matches := make([]Match, 0, len(providers))

	if origin == nil {
		for _, p := range providers {
			matches = append(matches, Match{Provider: p})
		}

		return matches
	}

	unlimited := radiusMiles >= unlimitedAt
	for _, p := range providers {
		d := DistanceMiles(*origin, orb.Point{p.Longitude, p.Latitude})
		if !unlimited && d > radiusMiles {
			continue
		}
		dist := d
		matches = append(matches, Match{Provider: p, Distance: &dist})
	}

	// Stable so equal distances keep fetch order.
	sort.SliceStable(matches, func(i, j int) bool {
		return *matches[i].Distance < *matches[j].Distance
	})

	return matches
}
