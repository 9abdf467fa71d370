package search

import (
	"testing"

	"automo/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func asMatches(providers []*entity.Provider) []Match {
	matches := make([]Match, 0, len(providers))
	for _, p := range providers {
		matches = append(matches, Match{Provider: p})
	}

	return matches
}

func names(matches []Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Provider.BusinessName)
	}

	return out
}

// fixture returns five providers with known attribute combinations.
func fixture() []*entity.Provider {
	return []*entity.Provider{
		{BusinessName: "Apex Auto Care", City: "Austin", State: "TX", Specialties: []string{"brakes", "oil-change"}, MobileService: true, Rating: 4.8},
		{BusinessName: "Budget Brakes", City: "Dallas", State: "TX", Specialties: []string{"brakes"}, MobileService: false, Rating: 3.2},
		{BusinessName: "City Detailers", City: "Austin", State: "TX", Specialties: []string{"detailing"}, MobileService: true, Rating: 4.1},
		{BusinessName: "Dockside Motors", City: "Houston", State: "TX", Specialties: []string{"engine"}, MobileService: false, Rating: 4.9},
		{BusinessName: "Elm Street Garage", City: "Waco", State: "TX", Specialties: nil, MobileService: true, Rating: 0},
	}
}

func TestApplyCriteria_EmptyCriteriaKeepsEverything(t *testing.T) {
	matches := ApplyCriteria(asMatches(fixture()), Criteria{})
	assert.Len(t, matches, 5)
}

func TestApplyCriteria_TextMatchesAcrossFields(t *testing.T) {
	providers := fixture()

	// Name match, case-insensitive.
	matches := ApplyCriteria(asMatches(providers), Criteria{Query: "apex"})
	assert.Equal(t, []string{"Apex Auto Care"}, names(matches))

	// City match.
	matches = ApplyCriteria(asMatches(providers), Criteria{Query: "austin"})
	assert.Equal(t, []string{"Apex Auto Care", "City Detailers"}, names(matches))

	// Specialty tag match via substring.
	matches = ApplyCriteria(asMatches(providers), Criteria{Query: "detailing"})
	assert.Equal(t, []string{"City Detailers"}, names(matches))
}

func TestApplyCriteria_SpecialtyIsSetMembershipNotSubstring(t *testing.T) {
	providers := []*entity.Provider{
		{BusinessName: "exact", Specialties: []string{"brakes"}},
		{BusinessName: "superstring", Specialties: []string{"brakes-and-rotors"}},
	}

	matches := ApplyCriteria(asMatches(providers), Criteria{Specialty: "brakes"})
	assert.Equal(t, []string{"exact"}, names(matches))
}

func TestApplyCriteria_AnySpecialtySentinelPasses(t *testing.T) {
	matches := ApplyCriteria(asMatches(fixture()), Criteria{Specialty: AnySpecialty})
	assert.Len(t, matches, 5)
}

func TestApplyCriteria_MobilePreference(t *testing.T) {
	providers := fixture()

	matches := ApplyCriteria(asMatches(providers), Criteria{MobileOnly: boolPtr(true)})
	assert.Equal(t, []string{"Apex Auto Care", "City Detailers", "Elm Street Garage"}, names(matches))

	matches = ApplyCriteria(asMatches(providers), Criteria{MobileOnly: boolPtr(false)})
	assert.Equal(t, []string{"Budget Brakes", "Dockside Motors"}, names(matches))
}

func TestApplyCriteria_MinRatingInclusive(t *testing.T) {
	providers := []*entity.Provider{
		{BusinessName: "at", Rating: 4.0},
		{BusinessName: "above", Rating: 4.5},
		{BusinessName: "below", Rating: 3.9},
	}

	matches := ApplyCriteria(asMatches(providers), Criteria{MinRating: 4.0})
	assert.Equal(t, []string{"at", "above"}, names(matches))
}

func TestApplyCriteria_UnratedFailsMinRating(t *testing.T) {
	// A provider with no reviews (rating 0) must never pass a rating floor.
	matches := ApplyCriteria(asMatches(fixture()), Criteria{MinRating: 1})
	for _, m := range matches {
		assert.NotEqual(t, "Elm Street Garage", m.Provider.BusinessName)
	}
}

func TestApplyCriteria_PredicatesIntersect(t *testing.T) {
	providers := fixture()

	ratingOnly := ApplyCriteria(asMatches(providers), Criteria{MinRating: 4})
	mobileOnly := ApplyCriteria(asMatches(providers), Criteria{MobileOnly: boolPtr(true)})
	both := ApplyCriteria(asMatches(providers), Criteria{MinRating: 4, MobileOnly: boolPtr(true)})

	// AND semantics: the combined result is exactly the intersection.
	intersection := make(map[string]bool)
	for _, m := range ratingOnly {
		intersection[m.Provider.BusinessName] = true
	}
	want := []string{}
	for _, m := range mobileOnly {
		if intersection[m.Provider.BusinessName] {
			want = append(want, m.Provider.BusinessName)
		}
	}

	require.Equal(t, want, names(both))
	assert.Equal(t, []string{"Apex Auto Care", "City Detailers"}, names(both))
}
