package search

import (
	"slices"
	"strings"
)

// AnySpecialty is the sentinel meaning "no specialty constraint".
const AnySpecialty = "any"

// Criteria is the ephemeral, in-memory search input built from user
// interaction. Zero values mean "no constraint" for every field except
// MobileOnly, where nil is "no preference".
type Criteria struct {
	Query      string   // case-insensitive substring over text fields
	Specialty  string   // exact tag membership, or AnySpecialty / ""
	MobileOnly *bool    // nil = no preference, else exact match on the mobile flag
	MinRating  float64  // 0 = no constraint, else rating >= MinRating (inclusive)
}

// ApplyCriteria returns the matches for which every active predicate holds.
// Predicates combine with logical AND; an absent field on a provider fails
// the predicate that inspects it, except the text predicate, which just
// excludes the absent field from the match attempt.
func ApplyCriteria(matches []Match, criteria Criteria) []Match {
	filtered := make([]Match, 0, len(matches))
	for _, m := range matches {
		if matchesCriteria(m, criteria) {
			filtered = append(filtered, m)
		}
	}

	return filtered
}

func matchesCriteria(m Match, criteria Criteria) bool {
	p := m.Provider

	if q := strings.TrimSpace(criteria.Query); q != "" {
		needle := strings.ToLower(q)
		haystacks := []string{
			p.BusinessName,
			p.City,
			p.State,
			strings.Join(p.Specialties, " "),
			p.Description,
		}
		found := false
		for _, h := range haystacks {
			if h == "" {
				continue
			}
			if strings.Contains(strings.ToLower(h), needle) {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	if criteria.Specialty != "" && criteria.Specialty != AnySpecialty {
		if !slices.Contains(p.Specialties, criteria.Specialty) {
			return false
		}
	}

	if criteria.MobileOnly != nil && p.MobileService != *criteria.MobileOnly {
		return false
	}

	if criteria.MinRating > 0 && p.Rating < criteria.MinRating {
		return false
	}

	return true
}
