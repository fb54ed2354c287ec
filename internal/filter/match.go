package filter

import (
	"strings"

	"roomNest/internal/models"
)

// MatchRoomies returns the roomies that satisfy every active field of the
// filter (logical AND). The input is never mutated; profiles missing an
// attribute an active field needs are treated as non-matching, never as an
// error.
func MatchRoomies(items []models.Roomie, f RoomieFilter) []models.Roomie {
	if f.IsZero() {
		return append([]models.Roomie(nil), items...)
	}
	var out []models.Roomie
	for _, r := range items {
		if roomieMatches(r, f) {
			out = append(out, r)
		}
	}
	return out
}

func roomieMatches(r models.Roomie, f RoomieFilter) bool {
	if f.Gender != "" && r.Gender != f.Gender {
		return false
	}
	if f.Occupation != "" && r.Occupation != f.Occupation {
		return false
	}
	if f.School != "" && r.School != f.School {
		return false
	}
	if f.Lifestyle != "" && r.Lifestyle != f.Lifestyle {
		return false
	}
	if f.PreferredArea != "" && r.PreferredArea != f.PreferredArea {
		return false
	}
	if f.MinAge != nil || f.MaxAge != nil {
		if r.Age <= 0 {
			return false
		}
		if f.MinAge != nil && r.Age < *f.MinAge {
			return false
		}
		if f.MaxAge != nil && r.Age > *f.MaxAge {
			return false
		}
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		// The price filter and a roomie's budget are both ranges; a roomie
		// matches when the two intervals overlap, not when the budget sits
		// entirely inside the filter.
		if !budgetOverlaps(r, f.MinPrice, f.MaxPrice) {
			return false
		}
	}
	if f.Search != "" && !roomieMatchesSearch(r, f.Search) {
		return false
	}
	return true
}

func budgetOverlaps(r models.Roomie, min, max *float64) bool {
	if r.BudgetMin <= 0 && r.BudgetMax <= 0 {
		return false
	}
	lo, hi := r.BudgetMin, r.BudgetMax
	if hi < lo {
		lo, hi = hi, lo
	}
	if min != nil && hi < *min {
		return false
	}
	if max != nil && lo > *max {
		return false
	}
	return true
}

// roomieMatchesSearch is case-insensitive substring containment over the
// searchable attributes: name, description and tags.
func roomieMatchesSearch(r models.Roomie, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), term) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
