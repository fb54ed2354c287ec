package filter

import (
	"roomNest/internal/models"

	"golang.org/x/exp/slices"
)

// Orderings accepted by SortRoomies. Anything else falls back to
// OrderNewest.
const (
	OrderNewest     = "-created_at"
	OrderAgeAsc     = "age"
	OrderAgeDesc    = "-age"
	OrderBudgetAsc  = "budget"
	OrderBudgetDesc = "-budget"
)

// SortRoomies returns a sorted copy of items. The sort is stable: profiles
// with equal keys keep their original relative order.
func SortRoomies(items []models.Roomie, ordering string) []models.Roomie {
	out := slices.Clone(items)

	var cmp func(a, b models.Roomie) int
	switch ordering {
	case OrderAgeAsc:
		cmp = func(a, b models.Roomie) int { return a.Age - b.Age }
	case OrderAgeDesc:
		cmp = func(a, b models.Roomie) int { return b.Age - a.Age }
	case OrderBudgetAsc:
		cmp = func(a, b models.Roomie) int { return compareFloat(a.BudgetMin, b.BudgetMin) }
	case OrderBudgetDesc:
		cmp = func(a, b models.Roomie) int { return compareFloat(b.BudgetMin, a.BudgetMin) }
	default:
		cmp = func(a, b models.Roomie) int {
			// Newest first.
			if a.CreatedAt.After(b.CreatedAt) {
				return -1
			}
			if a.CreatedAt.Before(b.CreatedAt) {
				return 1
			}
			return 0
		}
	}

	slices.SortStableFunc(out, cmp)
	return out
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
