package filter

import (
	"testing"
	"time"

	"roomNest/internal/models"
)

func TestSortRoomiesDefaultNewestFirst(t *testing.T) {
	list := []models.Roomie{
		roomie(1, "a", "Nam", 20, 1, 2),
		roomie(3, "c", "Nam", 22, 1, 2),
		roomie(2, "b", "Nam", 21, 1, 2),
	}

	got := SortRoomies(list, OrderNewest)
	if !equalIDs(ids(got), []int{3, 2, 1}) {
		t.Fatalf("expected [3 2 1], got %v", ids(got))
	}
}

func TestSortRoomiesUnknownOrderingFallsBack(t *testing.T) {
	list := []models.Roomie{
		roomie(1, "a", "Nam", 20, 1, 2),
		roomie(2, "b", "Nam", 21, 1, 2),
	}
	got := SortRoomies(list, "shoe_size")
	if !equalIDs(ids(got), []int{2, 1}) {
		t.Fatalf("expected fallback to -created_at, got %v", ids(got))
	}
}

func TestSortRoomiesByAgeAndBudget(t *testing.T) {
	list := []models.Roomie{
		roomie(1, "a", "Nam", 25, 3000000, 4000000),
		roomie(2, "b", "Nam", 20, 1000000, 2000000),
		roomie(3, "c", "Nam", 23, 2000000, 3000000),
	}

	if got := ids(SortRoomies(list, OrderAgeAsc)); !equalIDs(got, []int{2, 3, 1}) {
		t.Fatalf("age asc: got %v", got)
	}
	if got := ids(SortRoomies(list, OrderAgeDesc)); !equalIDs(got, []int{1, 3, 2}) {
		t.Fatalf("age desc: got %v", got)
	}
	if got := ids(SortRoomies(list, OrderBudgetAsc)); !equalIDs(got, []int{2, 3, 1}) {
		t.Fatalf("budget asc: got %v", got)
	}
	if got := ids(SortRoomies(list, OrderBudgetDesc)); !equalIDs(got, []int{1, 3, 2}) {
		t.Fatalf("budget desc: got %v", got)
	}
}

func TestSortRoomiesStable(t *testing.T) {
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	list := []models.Roomie{
		{ID: 1, Age: 22, CreatedAt: created},
		{ID: 2, Age: 22, CreatedAt: created},
		{ID: 3, Age: 22, CreatedAt: created},
		{ID: 4, Age: 20, CreatedAt: created},
	}

	got := SortRoomies(list, OrderAgeAsc)
	if !equalIDs(ids(got), []int{4, 1, 2, 3}) {
		t.Fatalf("ties must keep original order, got %v", ids(got))
	}

	got = SortRoomies(list, OrderNewest)
	if !equalIDs(ids(got), []int{1, 2, 3, 4}) {
		t.Fatalf("equal timestamps must keep original order, got %v", ids(got))
	}
}

func TestSortRoomiesDoesNotMutateInput(t *testing.T) {
	list := []models.Roomie{
		roomie(1, "a", "Nam", 30, 1, 2),
		roomie(2, "b", "Nam", 20, 1, 2),
	}
	_ = SortRoomies(list, OrderAgeAsc)
	if list[0].ID != 1 || list[1].ID != 2 {
		t.Fatal("input slice was reordered")
	}
}
