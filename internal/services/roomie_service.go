package services

import (
	"context"
	"sync"
	"time"

	"roomNest/internal/api"
	"roomNest/internal/filter"
	"roomNest/internal/models"
)

// DefaultRoomieCacheAge bounds how long a fetched roommate list keeps serving
// searches before the next request refreshes it.
const DefaultRoomieCacheAge = time.Minute

// RoomieService serves the roommate-finder surface. The backend exposes only
// the full list, so matching, ordering and pagination all run in memory here.
//
// Refreshes carry a generation number: a fetch that finishes after a newer
// fetch has started must not overwrite the newer result. The slow response is
// still returned to its own caller, it just does not become the shared cache.
type RoomieService struct {
	API    *api.Client
	MaxAge time.Duration

	mu        sync.Mutex
	gen       uint64
	cached    []models.Roomie
	fetchedAt time.Time
}

// Search filters, orders and paginates the roommate list.
func (s *RoomieService) Search(ctx context.Context, f filter.RoomieFilter, ordering string, page, pageSize int) (filter.PageWindow[models.Roomie], error) {
	items, err := s.all(ctx)
	if err != nil {
		return filter.PageWindow[models.Roomie]{}, err
	}

	matched := filter.MatchRoomies(items, f)
	sorted := filter.SortRoomies(matched, ordering)
	return filter.Paginate(sorted, page, pageSize), nil
}

func (s *RoomieService) GetRoomieByID(ctx context.Context, id int) (models.Roomie, error) {
	return s.API.RoomieByID(ctx, id)
}

func (s *RoomieService) maxAge() time.Duration {
	if s.MaxAge > 0 {
		return s.MaxAge
	}
	return DefaultRoomieCacheAge
}

func (s *RoomieService) all(ctx context.Context) ([]models.Roomie, error) {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.fetchedAt) < s.maxAge() {
		items := s.cached
		s.mu.Unlock()
		return items, nil
	}
	s.gen++
	myGen := s.gen
	s.mu.Unlock()

	items, err := s.API.Roomies(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.gen == myGen {
		s.cached = items
		s.fetchedAt = time.Now()
	}
	s.mu.Unlock()
	return items, nil
}

// Invalidate drops the cached list; the next search refetches.
func (s *RoomieService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.fetchedAt = time.Time{}
	s.mu.Unlock()
}
