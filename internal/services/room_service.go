package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"roomNest/internal/api"
	"roomNest/internal/filter"
	"roomNest/internal/models"
)

const (
	amenityCacheKey = "catalog:amenities"
	amenityCacheTTL = 10 * time.Minute
)

// RoomService serves the room-listing surface. Filtering and pagination are
// backend-driven: the filter is serialized straight onto the search request
// and the response is windowed with the total the backend reported.
type RoomService struct {
	API   *api.Client
	Cache *redis.Client
}

// SearchRooms runs one filtered, paginated search.
func (s *RoomService) SearchRooms(ctx context.Context, f filter.RoomFilter, page, pageSize int) (filter.PageWindow[models.Room], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = filter.DefaultPageSize
	}

	resp, err := s.API.SearchRooms(ctx, f, page, pageSize)
	if err != nil {
		return filter.PageWindow[models.Room]{}, err
	}
	return filter.Window(resp.Rooms, page, pageSize, resp.TotalCount), nil
}

func (s *RoomService) GetRoomBySlug(ctx context.Context, slug string) (models.Room, error) {
	return s.API.RoomBySlug(ctx, slug)
}

// Amenities returns the amenity catalog, cached in Redis under a short TTL.
// Cache trouble degrades to a direct backend fetch, never to an error.
func (s *RoomService) Amenities(ctx context.Context) ([]models.Amenity, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, amenityCacheKey).Bytes(); err == nil {
			var cached []models.Amenity
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	amenities, err := s.API.Amenities(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(amenities); err == nil {
			s.Cache.Set(ctx, amenityCacheKey, data, amenityCacheTTL)
		}
	}
	return amenities, nil
}
