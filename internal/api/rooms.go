package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"roomNest/internal/filter"
	"roomNest/internal/models"
)

// SearchRooms forwards the filter to the backend, which owns room filtering
// and pagination. The filter's own query keys double as the backend's search
// parameters.
func (c *Client) SearchRooms(ctx context.Context, f filter.RoomFilter, page, limit int) (models.RoomListResponse, error) {
	params := f.Query()
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp models.RoomListResponse
	if err := c.Get(ctx, "/rooms", params, false, &resp); err != nil {
		return models.RoomListResponse{}, err
	}
	return resp, nil
}

// RoomBySlug fetches one room's detail page payload.
func (c *Client) RoomBySlug(ctx context.Context, slug string) (models.Room, error) {
	var room models.Room
	err := c.Get(ctx, "/rooms/"+url.PathEscape(slug), nil, false, &room)
	if IsStatus(err, 404) {
		return models.Room{}, models.ErrRoomNotFound
	}
	if err != nil {
		return models.Room{}, err
	}
	return room, nil
}

// RoomByID fetches a room by numeric id (used by the moderation surface).
func (c *Client) RoomByID(ctx context.Context, id int) (models.Room, error) {
	var room models.Room
	err := c.Get(ctx, fmt.Sprintf("/rooms/id/%d", id), nil, true, &room)
	if IsStatus(err, 404) {
		return models.Room{}, models.ErrRoomNotFound
	}
	if err != nil {
		return models.Room{}, err
	}
	return room, nil
}
