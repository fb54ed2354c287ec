package api

import (
	"context"
	"fmt"

	"roomNest/internal/models"
)

// Roomies fetches the full roommate-finder list. The backend does not filter
// this surface; the caller runs the in-memory engine over the result.
func (c *Client) Roomies(ctx context.Context) ([]models.Roomie, error) {
	var resp models.RoomieListResponse
	if err := c.Get(ctx, "/roomies", nil, false, &resp); err != nil {
		return nil, err
	}
	return resp.Roomies, nil
}

// RoomieByID fetches one roommate profile.
func (c *Client) RoomieByID(ctx context.Context, id int) (models.Roomie, error) {
	var roomie models.Roomie
	err := c.Get(ctx, fmt.Sprintf("/roomies/%d", id), nil, false, &roomie)
	if IsStatus(err, 404) {
		return models.Roomie{}, models.ErrRoomieNotFound
	}
	if err != nil {
		return models.Roomie{}, err
	}
	return roomie, nil
}
