package api

import (
	"context"

	"roomNest/internal/models"
)

// Amenities fetches the amenity catalog.
func (c *Client) Amenities(ctx context.Context) ([]models.Amenity, error) {
	var resp struct {
		Amenities []models.Amenity `json:"amenities"`
	}
	if err := c.Get(ctx, "/amenities", nil, false, &resp); err != nil {
		return nil, err
	}
	return resp.Amenities, nil
}
