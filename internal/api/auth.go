package api

import (
	"context"

	"roomNest/internal/models"
)

// Login exchanges credentials for a backend token pair.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var resp models.LoginResponse
	err := c.Post(ctx, "/auth/login", req, false, &resp)
	if IsStatus(err, 401) || IsStatus(err, 403) {
		return models.LoginResponse{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResponse{}, err
	}
	return resp, nil
}

// Refresh trades a refresh token for a fresh pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	body := map[string]string{"refresh_token": refreshToken}
	var pair models.TokenPair
	if err := c.Post(ctx, "/auth/refresh", body, false, &pair); err != nil {
		return models.TokenPair{}, err
	}
	return pair, nil
}

// Profile reads the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (models.User, error) {
	var user models.User
	err := c.Get(ctx, "/users/me", nil, true, &user)
	if IsStatus(err, 404) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}
