package services

import (
	"context"
	"time"

	"roomNest/internal/api"
	"roomNest/internal/credentials"
	"roomNest/internal/models"
)

// refreshLeeway is how close to expiry an access token may get before the
// gateway trades the refresh token for a new pair.
const refreshLeeway = 2 * time.Minute

// AuthService proxies authentication to the backend and owns the server-side
// session record behind the browser cookie.
type AuthService struct {
	API      *api.Client
	Sessions *credentials.SessionStore
}

// Login exchanges credentials with the backend and opens a session. The
// returned id goes into the session cookie; tokens stay server-side.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, models.User, error) {
	resp, err := s.API.Login(ctx, req)
	if err != nil {
		return "", models.User{}, err
	}

	id, err := s.Sessions.Create(ctx, credentials.Session{
		UserID:       resp.User.ID,
		Role:         resp.User.Role,
		AccessToken:  resp.Tokens.AccessToken,
		RefreshToken: resp.Tokens.RefreshToken,
	})
	if err != nil {
		return "", models.User{}, err
	}
	return id, resp.User, nil
}

// Logout destroys the session. Unknown ids are already logged out.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// Resolve loads the session and refreshes its token pair when the access
// token is about to lapse. It returns the session as it should be used for
// this request.
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (credentials.Session, error) {
	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return credentials.Session{}, err
	}

	if !credentials.ExpiresWithin(sess.AccessToken, refreshLeeway) {
		return sess, nil
	}

	pair, err := s.API.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		// The refresh token itself may have lapsed; the session is dead.
		if api.IsStatus(err, 401) || api.IsStatus(err, 403) {
			_ = s.Sessions.Delete(ctx, sessionID)
			return credentials.Session{}, models.ErrSessionNotFound
		}
		return credentials.Session{}, err
	}

	sess.AccessToken = pair.AccessToken
	if pair.RefreshToken != "" {
		sess.RefreshToken = pair.RefreshToken
	}
	if err := s.Sessions.Update(ctx, sessionID, sess); err != nil {
		return credentials.Session{}, err
	}
	return sess, nil
}

// Profile reads the logged-in user's profile from the backend using the
// token already placed on the request context by the session middleware.
func (s *AuthService) Profile(ctx context.Context) (models.User, error) {
	return s.API.Profile(ctx)
}
