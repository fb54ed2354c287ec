package credentials

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// AccessTokenExpiry reads the exp claim of a backend-issued JWT without
// verifying its signature. The gateway never validates backend tokens, it only
// needs to know when to ask for a refresh.
func AccessTokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("parse access token: %w", err)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, fmt.Errorf("access token has no exp claim")
	}
	return time.Unix(int64(exp), 0), nil
}

// ExpiresWithin reports whether the token expires inside the given leeway, or
// cannot be read at all. Either way the caller should refresh.
func ExpiresWithin(token string, leeway time.Duration) bool {
	exp, err := AccessTokenExpiry(token)
	if err != nil {
		return true
	}
	return time.Until(exp) < leeway
}
