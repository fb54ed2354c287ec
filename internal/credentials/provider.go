// Package credentials owns the lifecycle of the backend auth token: created on
// login, read on each outbound API call, destroyed on logout. Callers depend on
// the Provider interface so token storage can be swapped (or faked) without
// touching the HTTP client.
package credentials

import (
	"context"
)

// Provider supplies the bearer token attached to outbound backend calls. An
// empty token with a nil error means "no credentials": the Authorization
// header is simply omitted, it is never an error by itself.
type Provider interface {
	Token(ctx context.Context) (string, error)
}

// Static is a fixed token, used in tests and for service-to-service calls.
type Static string

func (s Static) Token(context.Context) (string, error) {
	return string(s), nil
}

type ctxKey int

const tokenKey ctxKey = iota

// WithToken returns a context carrying the access token of the current
// session. The session middleware sets it after the Redis lookup.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// FromContext is a Provider that reads whatever token the session middleware
// put on the request context. Requests without a session yield an empty token.
type FromContext struct{}

func (FromContext) Token(ctx context.Context) (string, error) {
	if token, ok := ctx.Value(tokenKey).(string); ok {
		return token, nil
	}
	return "", nil
}
