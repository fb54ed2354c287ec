package credentials

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: exp.Unix(),
		Subject:   "7",
	})
	s, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestAccessTokenExpiry(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	got, err := AccessTokenExpiry(signedToken(t, exp))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(exp) {
		t.Fatalf("expected %v got %v", exp, got)
	}
}

func TestAccessTokenExpiryGarbage(t *testing.T) {
	if _, err := AccessTokenExpiry("not-a-jwt"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
}

func TestExpiresWithin(t *testing.T) {
	fresh := signedToken(t, time.Now().Add(time.Hour))
	stale := signedToken(t, time.Now().Add(30*time.Second))

	if ExpiresWithin(fresh, 5*time.Minute) {
		t.Fatal("fresh token reported as expiring")
	}
	if !ExpiresWithin(stale, 5*time.Minute) {
		t.Fatal("stale token not reported as expiring")
	}
	if !ExpiresWithin("garbage", time.Minute) {
		t.Fatal("unreadable token must force a refresh")
	}
}

func TestFromContextProvider(t *testing.T) {
	var p FromContext

	token, err := p.Token(WithToken(context.Background(), "abc"))
	if err != nil || token != "abc" {
		t.Fatalf("expected abc, got %q err %v", token, err)
	}

	token, err = p.Token(context.Background())
	if err != nil {
		t.Fatalf("missing token must not be an error: %v", err)
	}
	if token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}
}
