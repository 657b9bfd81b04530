package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSource supplies the bearer token attached to every API request.
// The boolean is false when no usable token is available.
type TokenSource interface {
	Token() (string, bool)
}

// Static wraps a fixed token, typically read from the environment. Expired
// JWTs are reported as absent so requests fail fast with a clean 401 from
// the backend instead of a confusing expiry error mid-save.
type Static struct {
	raw string
}

func NewStatic(token string) *Static {
	return &Static{raw: token}
}

func (s *Static) Token() (string, bool) {
	if s.raw == "" {
		return "", false
	}
	if Expired(s.raw, time.Now()) {
		return "", false
	}
	return s.raw, true
}

// Expired inspects a token's exp claim without verifying the signature:
// verification is the backend's job, the client only wants to know whether
// sending the token is pointless. Opaque (non-JWT) tokens and tokens
// without an exp claim are never considered expired.
func Expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
