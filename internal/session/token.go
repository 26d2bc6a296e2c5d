package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt extracts the expiry claim from a three-part bearer credential.
// The signature is not verified; the platform signed the token and this
// service only needs the claims segment.
func ExpiresAt(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// IsValid reports whether the credential's expiry is strictly in the future.
// Malformed tokens are invalid, never an error.
func IsValid(token string) bool {
	exp, ok := ExpiresAt(token)
	if !ok {
		return false
	}
	return exp.UnixMilli() > time.Now().UnixMilli()
}
