package service

import (
	"errors"
	"time"
)

// ClaimSubject is the claim carrying the user's email.
const ClaimSubject = "sub"

// ErrInvalidToken is returned when a token cannot be verified.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload embedded in an access token.
type Claims map[string]any

// Subject returns the sub claim, or an empty string when absent or not a string.
func (c Claims) Subject() string {
	sub, _ := c[ClaimSubject].(string)

	return sub
}

// TokenService defines the interface for issuing and verifying signed access tokens.
type TokenService interface {
	// Issue signs the claims plus iat and exp. A non-positive ttl uses the default lifetime.
	Issue(claims Claims, ttl time.Duration) (string, error)

	// Verify checks signature, algorithm and expiry and returns the embedded claims.
	Verify(token string) (Claims, error)
}
