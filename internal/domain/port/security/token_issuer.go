package security

import (
	"time"
)

// TokenClaims is what a bearer token asserts about its holder
type TokenClaims struct {
	UserID    uint64
	Username  string
	ExpiresAt time.Time
}

// TokenIssuer issues and validates bearer tokens
type TokenIssuer interface {
	// Issue returns a signed token for the user and its expiry
	Issue(userID uint64, username string) (string, time.Time, error)
	// Validate parses a token and returns its claims
	//
	// Possible errors:
	// - ErrUnauthenticated: If the token is malformed, expired or badly signed
	Validate(token string) (*TokenClaims, error)
}
