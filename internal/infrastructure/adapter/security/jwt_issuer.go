package security

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	port "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/security"
	"github.com/golang-jwt/jwt/v5"
)

var _ port.TokenIssuer = (*JWTIssuer)(nil)

// ErrMissingToken is returned by TokenFromHeader when no bearer token is present
var ErrMissingToken = errors.New("missing token")

// Claims is the JWT body. The subject carries the user id.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 bearer tokens
type JWTIssuer struct {
	secret       []byte
	expiry       time.Duration
	issuer       string
	timeProvider coreport.TimeProvider
}

// NewJWTIssuer creates an issuer signing with secret
func NewJWTIssuer(secret string, expiry time.Duration, issuer string, timeProvider coreport.TimeProvider) *JWTIssuer {
	return &JWTIssuer{
		secret:       []byte(secret),
		expiry:       expiry,
		issuer:       issuer,
		timeProvider: timeProvider,
	}
}

// Issue returns a signed token for the user and its expiry
func (j *JWTIssuer) Issue(userID uint64, username string) (string, time.Time, error) {
	if userID == 0 {
		return "", time.Time{}, errs.WrapValidationError("user_id", errs.ErrInvalidID)
	}

	now := j.timeProvider.Now()
	expiresAt := now.Add(j.expiry)
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate parses a token and returns its claims. Every failure is ErrUnauthenticated.
func (j *JWTIssuer) Validate(token string) (*port.TokenClaims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errs.ErrUnauthenticated
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	},
		jwt.WithIssuer(j.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.timeProvider.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnauthenticated, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errs.ErrUnauthenticated
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return nil, fmt.Errorf("%w: bad subject", errs.ErrUnauthenticated)
	}

	return &port.TokenClaims{
		UserID:    userID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// TokenFromHeader extracts the token from an "Authorization: Bearer <token>" header
func TokenFromHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrMissingToken
	}
	return parts[1], nil
}
