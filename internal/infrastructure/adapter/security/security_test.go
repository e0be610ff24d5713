package security

import (
	"errors"
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/gift-tracker/mocks/port/core"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, h.Verify(hash, "s3cret"))
	assert.False(t, h.Verify(hash, "wrong"))
	assert.False(t, h.Verify("not-a-hash", "s3cret"))

	_, err = h.Hash("")
	assert.True(t, errs.IsValidationError(err))

	_, err = h.Hash(strings.Repeat("x", 73))
	assert.True(t, errs.IsValidationError(err))
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}

func TestJWTIssueValidate(t *testing.T) {
	now := time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC)
	issuer := NewJWTIssuer("test-secret", time.Hour, "gift-tracker", coremocks.Fixed(t, now))

	token, expiresAt, err := issuer.Issue(42, "bob")
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "bob", claims.Username)
	assert.True(t, claims.ExpiresAt.Equal(expiresAt))

	_, _, err = issuer.Issue(0, "nobody")
	assert.True(t, errs.IsValidationError(err))
}

func TestJWTValidate_Rejects(t *testing.T) {
	now := time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC)
	issuer := NewJWTIssuer("test-secret", time.Hour, "gift-tracker", coremocks.Fixed(t, now))
	token, _, err := issuer.Issue(42, "bob")
	require.NoError(t, err)

	t.Run("Empty", func(t *testing.T) {
		_, err := issuer.Validate("  ")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		other := NewJWTIssuer("other-secret", time.Hour, "gift-tracker", coremocks.Fixed(t, now))
		_, err := other.Validate(token)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("Wrong issuer", func(t *testing.T) {
		other := NewJWTIssuer("test-secret", time.Hour, "someone-else", coremocks.Fixed(t, now))
		_, err := other.Validate(token)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("Expired", func(t *testing.T) {
		later := NewJWTIssuer("test-secret", time.Hour, "gift-tracker", coremocks.Fixed(t, now.Add(2*time.Hour)))
		_, err := later.Validate(token)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("Unsigned", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject: "42",
			Issuer:  "gift-tracker",
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.Validate(unsigned)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestTokenFromHeader(t *testing.T) {
	_, err := TokenFromHeader("nope")
	assert.True(t, errors.Is(err, ErrMissingToken))

	token, err := TokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	token, err = TokenFromHeader("bearer xyz")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)
}
