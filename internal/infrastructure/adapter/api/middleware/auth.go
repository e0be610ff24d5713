package middleware

import (
	"errors"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/security"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/usecase"
	authadapter "github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/security"
	"github.com/gin-gonic/gin"
)

const identityKey = "gift_tracker.identity"

// IdentityFrom returns the identity Authenticate stored on the request
func IdentityFrom(c *gin.Context) (entity.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return entity.Anonymous, false
	}
	identity, ok := v.(entity.Identity)
	return identity, ok
}

// Identity returns the caller identity, anonymous when there is none
func Identity(c *gin.Context) entity.Identity {
	identity, _ := IdentityFrom(c)
	return identity
}

// Authenticate resolves a bearer token to an identity. Requests without an
// Authorization header continue as anonymous; a present but invalid token is
// rejected. The user is reloaded on every request so that role changes and
// deletions take effect immediately.
func Authenticate(tokens security.TokenIssuer, users usecase.UserUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Set(identityKey, entity.Anonymous)
			c.Next()
			return
		}

		token, err := authadapter.TokenFromHeader(header)
		if err != nil {
			abortWith(c, domainerr.ErrUnauthenticated)
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			logger.Debug("Rejected bearer token", map[string]any{"error": err.Error()})
			abortWith(c, domainerr.ErrUnauthenticated)
			return
		}

		identity, err := users.ResolveIdentity(c.Request.Context(), claims.UserID)
		if err != nil {
			if !errors.Is(err, domainerr.ErrUnauthenticated) {
				logger.Warn("Failed to resolve identity", map[string]any{
					"user_id": claims.UserID,
					"error":   err.Error(),
				})
			}
			abortWith(c, err)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAuthenticated rejects anonymous callers before the handler runs
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Identity(c).IsAuthenticated() {
			abortWith(c, domainerr.ErrUnauthenticated)
			return
		}
		c.Next()
	}
}

func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
