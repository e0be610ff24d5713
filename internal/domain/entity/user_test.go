package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/gift-tracker/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.Fixed(t, fixedTime)

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("  alice ", "hash", RoleMember, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hash", user.PasswordHash)
		assert.Equal(t, RoleMember, user.Role)
		assert.False(t, user.IsAdmin())
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Administrator", func(t *testing.T) {
		user, err := NewUser("root", "hash", RoleAdmin, mockTime)

		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
	})

	t.Run("Admin privilege is not derived from the username", func(t *testing.T) {
		user, err := NewUser("admin", "hash", RoleMember, mockTime)

		require.NoError(t, err)
		assert.False(t, user.IsAdmin())
		assert.False(t, user.Identity().IsAdmin())
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			name     string
			username string
			hash     string
			role     Role
		}{
			{"empty username", "", "hash", RoleMember},
			{"blank username", "   ", "hash", RoleMember},
			{"long username", strings.Repeat("u", MaxUsernameLength+1), "hash", RoleMember},
			{"missing hash", "bob", "", RoleMember},
			{"unknown role", "bob", "hash", Role("owner")},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				user, err := NewUser(tc.username, tc.hash, tc.role, mockTime)
				assert.ErrorIs(t, err, errs.ErrValidation)
				assert.Nil(t, user)
			})
		}
	})
}

func TestIdentity(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		assert.False(t, Anonymous.IsAuthenticated())
		assert.False(t, Anonymous.IsAdmin())
		assert.Equal(t, "anonymous", Anonymous.String())
	})

	t.Run("Role without user id is not admin", func(t *testing.T) {
		id := Identity{Role: RoleAdmin}
		assert.False(t, id.IsAdmin())
	})

	t.Run("From user", func(t *testing.T) {
		user := &User{ID: 7, Username: "carol", Role: RoleMember}
		id := user.Identity()

		assert.True(t, id.IsAuthenticated())
		assert.Equal(t, uint64(7), id.UserID)
		assert.Equal(t, "carol", id.String())
	})
}
