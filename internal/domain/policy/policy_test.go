package policy

import (
	"testing"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

var (
	admin  = entity.Identity{UserID: 1, Username: "root", Role: entity.RoleAdmin}
	member = entity.Identity{UserID: 2, Username: "bob", Role: entity.RoleMember}
	// a member whose name happens to be "admin" holds no privilege
	namedAdmin = entity.Identity{UserID: 3, Username: "admin", Role: entity.RoleMember}
)

func TestAuthorize(t *testing.T) {
	testCases := []struct {
		name    string
		actor   entity.Identity
		op      Operation
		wantErr error
	}{
		{"admin creates user", admin, OpCreateUser, nil},
		{"admin deletes event", admin, OpDeleteEvent, nil},
		{"admin views global settlement", admin, OpViewGlobalSettlement, nil},
		{"member creates user", member, OpCreateUser, errs.ErrForbidden},
		{"member deletes user", member, OpDeleteUser, errs.ErrForbidden},
		{"member lists users", member, OpListUsers, errs.ErrForbidden},
		{"member creates event", member, OpCreateEvent, errs.ErrForbidden},
		{"member deletes event", member, OpDeleteEvent, errs.ErrForbidden},
		{"member views global settlement", member, OpViewGlobalSettlement, errs.ErrForbidden},
		{"member named admin creates event", namedAdmin, OpCreateEvent, errs.ErrForbidden},
		{"member lists events", member, OpListEvents, nil},
		{"member views event", member, OpViewEvent, nil},
		{"member adds purchase", member, OpAddPurchase, nil},
		{"member lists own purchases", member, OpListOwnPurchases, nil},
		{"member views event settlement", member, OpViewEventSettlement, nil},
		{"admin adds purchase", admin, OpAddPurchase, nil},
		{"anonymous lists events", entity.Anonymous, OpListEvents, errs.ErrUnauthenticated},
		{"anonymous creates event", entity.Anonymous, OpCreateEvent, errs.ErrUnauthenticated},
		{"unknown operation", member, Operation("backup.run"), errs.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.actor, tc.op)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAuthorizeOwner(t *testing.T) {
	t.Run("Owner may delete", func(t *testing.T) {
		assert.NoError(t, AuthorizeOwner(member, OpDeletePurchase, member.UserID))
	})

	t.Run("Non-owner is denied with a reason", func(t *testing.T) {
		err := AuthorizeOwner(member, OpDeletePurchase, 99)

		var authzErr *errs.AuthorizationError
		assert.ErrorAs(t, err, &authzErr)
		assert.Equal(t, string(OpDeletePurchase), authzErr.Operation)
		assert.Equal(t, "bob", authzErr.Actor)
		assert.NotEmpty(t, authzErr.Reason)
	})

	t.Run("Admin is not the owner", func(t *testing.T) {
		assert.ErrorIs(t, AuthorizeOwner(admin, OpDeletePurchase, member.UserID), errs.ErrForbidden)
	})

	t.Run("Anonymous", func(t *testing.T) {
		assert.ErrorIs(t, AuthorizeOwner(entity.Anonymous, OpDeletePurchase, 0), errs.ErrUnauthenticated)
	})
}

func TestClassOf(t *testing.T) {
	assert.Equal(t, ClassAdminOnly, ClassOf(OpCreateEvent))
	assert.Equal(t, ClassOwnerOnly, ClassOf(OpDeletePurchase))
	assert.Equal(t, ClassAuthenticated, ClassOf(OpAddPurchase))
	assert.Equal(t, "owner-only", ClassOwnerOnly.String())
}
