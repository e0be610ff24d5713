package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/gift-tracker/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/gift-tracker/mocks/port/persistence"
	securitymocks "github.com/amirhossein-jamali/gift-tracker/mocks/port/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	fixedTime = time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	admin     = entity.Identity{UserID: 1, Username: "root", Role: entity.RoleAdmin}
	member    = entity.Identity{UserID: 2, Username: "bob", Role: entity.RoleMember}
)

type fixture struct {
	uow    *persistencemocks.MockUnitOfWork
	repo   *persistencemocks.MockUserRepository
	hasher *securitymocks.MockPasswordHasher
	uc     *UserUseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:    persistencemocks.NewMockUnitOfWork(t),
		repo:   persistencemocks.NewMockUserRepository(t),
		hasher: securitymocks.NewMockPasswordHasher(t),
	}
	f.uc = NewUserUseCase(f.uow, f.repo, f.hasher, coremocks.Fixed(t, fixedTime), coremocks.Quiet(t))
	return f
}

// expectTx wires a transaction whose repositories are the fixture's mocks
func (f *fixture) expectTx(commit bool) {
	f.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
		return ctx, nil
	}).Once()
	f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.repo).Maybe()
	if commit {
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
	} else {
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
	}
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful user creation", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx(true)
		f.hasher.EXPECT().Hash("secret").Return("hashed", nil).Once()
		f.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "alice" && u.PasswordHash == "hashed" && u.Role == entity.RoleMember
		})).RunAndReturn(func(_ context.Context, u *entity.User) error {
			u.ID = 10
			return nil
		}).Once()

		user, err := f.uc.CreateUser(ctx, admin, " alice ", "secret")

		require.NoError(t, err)
		assert.Equal(t, uint64(10), user.ID)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.False(t, user.IsAdmin())
	})

	t.Run("Non-admin is denied before any write", func(t *testing.T) {
		f := newFixture(t)

		user, err := f.uc.CreateUser(ctx, member, "alice", "secret")

		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.Nil(t, user)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Anonymous is denied", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.CreateUser(ctx, entity.Anonymous, "alice", "secret")

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("Missing fields", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.CreateUser(ctx, admin, "", "secret")
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = f.uc.CreateUser(ctx, admin, "alice", "")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Duplicate username rolls back", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx(false)
		f.hasher.EXPECT().Hash("secret").Return("hashed", nil).Once()
		f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateUsername).Once()

		user, err := f.uc.CreateUser(ctx, admin, "alice", "secret")

		assert.ErrorIs(t, err, errs.ErrDuplicateUsername)
		assert.Nil(t, user)
	})

	t.Run("Hasher failure", func(t *testing.T) {
		f := newFixture(t)
		f.hasher.EXPECT().Hash("secret").Return("", errors.New("cost too high")).Once()

		_, err := f.uc.CreateUser(ctx, admin, "alice", "secret")

		assert.Error(t, err)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes member", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx(true)
		f.repo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(&entity.User{ID: 2, Username: "bob", Role: entity.RoleMember}, nil).Once()
		f.repo.EXPECT().Delete(mock.Anything, uint64(2)).Return(nil).Once()

		assert.NoError(t, f.uc.DeleteUser(ctx, admin, 2))
	})

	t.Run("Administrator is undeletable", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx(false)
		f.repo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(&entity.User{ID: 1, Username: "root", Role: entity.RoleAdmin}, nil).Once()

		err := f.uc.DeleteUser(ctx, admin, 1)

		assert.ErrorIs(t, err, errs.ErrAdministratorUndeletable)
		f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Member cannot delete", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.DeleteUser(ctx, member, 1)

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx(false)
		f.repo.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrUserNotFound).Once()

		assert.ErrorIs(t, f.uc.DeleteUser(ctx, admin, 99), errs.ErrUserNotFound)
	})

	t.Run("Zero id", func(t *testing.T) {
		f := newFixture(t)

		assert.ErrorIs(t, f.uc.DeleteUser(ctx, admin, 0), errs.ErrInvalidID)
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin lists users", func(t *testing.T) {
		f := newFixture(t)
		users := []*entity.User{{ID: 2, Username: "alice"}, {ID: 3, Username: "bob"}}
		f.repo.EXPECT().List(mock.Anything).Return(users, nil).Once()

		got, err := f.uc.ListUsers(ctx, admin)

		require.NoError(t, err)
		assert.Equal(t, users, got)
	})

	t.Run("Member is denied", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.ListUsers(ctx, member)

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	stored := &entity.User{ID: 2, Username: "bob", PasswordHash: "hashed", Role: entity.RoleMember}

	t.Run("Valid credentials", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByUsername(mock.Anything, "bob").Return(stored, nil).Once()
		f.hasher.EXPECT().Verify("hashed", "secret").Return(true).Once()

		id, err := f.uc.Authenticate(ctx, "bob", "secret")

		require.NoError(t, err)
		assert.Equal(t, member, id)
	})

	t.Run("Wrong password", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByUsername(mock.Anything, "bob").Return(stored, nil).Once()
		f.hasher.EXPECT().Verify("hashed", "nope").Return(false).Once()

		id, err := f.uc.Authenticate(ctx, "bob", "nope")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.False(t, id.IsAuthenticated())
	})

	t.Run("Unknown user looks the same", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		_, err := f.uc.Authenticate(ctx, "ghost", "secret")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Empty input", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Authenticate(ctx, "", "")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Store failure is not hidden", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByUsername(mock.Anything, "bob").Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := f.uc.Authenticate(ctx, "bob", "secret")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestResolveIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("Fresh role from store", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(&entity.User{ID: 1, Username: "root", Role: entity.RoleAdmin}, nil).Once()

		id, err := f.uc.ResolveIdentity(ctx, 1)

		require.NoError(t, err)
		assert.True(t, id.IsAdmin())
	})

	t.Run("Deleted user", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(nil, errs.ErrUserNotFound).Once()

		_, err := f.uc.ResolveIdentity(ctx, 5)

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("Zero id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.ResolveIdentity(ctx, 0)

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestBootstrapAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates administrator", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx(true)
		f.repo.EXPECT().ExistsByRole(mock.Anything, entity.RoleAdmin).Return(false, nil).Once()
		f.hasher.EXPECT().Hash("changeme").Return("hashed", nil).Once()
		f.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "admin" && u.Role == entity.RoleAdmin
		})).Return(nil).Once()

		user, created, err := f.uc.BootstrapAdmin(ctx, "admin", "changeme")

		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, user.IsAdmin())
	})

	t.Run("Idempotent", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx(true)
		f.repo.EXPECT().ExistsByRole(mock.Anything, entity.RoleAdmin).Return(true, nil).Once()

		user, created, err := f.uc.BootstrapAdmin(ctx, "admin", "changeme")

		require.NoError(t, err)
		assert.False(t, created)
		assert.Nil(t, user)
		f.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})

	t.Run("Username taken by a member", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx(false)
		f.repo.EXPECT().ExistsByRole(mock.Anything, entity.RoleAdmin).Return(false, nil).Once()
		f.hasher.EXPECT().Hash("changeme").Return("hashed", nil).Once()
		f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateUsername).Once()

		_, created, err := f.uc.BootstrapAdmin(ctx, "admin", "changeme")

		assert.ErrorIs(t, err, errs.ErrDuplicateUsername)
		assert.False(t, created)
	})
}
