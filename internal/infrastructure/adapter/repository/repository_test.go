package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/database/dbtest"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/model"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC)

func newPurchase(eventID, contributorID uint64, amountCents int64, at time.Time) *entity.Purchase {
	return &entity.Purchase{
		EventID:       eventID,
		ContributorID: contributorID,
		Recipient:     "mom",
		Description:   "scarf",
		AmountCents:   amountCents,
		CreatedAt:     at,
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := repository.NewUserRepository(db, logger.NewNoopLogger())

	bob := &entity.User{Username: "bob", PasswordHash: "h1", Role: entity.RoleMember, CreatedAt: baseTime}
	require.NoError(t, repo.Create(ctx, bob))
	assert.NotZero(t, bob.ID)

	admin := &entity.User{Username: "admin", PasswordHash: "h2", Role: entity.RoleAdmin, CreatedAt: baseTime}
	require.NoError(t, repo.Create(ctx, admin))

	t.Run("Duplicate username", func(t *testing.T) {
		err := repo.Create(ctx, &entity.User{Username: "bob", PasswordHash: "h3", Role: entity.RoleMember, CreatedAt: baseTime})
		assert.ErrorIs(t, err, errs.ErrDuplicateUsername)
	})

	t.Run("Lookup", func(t *testing.T) {
		got, err := repo.GetByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, bob.ID, got.ID)
		assert.Equal(t, "h1", got.PasswordHash)
		assert.Equal(t, entity.RoleMember, got.Role)

		got, err = repo.GetByID(ctx, admin.ID)
		require.NoError(t, err)
		assert.True(t, got.IsAdmin())

		_, err = repo.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		_, err = repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("List is ordered by username", func(t *testing.T) {
		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "admin", users[0].Username)
		assert.Equal(t, "bob", users[1].Username)
	})

	t.Run("ExistsByRole", func(t *testing.T) {
		exists, err := repo.ExistsByRole(ctx, entity.RoleAdmin)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, bob.ID))
		assert.ErrorIs(t, repo.Delete(ctx, bob.ID), errs.ErrUserNotFound)
	})
}

func TestUserDeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	users := repository.NewUserRepository(db, logger.NewNoopLogger())
	purchases := repository.NewPurchaseRepository(db, logger.NewNoopLogger())

	alice := dbtest.CreateUser(t, db, "alice", "member")
	bob := dbtest.CreateUser(t, db, "bob", "member")
	owned := dbtest.CreateEvent(t, db, "Alice birthday", &bob.ID)

	require.NoError(t, purchases.Create(ctx, newPurchase(owned.ID, alice.ID, 1000, baseTime)))
	require.NoError(t, purchases.Create(ctx, newPurchase(owned.ID, bob.ID, 2000, baseTime)))

	require.NoError(t, users.Delete(ctx, bob.ID))

	var event model.Event
	require.NoError(t, db.First(&event, owned.ID).Error)
	assert.Nil(t, event.OwnerID, "owner reference is cleared")

	remaining, err := purchases.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, alice.ID, remaining[0].ContributorID)
}

func TestEventRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := repository.NewEventRepository(db, logger.NewNoopLogger())

	bob := dbtest.CreateUser(t, db, "bob", "member")

	xmas := &entity.Event{Name: "Christmas", CreatedAt: baseTime}
	require.NoError(t, repo.Create(ctx, xmas))
	assert.NotZero(t, xmas.ID)

	birthday := &entity.Event{Name: "Bob birthday", OwnerID: &bob.ID, CreatedAt: baseTime}
	require.NoError(t, repo.Create(ctx, birthday))

	t.Run("Duplicate name", func(t *testing.T) {
		err := repo.Create(ctx, &entity.Event{Name: "Christmas", CreatedAt: baseTime})
		assert.ErrorIs(t, err, errs.ErrDuplicateEvent)
	})

	t.Run("Unknown owner", func(t *testing.T) {
		missing := uint64(999)
		err := repo.Create(ctx, &entity.Event{Name: "Ghost", OwnerID: &missing, CreatedAt: baseTime})
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("GetByID loads owner", func(t *testing.T) {
		got, err := repo.GetByID(ctx, birthday.ID)
		require.NoError(t, err)
		assert.Equal(t, "bob", got.OwnerUsername)
		assert.True(t, got.IsOwnedBy(bob.ID))

		_, err = repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, errs.ErrEventNotFound)
	})

	t.Run("List is ordered by name", func(t *testing.T) {
		events, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "Bob birthday", events[0].Name)
		assert.Equal(t, "Christmas", events[1].Name)
	})

	t.Run("ListNotOwnedBy hides owned events", func(t *testing.T) {
		events, err := repo.ListNotOwnedBy(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Christmas", events[0].Name)

		events, err = repo.ListNotOwnedBy(ctx, bob.ID+1)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("Delete cascades to purchases", func(t *testing.T) {
		purchases := repository.NewPurchaseRepository(db, logger.NewNoopLogger())
		require.NoError(t, purchases.Create(ctx, newPurchase(xmas.ID, bob.ID, 500, baseTime)))

		require.NoError(t, repo.Delete(ctx, xmas.ID))
		assert.Zero(t, dbtest.Count(t, db, "purchases"))
		assert.ErrorIs(t, repo.Delete(ctx, xmas.ID), errs.ErrEventNotFound)
	})
}

func TestPurchaseRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := repository.NewPurchaseRepository(db, logger.NewNoopLogger())

	alice := dbtest.CreateUser(t, db, "alice", "member")
	bob := dbtest.CreateUser(t, db, "bob", "member")
	xmas := dbtest.CreateEvent(t, db, "Christmas", nil)
	easter := dbtest.CreateEvent(t, db, "Easter", nil)

	first := newPurchase(xmas.ID, alice.ID, 1250, baseTime)
	second := newPurchase(xmas.ID, bob.ID, 1999, baseTime.Add(time.Minute))
	third := newPurchase(xmas.ID, alice.ID, 1000, baseTime.Add(2*time.Minute))
	other := newPurchase(easter.ID, bob.ID, 300, baseTime.Add(3*time.Minute))
	for _, p := range []*entity.Purchase{first, second, third, other} {
		require.NoError(t, repo.Create(ctx, p))
	}

	t.Run("Amounts round-trip exactly", func(t *testing.T) {
		got, err := repo.GetByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1999), got.AmountCents)
		assert.Equal(t, "bob", got.ContributorUsername)

		got, err = repo.GetByID(ctx, third.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), got.AmountCents)
	})

	t.Run("ListByEvent is newest first", func(t *testing.T) {
		purchases, err := repo.ListByEvent(ctx, xmas.ID)
		require.NoError(t, err)
		require.Len(t, purchases, 3)
		assert.Equal(t, third.ID, purchases[0].ID)
		assert.Equal(t, second.ID, purchases[1].ID)
		assert.Equal(t, first.ID, purchases[2].ID)
	})

	t.Run("ListByEventAndContributor", func(t *testing.T) {
		purchases, err := repo.ListByEventAndContributor(ctx, xmas.ID, alice.ID)
		require.NoError(t, err)
		require.Len(t, purchases, 2)
		for _, p := range purchases {
			assert.Equal(t, alice.ID, p.ContributorID)
			assert.Equal(t, "alice", p.ContributorUsername)
		}
	})

	t.Run("ListAll spans events", func(t *testing.T) {
		purchases, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, purchases, 4)
		assert.Equal(t, other.ID, purchases[0].ID)
	})

	t.Run("Unknown event", func(t *testing.T) {
		err := repo.Create(ctx, newPurchase(999, alice.ID, 100, baseTime))
		assert.ErrorIs(t, err, errs.ErrEventNotFound)
	})

	t.Run("Negative amount violates check", func(t *testing.T) {
		err := repo.Create(ctx, newPurchase(xmas.ID, alice.ID, -100, baseTime))
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})

	t.Run("Delete removes exactly one", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, first.ID))
		assert.Equal(t, int64(3), dbtest.Count(t, db, "purchases"))
		assert.ErrorIs(t, repo.Delete(ctx, first.ID), errs.ErrPurchaseNotFound)
		_, err := repo.GetByID(ctx, first.ID)
		assert.ErrorIs(t, err, errs.ErrPurchaseNotFound)
	})
}

func TestPurchaseRepositoryRespectsTransaction(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)

	alice := dbtest.CreateUser(t, db, "alice", "member")
	xmas := dbtest.CreateEvent(t, db, "Christmas", nil)

	err := db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewPurchaseRepository(tx, logger.NewNoopLogger())
		require.NoError(t, repo.Create(ctx, newPurchase(xmas.ID, alice.ID, 100, baseTime)))
		return errs.ErrValidation
	})
	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Zero(t, dbtest.Count(t, db, "purchases"))
}
