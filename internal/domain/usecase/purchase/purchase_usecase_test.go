package purchase

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/gift-tracker/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/gift-tracker/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	fixedTime = time.Date(2024, 12, 1, 9, 30, 0, 0, time.UTC)
	alice     = entity.Identity{UserID: 2, Username: "alice", Role: entity.RoleMember}
	bob       = entity.Identity{UserID: 3, Username: "bob", Role: entity.RoleMember}
	christmas = &entity.Event{ID: 7, Name: "Christmas"}
)

type fixture struct {
	uow       *persistencemocks.MockUnitOfWork
	events    *persistencemocks.MockEventRepository
	purchases *persistencemocks.MockPurchaseRepository
	uc        *PurchaseUseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:       persistencemocks.NewMockUnitOfWork(t),
		events:    persistencemocks.NewMockEventRepository(t),
		purchases: persistencemocks.NewMockPurchaseRepository(t),
	}
	f.uc = NewPurchaseUseCase(f.uow, f.events, f.purchases, coremocks.Fixed(t, fixedTime), coremocks.Quiet(t))
	return f
}

func (f *fixture) expectTx(commit bool) {
	f.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
		return ctx, nil
	}).Once()
	f.uow.EXPECT().GetEventRepository(mock.Anything).Return(f.events).Maybe()
	f.uow.EXPECT().GetPurchaseRepository(mock.Anything).Return(f.purchases).Maybe()
	if commit {
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
	} else {
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
	}
}

func TestAddPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("Records purchase with default recipient", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx(true)
		f.events.EXPECT().GetByID(mock.Anything, uint64(7)).Return(christmas, nil).Once()
		f.purchases.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.Purchase) bool {
			return p.EventID == 7 && p.ContributorID == 2 && p.AmountCents == 1999 && p.Recipient == "alice"
		})).RunAndReturn(func(_ context.Context, p *entity.Purchase) error {
			p.ID = 41
			return nil
		}).Once()

		purchase, err := f.uc.AddPurchase(ctx, alice, usecase.AddPurchaseInput{
			EventID:     7,
			Description: "Socks",
			Amount:      "19.99",
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(41), purchase.ID)
		assert.Equal(t, "19.99", purchase.Amount())
		assert.Equal(t, fixedTime, purchase.CreatedAt)
	})

	t.Run("Unparseable amount writes nothing", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.AddPurchase(ctx, alice, usecase.AddPurchaseInput{EventID: 7, Description: "Socks", Amount: "cheap"})

		assert.ErrorIs(t, err, errs.ErrValidation)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Missing description", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.AddPurchase(ctx, alice, usecase.AddPurchaseInput{EventID: 7, Amount: "1"})

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Unknown event rolls back", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx(false)
		f.events.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrEventNotFound).Once()

		_, err := f.uc.AddPurchase(ctx, alice, usecase.AddPurchaseInput{EventID: 99, Description: "Socks", Amount: "1"})

		assert.ErrorIs(t, err, errs.ErrEventNotFound)
		f.purchases.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Anonymous", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.AddPurchase(ctx, entity.Anonymous, usecase.AddPurchaseInput{EventID: 7, Description: "Socks", Amount: "1"})

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestListOwnPurchases(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists caller purchases", func(t *testing.T) {
		f := newFixture(t)
		own := []*entity.Purchase{{ID: 2, ContributorID: 2}, {ID: 1, ContributorID: 2}}
		f.events.EXPECT().GetByID(mock.Anything, uint64(7)).Return(christmas, nil).Once()
		f.purchases.EXPECT().ListByEventAndContributor(mock.Anything, uint64(7), uint64(2)).Return(own, nil).Once()

		got, err := f.uc.ListOwnPurchases(ctx, alice, 7)

		require.NoError(t, err)
		assert.Equal(t, own, got)
	})

	t.Run("Unknown event", func(t *testing.T) {
		f := newFixture(t)
		f.events.EXPECT().GetByID(mock.Anything, uint64(8)).Return(nil, errs.ErrEventNotFound).Once()

		_, err := f.uc.ListOwnPurchases(ctx, alice, 8)

		assert.ErrorIs(t, err, errs.ErrEventNotFound)
	})
}

func TestDeletePurchase(t *testing.T) {
	ctx := context.Background()
	owned := &entity.Purchase{ID: 5, EventID: 7, ContributorID: alice.UserID}

	t.Run("Owner deletes exactly that row", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx(true)
		f.purchases.EXPECT().GetByID(mock.Anything, uint64(5)).Return(owned, nil).Once()
		f.purchases.EXPECT().Delete(mock.Anything, uint64(5)).Return(nil).Once()

		assert.NoError(t, f.uc.DeletePurchase(ctx, alice, 5))
	})

	t.Run("Non-owner is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx(false)
		f.purchases.EXPECT().GetByID(mock.Anything, uint64(5)).Return(owned, nil).Once()

		err := f.uc.DeletePurchase(ctx, bob, 5)

		assert.ErrorIs(t, err, errs.ErrForbidden)
		f.purchases.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Administrator is not the owner either", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx(false)
		f.purchases.EXPECT().GetByID(mock.Anything, uint64(5)).Return(owned, nil).Once()

		root := entity.Identity{UserID: 1, Username: "root", Role: entity.RoleAdmin}
		assert.ErrorIs(t, f.uc.DeletePurchase(ctx, root, 5), errs.ErrForbidden)
	})

	t.Run("Missing purchase", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx(false)
		f.purchases.EXPECT().GetByID(mock.Anything, uint64(6)).Return(nil, errs.ErrPurchaseNotFound).Once()

		assert.ErrorIs(t, f.uc.DeletePurchase(ctx, alice, 6), errs.ErrPurchaseNotFound)
	})
}
