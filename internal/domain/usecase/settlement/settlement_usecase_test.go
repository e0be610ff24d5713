package settlement

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/gift-tracker/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/gift-tracker/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	rootUser  = &entity.User{ID: 1, Username: "root", Role: entity.RoleAdmin}
	aliceUser = &entity.User{ID: 2, Username: "alice", Role: entity.RoleMember}
	bobUser   = &entity.User{ID: 3, Username: "bob", Role: entity.RoleMember}
	carolUser = &entity.User{ID: 4, Username: "carol", Role: entity.RoleMember}
	allUsers  = []*entity.User{rootUser, aliceUser, bobUser, carolUser}
)

func newUseCase(t *testing.T) (*SettlementUseCase, *persistencemocks.MockUserRepository, *persistencemocks.MockEventRepository, *persistencemocks.MockPurchaseRepository) {
	users := persistencemocks.NewMockUserRepository(t)
	events := persistencemocks.NewMockEventRepository(t)
	purchases := persistencemocks.NewMockPurchaseRepository(t)
	return NewSettlementUseCase(users, events, purchases, coremocks.Quiet(t)), users, events, purchases
}

func TestGlobalSettlement(t *testing.T) {
	ctx := context.Background()

	t.Run("Administrator purchases do not count", func(t *testing.T) {
		uc, users, _, purchases := newUseCase(t)
		users.EXPECT().List(mock.Anything).Return(allUsers, nil).Once()
		purchases.EXPECT().ListAll(mock.Anything).Return([]*entity.Purchase{
			{EventID: 1, ContributorID: 2, AmountCents: 10000},
			{EventID: 2, ContributorID: 3, AmountCents: 5000},
			{EventID: 2, ContributorID: 1, AmountCents: 70000},
		}, nil).Once()

		report, err := uc.GlobalSettlement(ctx, rootUser.Identity())

		require.NoError(t, err)
		assert.True(t, report.Scope.IsGlobal())
		assert.Equal(t, int64(15000), report.TotalCents)
		assert.Equal(t, int64(5000), report.FairShareCents)
		assert.Equal(t, 3, report.ParticipantCount)
		assert.Equal(t, int64(5000), report.Participants[0].BalanceCents)
		assert.Equal(t, int64(0), report.Participants[1].BalanceCents)
		assert.Equal(t, int64(-5000), report.Participants[2].BalanceCents)
	})

	t.Run("Member is denied before loading anything", func(t *testing.T) {
		uc, _, _, _ := newUseCase(t)

		_, err := uc.GlobalSettlement(ctx, aliceUser.Identity())

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Only the administrator exists", func(t *testing.T) {
		uc, users, _, purchases := newUseCase(t)
		users.EXPECT().List(mock.Anything).Return([]*entity.User{rootUser}, nil).Once()
		purchases.EXPECT().ListAll(mock.Anything).Return(nil, nil).Once()

		report, err := uc.GlobalSettlement(ctx, rootUser.Identity())

		assert.ErrorIs(t, err, errs.ErrNoParticipants)
		assert.Nil(t, report)
	})
}

func TestEventSettlement(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner is excluded", func(t *testing.T) {
		uc, users, events, purchases := newUseCase(t)
		owner := carolUser.ID
		events.EXPECT().GetByID(mock.Anything, uint64(7)).Return(&entity.Event{ID: 7, Name: "Carol turns 30", OwnerID: &owner}, nil).Once()
		users.EXPECT().List(mock.Anything).Return(allUsers, nil).Once()
		purchases.EXPECT().ListByEvent(mock.Anything, uint64(7)).Return([]*entity.Purchase{
			{EventID: 7, ContributorID: 2, AmountCents: 3000},
			{EventID: 7, ContributorID: 4, AmountCents: 9999},
		}, nil).Once()

		report, err := uc.EventSettlement(ctx, bobUser.Identity(), 7)

		require.NoError(t, err)
		assert.Equal(t, 2, report.ParticipantCount)
		assert.Equal(t, int64(3000), report.TotalCents)
		assert.Equal(t, int64(1500), report.FairShareCents)
		assert.Equal(t, "Carol turns 30", report.Scope.EventName)
		require.Len(t, report.Transfers, 1)
		assert.Equal(t, "bob", report.Transfers[0].FromUsername)
		assert.Equal(t, "alice", report.Transfers[0].ToUsername)
	})

	t.Run("Unknown event", func(t *testing.T) {
		uc, _, events, _ := newUseCase(t)
		events.EXPECT().GetByID(mock.Anything, uint64(8)).Return(nil, errs.ErrEventNotFound).Once()

		_, err := uc.EventSettlement(ctx, bobUser.Identity(), 8)

		assert.ErrorIs(t, err, errs.ErrEventNotFound)
	})

	t.Run("Anonymous", func(t *testing.T) {
		uc, _, _, _ := newUseCase(t)

		_, err := uc.EventSettlement(ctx, entity.Anonymous, 7)

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}
