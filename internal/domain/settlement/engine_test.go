package settlement

import (
	"math/rand"
	"testing"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func user(id uint64, name string) *entity.User {
	return &entity.User{ID: id, Username: name, Role: entity.RoleMember}
}

func purchase(eventID, contributorID uint64, cents int64) *entity.Purchase {
	return &entity.Purchase{EventID: eventID, ContributorID: contributorID, AmountCents: cents}
}

func balances(report *entity.SettlementReport) map[string]int64 {
	out := make(map[string]int64, len(report.Participants))
	for _, p := range report.Participants {
		out[p.Username] = p.BalanceCents
	}
	return out
}

var root = &entity.User{ID: 1, Username: "root", Role: entity.RoleAdmin}

func TestCompute_Examples(t *testing.T) {
	a, b, c := user(2, "A"), user(3, "B"), user(4, "C")

	t.Run("A=100 B=50 C=0", func(t *testing.T) {
		report, err := Compute(
			[]*entity.User{c, a, root, b},
			[]*entity.Purchase{purchase(1, 2, 10000), purchase(1, 3, 5000)},
			entity.GlobalScope(),
		)

		require.NoError(t, err)
		assert.Equal(t, int64(15000), report.TotalCents)
		assert.Equal(t, int64(5000), report.FairShareCents)
		assert.Equal(t, 3, report.ParticipantCount)
		assert.Equal(t, map[string]int64{"A": 5000, "B": 0, "C": -5000}, balances(report))
		assert.Equal(t, "150.00", report.Total())
		assert.Equal(t, "50.00", report.FairShare())

		names := []string{}
		for _, p := range report.Participants {
			names = append(names, p.Username)
		}
		assert.Equal(t, []string{"A", "B", "C"}, names)
	})

	t.Run("No purchases", func(t *testing.T) {
		report, err := Compute([]*entity.User{a, b}, nil, entity.GlobalScope())

		require.NoError(t, err)
		assert.Equal(t, int64(0), report.TotalCents)
		assert.Equal(t, int64(0), report.FairShareCents)
		assert.Equal(t, map[string]int64{"A": 0, "B": 0}, balances(report))
	})

	t.Run("No participants", func(t *testing.T) {
		report, err := Compute([]*entity.User{root}, []*entity.Purchase{purchase(1, 1, 500)}, entity.GlobalScope())

		assert.ErrorIs(t, err, errs.ErrNoParticipants)
		assert.Nil(t, report)
	})

	t.Run("No users at all", func(t *testing.T) {
		_, err := Compute(nil, nil, entity.GlobalScope())
		assert.ErrorIs(t, err, errs.ErrNoParticipants)
	})
}

func TestCompute_AdministratorNeverCounts(t *testing.T) {
	a, b := user(2, "A"), user(3, "B")

	report, err := Compute(
		[]*entity.User{root, a, b},
		[]*entity.Purchase{purchase(1, root.ID, 90000), purchase(1, a.ID, 1000)},
		entity.GlobalScope(),
	)

	require.NoError(t, err)
	assert.Equal(t, int64(1000), report.TotalCents)
	assert.Equal(t, 2, report.ParticipantCount)
	for _, p := range report.Participants {
		assert.NotEqual(t, root.ID, p.UserID)
	}
}

func TestCompute_EventScope(t *testing.T) {
	owner, a, b := user(2, "owner"), user(3, "A"), user(4, "B")
	ownerID := owner.ID
	event := &entity.Event{ID: 7, Name: "Christmas", OwnerID: &ownerID}

	purchases := []*entity.Purchase{
		purchase(7, a.ID, 3000),
		purchase(7, owner.ID, 10000), // owner is excluded
		purchase(8, b.ID, 99999),     // other event
		purchase(7, b.ID, 1000),
	}

	report, err := Compute([]*entity.User{root, owner, a, b}, purchases, entity.EventScope(event))

	require.NoError(t, err)
	assert.Equal(t, int64(4000), report.TotalCents)
	assert.Equal(t, int64(2000), report.FairShareCents)
	assert.Equal(t, map[string]int64{"A": 1000, "B": -1000}, balances(report))
	require.NotNil(t, report.Scope.EventID)
	assert.Equal(t, uint64(7), *report.Scope.EventID)
	assert.Equal(t, "Christmas", report.Scope.EventName)
	assert.False(t, report.Scope.IsGlobal())
}

func TestCompute_EventWithoutOwner(t *testing.T) {
	a, b := user(2, "A"), user(3, "B")
	event := &entity.Event{ID: 5, Name: "Party"}

	report, err := Compute([]*entity.User{a, b}, []*entity.Purchase{purchase(5, a.ID, 600)}, entity.EventScope(event))

	require.NoError(t, err)
	assert.Equal(t, 2, report.ParticipantCount)
}

func TestCompute_OnlyOwnerAndAdmin(t *testing.T) {
	owner := user(2, "owner")
	ownerID := owner.ID
	event := &entity.Event{ID: 5, Name: "Party", OwnerID: &ownerID}

	_, err := Compute([]*entity.User{root, owner}, nil, entity.EventScope(event))
	assert.ErrorIs(t, err, errs.ErrNoParticipants)
}

func TestCompute_Rounding(t *testing.T) {
	a, b, c := user(2, "A"), user(3, "B"), user(4, "C")

	// 1.00 split three ways: fair share 0.33, one cent remains
	report, err := Compute([]*entity.User{a, b, c}, []*entity.Purchase{purchase(1, a.ID, 100)}, entity.GlobalScope())

	require.NoError(t, err)
	assert.Equal(t, int64(33), report.FairShareCents)
	assert.Equal(t, int64(1), report.RemainderCents)
	assert.Equal(t, map[string]int64{"A": 67, "B": -33, "C": -33}, balances(report))

	// 2.00 split three ways rounds up to 0.67
	report, err = Compute([]*entity.User{a, b, c}, []*entity.Purchase{purchase(1, a.ID, 200)}, entity.GlobalScope())

	require.NoError(t, err)
	assert.Equal(t, int64(67), report.FairShareCents)
	assert.Equal(t, int64(-1), report.RemainderCents)
}

func TestCompute_BalancesSumToRemainder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		n := 1 + rng.Intn(8)
		users := []*entity.User{root}
		for i := 0; i < n; i++ {
			users = append(users, user(uint64(i+2), string(rune('a'+i))))
		}

		var purchases []*entity.Purchase
		for i := 0; i < rng.Intn(30); i++ {
			contributor := uint64(1 + rng.Intn(n+1))
			purchases = append(purchases, purchase(1, contributor, rng.Int63n(500000)))
		}

		report, err := Compute(users, purchases, entity.GlobalScope())
		require.NoError(t, err)

		var sum int64
		for _, p := range report.Participants {
			sum += p.BalanceCents
		}
		assert.Equal(t, report.RemainderCents, sum)
		assert.Less(t, abs(report.RemainderCents), int64(n))
		assert.Equal(t, report.TotalCents, report.FairShareCents*int64(n)+report.RemainderCents)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	users := []*entity.User{user(3, "B"), user(2, "A")}
	purchases := []*entity.Purchase{purchase(1, 2, 700), purchase(1, 3, 300)}

	first, err := Compute(users, purchases, entity.GlobalScope())
	require.NoError(t, err)
	second, err := Compute(users, purchases, entity.GlobalScope())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
