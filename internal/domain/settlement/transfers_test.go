package settlement

import (
	"testing"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestTransfers(t *testing.T) {
	a, b, c := user(2, "A"), user(3, "B"), user(4, "C")

	t.Run("Single debtor", func(t *testing.T) {
		report, err := Compute(
			[]*entity.User{a, b, c},
			[]*entity.Purchase{purchase(1, a.ID, 10000), purchase(1, b.ID, 5000)},
			entity.GlobalScope(),
		)
		require.NoError(t, err)

		transfers := SuggestTransfers(report)

		require.Len(t, transfers, 1)
		assert.Equal(t, "C", transfers[0].FromUsername)
		assert.Equal(t, "A", transfers[0].ToUsername)
		assert.Equal(t, int64(5000), transfers[0].AmountCents)
	})

	t.Run("Everyone settled", func(t *testing.T) {
		report, err := Compute([]*entity.User{a, b}, nil, entity.GlobalScope())
		require.NoError(t, err)

		assert.Empty(t, SuggestTransfers(report))
	})

	t.Run("Transfers clear the balances", func(t *testing.T) {
		d := user(5, "D")
		report, err := Compute(
			[]*entity.User{a, b, c, d},
			[]*entity.Purchase{purchase(1, a.ID, 9000), purchase(1, b.ID, 3000)},
			entity.GlobalScope(),
		)
		require.NoError(t, err)

		net := map[uint64]int64{}
		for _, p := range report.Participants {
			net[p.UserID] = p.BalanceCents
		}
		for _, tr := range SuggestTransfers(report) {
			net[tr.FromUserID] += tr.AmountCents
			net[tr.ToUserID] -= tr.AmountCents
		}
		for id, v := range net {
			assert.Zero(t, v, "user %d left unsettled", id)
		}
	})

	t.Run("Nil report", func(t *testing.T) {
		assert.Nil(t, SuggestTransfers(nil))
	})
}
