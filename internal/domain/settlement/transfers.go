package settlement

import (
	"sort"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
)

// SuggestTransfers matches underpaid participants with overpaid ones,
// largest amounts first. Any rounding remainder is left unsettled.
func SuggestTransfers(report *entity.SettlementReport) []entity.Transfer {
	if report == nil {
		return nil
	}

	type party struct {
		id       uint64
		username string
		amount   int64
	}

	var creditors, debtors []party
	for _, p := range report.Participants {
		switch {
		case p.BalanceCents > 0:
			creditors = append(creditors, party{p.UserID, p.Username, p.BalanceCents})
		case p.BalanceCents < 0:
			debtors = append(debtors, party{p.UserID, p.Username, -p.BalanceCents})
		}
	}

	byAmount := func(ps []party) func(i, j int) bool {
		return func(i, j int) bool {
			if ps[i].amount == ps[j].amount {
				return ps[i].username < ps[j].username
			}
			return ps[i].amount > ps[j].amount
		}
	}
	sort.SliceStable(creditors, byAmount(creditors))
	sort.SliceStable(debtors, byAmount(debtors))

	var transfers []entity.Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := min(debtors[i].amount, creditors[j].amount)
		if amount > 0 {
			transfers = append(transfers, entity.Transfer{
				FromUserID:   debtors[i].id,
				FromUsername: debtors[i].username,
				ToUserID:     creditors[j].id,
				ToUsername:   creditors[j].username,
				AmountCents:  amount,
			})
		}

		debtors[i].amount -= amount
		creditors[j].amount -= amount

		if debtors[i].amount == 0 {
			i++
		}
		if creditors[j].amount == 0 {
			j++
		}
	}

	return transfers
}
