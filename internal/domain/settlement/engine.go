// Package settlement computes fair-split balance reports.
//
// Compute is a pure function of its inputs: every request recomputes the
// report from current state and nothing is cached.
package settlement

import (
	"sort"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
)

// Compute builds the settlement report for scope.
//
// Algorithm:
// - Administrators are never participants; in an event scope the event owner is excluded too
// - contributed[u] = sum of u's purchases inside the scope, in cents
// - total = sum of contributed[u] over participants (excluded users' purchases do not count)
// - fairShare = total / n rounded half up to the cent
// - balance[u] = contributed[u] - fairShare (positive = overpaid, negative = underpaid)
//
// Participants are ordered by username and the report carries the suggested
// transfers. An empty pool returns ErrNoParticipants.
func Compute(users []*entity.User, purchases []*entity.Purchase, scope entity.SettlementScope) (*entity.SettlementReport, error) {
	participants := eligible(users, scope)
	if len(participants) == 0 {
		return nil, errs.ErrNoParticipants
	}

	contributed := make(map[uint64]int64, len(participants))
	for _, u := range participants {
		contributed[u.ID] = 0
	}

	for _, p := range purchases {
		if scope.EventID != nil && p.EventID != *scope.EventID {
			continue
		}
		// Purchases by excluded or unknown users never count
		if _, ok := contributed[p.ContributorID]; !ok {
			continue
		}
		contributed[p.ContributorID] += p.AmountCents
	}

	var total int64
	for _, u := range participants {
		total += contributed[u.ID]
	}

	n := len(participants)
	fairShare := entity.DivideRoundHalfUp(total, n)

	rows := make([]entity.ParticipantBalance, 0, n)
	for _, u := range participants {
		rows = append(rows, entity.ParticipantBalance{
			UserID:           u.ID,
			Username:         u.Username,
			ContributedCents: contributed[u.ID],
			FairShareCents:   fairShare,
			BalanceCents:     contributed[u.ID] - fairShare,
		})
	}

	report := &entity.SettlementReport{
		Scope:            scope,
		TotalCents:       total,
		FairShareCents:   fairShare,
		ParticipantCount: n,
		Participants:     rows,
		RemainderCents:   total - fairShare*int64(n),
	}
	report.Transfers = SuggestTransfers(report)

	return report, nil
}

func eligible(users []*entity.User, scope entity.SettlementScope) []*entity.User {
	out := make([]*entity.User, 0, len(users))
	seen := make(map[uint64]struct{}, len(users))
	for _, u := range users {
		if u == nil || u.IsAdmin() {
			continue
		}
		if scope.OwnerID != nil && u.ID == *scope.OwnerID {
			continue
		}
		if _, dup := seen[u.ID]; dup {
			continue
		}
		seen[u.ID] = struct{}{}
		out = append(out, u)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Username == out[j].Username {
			return out[i].ID < out[j].ID
		}
		return out[i].Username < out[j].Username
	})
	return out
}
