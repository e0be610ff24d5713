package dto

import (
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
)

// ParticipantBalanceResponse is one row of a settlement report.
// A positive balance means the participant is owed money.
type ParticipantBalanceResponse struct {
	UserID      uint64 `json:"userId"`
	Username    string `json:"username"`
	Contributed string `json:"contributed"`
	FairShare   string `json:"fairShare"`
	Balance     string `json:"balance"`
}

// TransferResponse is a suggested payment
type TransferResponse struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// SettlementResponse represents a fair-split report
type SettlementResponse struct {
	EventID          *uint64                      `json:"eventId,omitempty"`
	EventName        string                       `json:"eventName,omitempty"`
	Total            string                       `json:"total"`
	FairShare        string                       `json:"fairShare"`
	ParticipantCount int                          `json:"participantCount"`
	Remainder        string                       `json:"remainder"`
	Participants     []ParticipantBalanceResponse `json:"participants"`
	Transfers        []TransferResponse           `json:"transfers"`
}

// NewSettlementResponse converts a settlement report
func NewSettlementResponse(r *entity.SettlementReport) SettlementResponse {
	participants := make([]ParticipantBalanceResponse, 0, len(r.Participants))
	for _, p := range r.Participants {
		participants = append(participants, ParticipantBalanceResponse{
			UserID:      p.UserID,
			Username:    p.Username,
			Contributed: entity.AmountInCentsToString(p.ContributedCents),
			FairShare:   entity.AmountInCentsToString(p.FairShareCents),
			Balance:     entity.AmountInCentsToString(p.BalanceCents),
		})
	}

	transfers := make([]TransferResponse, 0, len(r.Transfers))
	for _, t := range r.Transfers {
		transfers = append(transfers, TransferResponse{
			From:   t.FromUsername,
			To:     t.ToUsername,
			Amount: entity.AmountInCentsToString(t.AmountCents),
		})
	}

	return SettlementResponse{
		EventID:          r.Scope.EventID,
		EventName:        r.Scope.EventName,
		Total:            r.Total(),
		FairShare:        r.FairShare(),
		ParticipantCount: r.ParticipantCount,
		Remainder:        entity.AmountInCentsToString(r.RemainderCents),
		Participants:     participants,
		Transfers:        transfers,
	}
}
