package dto

import (
	"time"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
)

// AddPurchaseRequest represents the API request for recording a purchase.
// Amount is a decimal string with at most two fractional digits.
type AddPurchaseRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Recipient   string `json:"recipient"`
}

// PurchaseResponse represents a recorded purchase
type PurchaseResponse struct {
	ID          uint64    `json:"id"`
	EventID     uint64    `json:"eventId"`
	Contributor string    `json:"contributor"`
	Recipient   string    `json:"recipient"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewPurchaseResponse converts a purchase entity
func NewPurchaseResponse(p *entity.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:          p.ID,
		EventID:     p.EventID,
		Contributor: p.ContributorUsername,
		Recipient:   p.Recipient,
		Description: p.Description,
		Amount:      p.Amount(),
		CreatedAt:   p.CreatedAt,
	}
}

// NewPurchaseResponses converts a list of purchases
func NewPurchaseResponses(purchases []*entity.Purchase) []PurchaseResponse {
	out := make([]PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, NewPurchaseResponse(p))
	}
	return out
}
