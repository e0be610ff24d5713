package usecase

import (
	"context"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
)

// AddPurchaseInput carries the caller-supplied purchase fields
type AddPurchaseInput struct {
	EventID     uint64
	Description string
	Amount      string // decimal with at most 2 fractional digits
	Recipient   string // optional, defaults to the contributor's username
}

// PurchaseUseCase defines methods for recording contributions
type PurchaseUseCase interface {
	// AddPurchase records a purchase by actor against an event
	AddPurchase(ctx context.Context, actor entity.Identity, input AddPurchaseInput) (*entity.Purchase, error)

	// ListOwnPurchases returns actor's purchases for an event, newest first
	ListOwnPurchases(ctx context.Context, actor entity.Identity, eventID uint64) ([]*entity.Purchase, error)

	// DeletePurchase deletes a purchase; only its contributor may do so
	DeletePurchase(ctx context.Context, actor entity.Identity, purchaseID uint64) error
}
