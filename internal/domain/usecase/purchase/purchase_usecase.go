package purchase

import (
	"context"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/policy"
	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/usecase"
)

// PurchaseUseCase records, lists and deletes contributions
type PurchaseUseCase struct {
	uow          persistence.UnitOfWork
	eventRepo    persistence.EventRepository
	purchaseRepo persistence.PurchaseRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.PurchaseUseCase = (*PurchaseUseCase)(nil)

// NewPurchaseUseCase creates a new PurchaseUseCase
func NewPurchaseUseCase(
	uow persistence.UnitOfWork,
	eventRepo persistence.EventRepository,
	purchaseRepo persistence.PurchaseRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		uow:          uow,
		eventRepo:    eventRepo,
		purchaseRepo: purchaseRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AddPurchase records a purchase by actor against an existing event.
// Nothing is written when validation fails.
func (p *PurchaseUseCase) AddPurchase(ctx context.Context, actor entity.Identity, input usecase.AddPurchaseInput) (*entity.Purchase, error) {
	if err := policy.Authorize(actor, policy.OpAddPurchase); err != nil {
		return nil, err
	}

	purchase, err := entity.NewPurchase(input.EventID, actor, input.Description, input.Amount, input.Recipient, p.timeProvider)
	if err != nil {
		p.logger.Info("Purchase rejected", map[string]any{
			"eventId": input.EventID,
			"userId":  actor.UserID,
			"amount":  input.Amount,
			"error":   err.Error(),
		})
		return nil, err
	}

	err = persistence.WithinTransaction(ctx, p.uow, func(txCtx context.Context) error {
		if _, err := p.uow.GetEventRepository(txCtx).GetByID(txCtx, purchase.EventID); err != nil {
			return err
		}
		return p.uow.GetPurchaseRepository(txCtx).Create(txCtx, purchase)
	})
	if err != nil {
		p.logger.Error("Failed to add purchase", map[string]any{
			"eventId": purchase.EventID,
			"userId":  actor.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	p.logger.Info("Purchase added", map[string]any{
		"purchaseId": purchase.ID,
		"eventId":    purchase.EventID,
		"userId":     actor.UserID,
		"amount":     purchase.Amount(),
	})

	return purchase, nil
}

// ListOwnPurchases returns actor's purchases for an event, newest first
func (p *PurchaseUseCase) ListOwnPurchases(ctx context.Context, actor entity.Identity, eventID uint64) ([]*entity.Purchase, error) {
	if err := policy.Authorize(actor, policy.OpListOwnPurchases); err != nil {
		return nil, err
	}

	if eventID == 0 {
		return nil, errs.WrapValidationError("event_id", errs.ErrInvalidID)
	}

	if _, err := p.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	return p.purchaseRepo.ListByEventAndContributor(ctx, eventID, actor.UserID)
}

// DeletePurchase deletes exactly one purchase. Only its contributor may delete it.
func (p *PurchaseUseCase) DeletePurchase(ctx context.Context, actor entity.Identity, purchaseID uint64) error {
	if err := policy.Authorize(actor, policy.OpDeletePurchase); err != nil {
		return err
	}

	if purchaseID == 0 {
		return errs.WrapValidationError("purchase_id", errs.ErrInvalidID)
	}

	err := persistence.WithinTransaction(ctx, p.uow, func(txCtx context.Context) error {
		repo := p.uow.GetPurchaseRepository(txCtx)

		purchase, err := repo.GetByID(txCtx, purchaseID)
		if err != nil {
			return err
		}

		if err := policy.AuthorizeOwner(actor, policy.OpDeletePurchase, purchase.ContributorID); err != nil {
			return err
		}

		return repo.Delete(txCtx, purchaseID)
	})
	if err != nil {
		p.logger.Warn("Failed to delete purchase", map[string]any{
			"purchaseId": purchaseID,
			"userId":     actor.UserID,
			"error":      err.Error(),
		})
		return err
	}

	p.logger.Info("Purchase deleted", map[string]any{
		"purchaseId": purchaseID,
		"userId":     actor.UserID,
	})
	return nil
}
