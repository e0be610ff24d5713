package event

import (
	"context"
	"sort"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/policy"
	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/usecase"
)

// EventUseCase handles event management and the event page read model
type EventUseCase struct {
	uow          persistence.UnitOfWork
	eventRepo    persistence.EventRepository
	purchaseRepo persistence.PurchaseRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.EventUseCase = (*EventUseCase)(nil)

// NewEventUseCase creates a new EventUseCase
func NewEventUseCase(
	uow persistence.UnitOfWork,
	eventRepo persistence.EventRepository,
	purchaseRepo persistence.PurchaseRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *EventUseCase {
	return &EventUseCase{
		uow:          uow,
		eventRepo:    eventRepo,
		purchaseRepo: purchaseRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateEvent creates an event with a unique trimmed name and an optional owner
func (e *EventUseCase) CreateEvent(ctx context.Context, actor entity.Identity, name string, ownerID *uint64) (*entity.Event, error) {
	if err := policy.Authorize(actor, policy.OpCreateEvent); err != nil {
		e.logDenied(actor, policy.OpCreateEvent, err)
		return nil, err
	}

	event, err := entity.NewEvent(name, ownerID, e.timeProvider)
	if err != nil {
		return nil, err
	}

	err = persistence.WithinTransaction(ctx, e.uow, func(txCtx context.Context) error {
		if event.OwnerID != nil {
			owner, err := e.uow.GetUserRepository(txCtx).GetByID(txCtx, *event.OwnerID)
			if err != nil {
				return err
			}
			event.OwnerUsername = owner.Username
		}
		return e.uow.GetEventRepository(txCtx).Create(txCtx, event)
	})
	if err != nil {
		e.logger.Warn("Failed to create event", map[string]any{
			"name":  event.Name,
			"actor": actor.String(),
			"error": err.Error(),
		})
		return nil, err
	}

	e.logger.Info("Event created", map[string]any{
		"eventId": event.ID,
		"name":    event.Name,
		"actor":   actor.String(),
	})
	return event, nil
}

// DeleteEvent deletes an event; its purchases go with it in the same transaction
func (e *EventUseCase) DeleteEvent(ctx context.Context, actor entity.Identity, eventID uint64) error {
	if err := policy.Authorize(actor, policy.OpDeleteEvent); err != nil {
		e.logDenied(actor, policy.OpDeleteEvent, err)
		return err
	}

	if eventID == 0 {
		return errs.WrapValidationError("event_id", errs.ErrInvalidID)
	}

	err := persistence.WithinTransaction(ctx, e.uow, func(txCtx context.Context) error {
		return e.uow.GetEventRepository(txCtx).Delete(txCtx, eventID)
	})
	if err != nil {
		e.logger.Warn("Failed to delete event", map[string]any{
			"eventId": eventID,
			"actor":   actor.String(),
			"error":   err.Error(),
		})
		return err
	}

	e.logger.Info("Event deleted", map[string]any{
		"eventId": eventID,
		"actor":   actor.String(),
	})
	return nil
}

// ListEvents returns events ordered by name. A member's own events are hidden
// from them so that nobody sees the purchases made for their own gift.
func (e *EventUseCase) ListEvents(ctx context.Context, actor entity.Identity) ([]*entity.Event, error) {
	if err := policy.Authorize(actor, policy.OpListEvents); err != nil {
		return nil, err
	}

	if actor.IsAdmin() {
		return e.eventRepo.List(ctx)
	}
	return e.eventRepo.ListNotOwnedBy(ctx, actor.UserID)
}

// GetEventDetail returns an event with every purchase and its spending totals
func (e *EventUseCase) GetEventDetail(ctx context.Context, actor entity.Identity, eventID uint64) (*entity.EventDetail, error) {
	if err := policy.Authorize(actor, policy.OpViewEvent); err != nil {
		return nil, err
	}

	if eventID == 0 {
		return nil, errs.WrapValidationError("event_id", errs.ErrInvalidID)
	}

	event, err := e.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	purchases, err := e.purchaseRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return buildDetail(event, purchases, actor.UserID), nil
}

func buildDetail(event *entity.Event, purchases []*entity.Purchase, callerID uint64) *entity.EventDetail {
	detail := &entity.EventDetail{
		Event:     event,
		Purchases: purchases,
	}

	byContributor := make(map[uint64]*entity.ContributorTotal)
	for _, p := range purchases {
		detail.TotalCents += p.AmountCents
		if p.ContributorID == callerID {
			detail.CallerTotalCents += p.AmountCents
		}

		ct, ok := byContributor[p.ContributorID]
		if !ok {
			ct = &entity.ContributorTotal{UserID: p.ContributorID, Username: p.ContributorUsername}
			byContributor[p.ContributorID] = ct
		}
		ct.TotalCents += p.AmountCents
	}

	detail.ContributorTotals = make([]entity.ContributorTotal, 0, len(byContributor))
	for _, ct := range byContributor {
		detail.ContributorTotals = append(detail.ContributorTotals, *ct)
	}
	sort.Slice(detail.ContributorTotals, func(i, j int) bool {
		a, b := detail.ContributorTotals[i], detail.ContributorTotals[j]
		if a.Username == b.Username {
			return a.UserID < b.UserID
		}
		return a.Username < b.Username
	})

	return detail
}

func (e *EventUseCase) logDenied(actor entity.Identity, op policy.Operation, err error) {
	e.logger.Warn("Operation denied", map[string]any{
		"operation": string(op),
		"actor":     actor.String(),
		"error":     err.Error(),
	})
}
