package settlement

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/policy"
	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/usecase"
	engine "github.com/amirhossein-jamali/gift-tracker/internal/domain/settlement"
)

// SettlementUseCase loads current state and runs the settlement engine on it
type SettlementUseCase struct {
	userRepo     persistence.UserRepository
	eventRepo    persistence.EventRepository
	purchaseRepo persistence.PurchaseRepository
	logger       coreport.Logger
}

var _ usecase.SettlementUseCase = (*SettlementUseCase)(nil)

// NewSettlementUseCase creates a new SettlementUseCase
func NewSettlementUseCase(
	userRepo persistence.UserRepository,
	eventRepo persistence.EventRepository,
	purchaseRepo persistence.PurchaseRepository,
	logger coreport.Logger,
) *SettlementUseCase {
	return &SettlementUseCase{
		userRepo:     userRepo,
		eventRepo:    eventRepo,
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

// GlobalSettlement settles every purchase across all events
func (s *SettlementUseCase) GlobalSettlement(ctx context.Context, actor entity.Identity) (*entity.SettlementReport, error) {
	if err := policy.Authorize(actor, policy.OpViewGlobalSettlement); err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	purchases, err := s.purchaseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return s.compute(users, purchases, entity.GlobalScope())
}

// EventSettlement settles a single event. The event owner does not take part.
func (s *SettlementUseCase) EventSettlement(ctx context.Context, actor entity.Identity, eventID uint64) (*entity.SettlementReport, error) {
	if err := policy.Authorize(actor, policy.OpViewEventSettlement); err != nil {
		return nil, err
	}

	if eventID == 0 {
		return nil, errs.WrapValidationError("event_id", errs.ErrInvalidID)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	purchases, err := s.purchaseRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return s.compute(users, purchases, entity.EventScope(event))
}

func (s *SettlementUseCase) compute(users []*entity.User, purchases []*entity.Purchase, scope entity.SettlementScope) (*entity.SettlementReport, error) {
	fields := map[string]any{"global": scope.IsGlobal()}
	if scope.EventID != nil {
		fields["eventId"] = *scope.EventID
	}

	report, err := engine.Compute(users, purchases, scope)
	if err != nil {
		if errors.Is(err, errs.ErrNoParticipants) {
			s.logger.Info("Settlement has no participants", fields)
		}
		return nil, err
	}

	fields["participants"] = report.ParticipantCount
	fields["total"] = report.Total()
	fields["fairShare"] = report.FairShare()
	s.logger.Debug("Settlement computed", fields)

	return report, nil
}
