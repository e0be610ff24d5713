package usecase

import (
	"context"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
)

// SettlementUseCase defines methods for computing fair-split reports
type SettlementUseCase interface {
	// GlobalSettlement settles purchases across all events (administrator only)
	GlobalSettlement(ctx context.Context, actor entity.Identity) (*entity.SettlementReport, error)

	// EventSettlement settles one event, leaving its owner out of the pool
	EventSettlement(ctx context.Context, actor entity.Identity, eventID uint64) (*entity.SettlementReport, error)
}
