package usecase

import (
	"context"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
)

// EventUseCase defines methods for event management
type EventUseCase interface {
	// CreateEvent creates a uniquely named event with an optional owner (administrator only)
	CreateEvent(ctx context.Context, actor entity.Identity, name string, ownerID *uint64) (*entity.Event, error)

	// DeleteEvent deletes an event together with its purchases (administrator only)
	DeleteEvent(ctx context.Context, actor entity.Identity, eventID uint64) error

	// ListEvents returns events ordered by name. Members do not see events they own;
	// the administrator sees all of them.
	ListEvents(ctx context.Context, actor entity.Identity) ([]*entity.Event, error)

	// GetEventDetail returns an event with its purchases and spending totals
	GetEventDetail(ctx context.Context, actor entity.Identity, eventID uint64) (*entity.EventDetail, error)
}
