package persistence

import (
	"context"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
)

// EventRepository defines essential methods to interact with event data
type EventRepository interface {
	// Create saves a new event and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateEvent: If an event with the same name exists
	// - ErrUserNotFound: If the owner does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, event *entity.Event) error

	// GetByID retrieves an event by ID with its owner's username
	//
	// Possible errors:
	// - ErrEventNotFound: If event with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Event, error)

	// List returns every event ordered by name
	List(ctx context.Context) ([]*entity.Event, error)

	// ListNotOwnedBy returns the events ordered by name, leaving out
	// the ones owned by userID
	ListNotOwnedBy(ctx context.Context, userID uint64) ([]*entity.Event, error)

	// Delete removes an event; the store cascades to its purchases
	//
	// Possible errors:
	// - ErrEventNotFound: If event doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error
}
