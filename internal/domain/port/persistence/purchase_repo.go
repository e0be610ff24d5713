package persistence

import (
	"context"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
)

// PurchaseRepository defines essential methods to interact with purchase data.
// List methods populate ContributorUsername and return purchases newest first.
type PurchaseRepository interface {
	// Create saves a new purchase and sets its ID
	//
	// Possible errors:
	// - ErrEventNotFound: If the referenced event doesn't exist
	// - ErrConstraintViolation: If another reference is broken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, purchase *entity.Purchase) error

	// GetByID retrieves a purchase by ID
	//
	// Possible errors:
	// - ErrPurchaseNotFound: If purchase with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Purchase, error)

	// Delete removes exactly one purchase
	//
	// Possible errors:
	// - ErrPurchaseNotFound: If purchase doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error

	// ListByEvent returns every purchase of an event
	ListByEvent(ctx context.Context, eventID uint64) ([]*entity.Purchase, error)

	// ListByEventAndContributor returns the purchases one user made for an event
	ListByEventAndContributor(ctx context.Context, eventID, contributorID uint64) ([]*entity.Purchase, error)

	// ListAll returns every purchase across all events
	ListAll(ctx context.Context) ([]*entity.Purchase, error)
}
