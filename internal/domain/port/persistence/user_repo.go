package persistence

import (
	"context"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// Create saves a new user and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateUsername: If the username is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by its unique username
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that username
	// - ErrDatabaseConnection: If database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// List returns every user ordered by username
	List(ctx context.Context) ([]*entity.User, error)

	// ExistsByRole reports whether any user holds role
	ExistsByRole(ctx context.Context, role entity.Role) (bool, error)

	// Delete removes a user; the store cascades to the user's purchases
	// and clears ownership of the user's events
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error
}
