package usecase

import (
	"context"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
)

// UserUseCase defines methods for account management and login.
// Every operation that acts on behalf of a caller takes the caller's identity explicitly.
type UserUseCase interface {
	// CreateUser creates a member account (administrator only)
	CreateUser(ctx context.Context, actor entity.Identity, username, password string) (*entity.User, error)

	// DeleteUser deletes an account and its purchases (administrator only).
	// The administrator account itself can never be deleted.
	DeleteUser(ctx context.Context, actor entity.Identity, userID uint64) error

	// ListUsers returns every account ordered by username (administrator only)
	ListUsers(ctx context.Context, actor entity.Identity) ([]*entity.User, error)

	// Authenticate checks a username and password and returns the matching identity
	Authenticate(ctx context.Context, username, password string) (entity.Identity, error)

	// ResolveIdentity reloads the identity for an authenticated user id
	ResolveIdentity(ctx context.Context, userID uint64) (entity.Identity, error)

	// BootstrapAdmin creates the administrator account when none exists.
	// It reports whether an account was created.
	BootstrapAdmin(ctx context.Context, username, password string) (*entity.User, bool, error)
}
