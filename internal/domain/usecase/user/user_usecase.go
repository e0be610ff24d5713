package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/policy"
	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/security"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/usecase"
)

// UserUseCase handles account management and login
type UserUseCase struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	hasher       security.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		uow:          uow,
		userRepo:     userRepo,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListUsers returns every account ordered by username
func (u *UserUseCase) ListUsers(ctx context.Context, actor entity.Identity) ([]*entity.User, error) {
	if err := u.authorize(actor, policy.OpListUsers); err != nil {
		return nil, err
	}
	return u.userRepo.List(ctx)
}

// ResolveIdentity reloads the identity of an authenticated user.
// A user deleted after login no longer resolves.
func (u *UserUseCase) ResolveIdentity(ctx context.Context, userID uint64) (entity.Identity, error) {
	if userID == 0 {
		return entity.Anonymous, errs.ErrUnauthenticated
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return entity.Anonymous, errs.ErrUnauthenticated
		}
		return entity.Anonymous, err
	}

	return user.Identity(), nil
}
