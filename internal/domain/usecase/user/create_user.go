package user

import (
	"context"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/policy"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/persistence"
)

// CreateUser creates a member account. Only the administrator may call it.
func (u *UserUseCase) CreateUser(ctx context.Context, actor entity.Identity, username, password string) (*entity.User, error) {
	if err := u.authorize(actor, policy.OpCreateUser); err != nil {
		return nil, err
	}

	user, err := u.newUser(username, password, entity.RoleMember)
	if err != nil {
		return nil, err
	}

	err = persistence.WithinTransaction(ctx, u.uow, func(txCtx context.Context) error {
		return u.uow.GetUserRepository(txCtx).Create(txCtx, user)
	})
	if err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"username": user.Username,
			"actor":    actor.String(),
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId":   user.ID,
		"username": user.Username,
		"actor":    actor.String(),
	})

	return user, nil
}

// BootstrapAdmin creates the administrator account when no account holds the admin role
func (u *UserUseCase) BootstrapAdmin(ctx context.Context, username, password string) (*entity.User, bool, error) {
	var admin *entity.User
	created := false

	err := persistence.WithinTransaction(ctx, u.uow, func(txCtx context.Context) error {
		admin, created = nil, false
		repo := u.uow.GetUserRepository(txCtx)

		exists, err := repo.ExistsByRole(txCtx, entity.RoleAdmin)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		admin, err = u.newUser(username, password, entity.RoleAdmin)
		if err != nil {
			return err
		}
		if err := repo.Create(txCtx, admin); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		u.logger.Error("Failed to bootstrap administrator", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, false, err
	}

	if !created {
		u.logger.Info("Administrator already exists", nil)
		return nil, false, nil
	}

	u.logger.Info("Administrator created", map[string]any{
		"userId":   admin.ID,
		"username": admin.Username,
	})
	return admin, true, nil
}

// newUser validates the input and hashes the password
func (u *UserUseCase) newUser(username, password string, role entity.Role) (*entity.User, error) {
	username, err := entity.NormalizeUsername(username)
	if err != nil {
		return nil, err
	}

	if password == "" {
		return nil, errs.NewValidationError("password", "is required")
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return entity.NewUser(username, hash, role, u.timeProvider)
}
