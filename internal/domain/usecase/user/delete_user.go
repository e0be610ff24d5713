package user

import (
	"context"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/policy"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/persistence"
)

// DeleteUser deletes an account; the store removes the user's purchases with it.
// The administrator can never be deleted.
func (u *UserUseCase) DeleteUser(ctx context.Context, actor entity.Identity, userID uint64) error {
	if err := u.authorize(actor, policy.OpDeleteUser); err != nil {
		return err
	}

	if userID == 0 {
		return errs.WrapValidationError("user_id", errs.ErrInvalidID)
	}

	var username string
	err := persistence.WithinTransaction(ctx, u.uow, func(txCtx context.Context) error {
		repo := u.uow.GetUserRepository(txCtx)

		target, err := repo.GetByID(txCtx, userID)
		if err != nil {
			return err
		}
		if target.IsAdmin() {
			return errs.ErrAdministratorUndeletable
		}
		username = target.Username

		return repo.Delete(txCtx, userID)
	})
	if err != nil {
		u.logger.Warn("Failed to delete user", map[string]any{
			"userId": userID,
			"actor":  actor.String(),
			"error":  err.Error(),
		})
		return err
	}

	u.logger.Info("User deleted", map[string]any{
		"userId":   userID,
		"username": username,
		"actor":    actor.String(),
	})
	return nil
}
