package user

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
)

// Authenticate verifies a username and password.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (u *UserUseCase) Authenticate(ctx context.Context, username, password string) (entity.Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entity.Anonymous, errs.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Info("Login failed", map[string]any{"username": username, "reason": "unknown user"})
			return entity.Anonymous, errs.ErrInvalidCredentials
		}
		return entity.Anonymous, err
	}

	if !u.hasher.Verify(user.PasswordHash, password) {
		u.logger.Info("Login failed", map[string]any{"username": username, "reason": "wrong password"})
		return entity.Anonymous, errs.ErrInvalidCredentials
	}

	u.logger.Debug("Login succeeded", map[string]any{"userId": user.ID})
	return user.Identity(), nil
}
