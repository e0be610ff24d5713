package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/usecase"
)

// SeedAdministrator provisions the administrator account from configuration.
// It is idempotent and does nothing when no password is configured.
func SeedAdministrator(ctx context.Context, users usecase.UserUseCase, username, password string, logger coreport.Logger) error {
	if password == "" {
		logger.Info("No administrator password configured, skipping seed", nil)
		return nil
	}

	_, _, err := users.BootstrapAdmin(ctx, username, password)
	return err
}
