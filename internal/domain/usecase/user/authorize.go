package user

import (
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/policy"
)

func (u *UserUseCase) authorize(actor entity.Identity, op policy.Operation) error {
	if err := policy.Authorize(actor, op); err != nil {
		u.logger.Warn("Operation denied", map[string]any{
			"operation": string(op),
			"actor":     actor.String(),
			"error":     err.Error(),
		})
		return err
	}
	return nil
}
