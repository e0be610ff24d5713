package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

var _ persistence.UserRepository = (*UserRepository)(nil)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		CreatedAt:    m.CreatedAt,
	}
}

// handleDatabaseError logs and maps a database error for the users table
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorClassifier.mapError(err, domainErrors{
		notFound:  errs.ErrUserNotFound,
		duplicate: errs.ErrDuplicateUsername,
	})

	logFields := map[string]any{"error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}

	if errs.IsNotFoundError(mapped) || errs.IsConflictError(mapped) {
		r.logger.Debug(fmt.Sprintf("User %s rejected", operation), logFields)
	} else {
		r.logger.Error(fmt.Sprintf("Database error when %s user", operation), logFields)
	}
	return mapped
}

// Create creates a new user and sets its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"username": user.Username,
		"role":     string(user.Role),
	})

	userModel := model.User{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("creating", err, map[string]any{"username": user.Username})
	}

	user.ID = userModel.ID
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting", err, map[string]any{"user_id": id})
	}
	return userModelToEntity(&userModel), nil
}

// GetByUsername retrieves a user by its unique username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting", err, map[string]any{"username": username})
	}
	return userModelToEntity(&userModel), nil
}

// List returns every user ordered by username
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	if err := r.db.WithContext(ctx).Order("username").Find(&userModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing", err, nil)
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userModelToEntity(&userModels[i]))
	}
	return users, nil
}

// ExistsByRole reports whether any user holds role
func (r *UserRepository) ExistsByRole(ctx context.Context, role entity.Role) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("role = ?", string(role)).Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("counting", err, map[string]any{"role": string(role)})
	}
	return count > 0, nil
}

// Delete removes a user. Foreign keys remove the user's purchases and
// clear ownership of the user's events.
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting", result.Error, map[string]any{"user_id": id})
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	r.logger.Debug("User deleted", map[string]any{"user_id": id})
	return nil
}
