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
	"gorm.io/gorm/clause"
)

var _ persistence.EventRepository = (*EventRepository)(nil)

// EventRepository implements EventRepository interface using GORM
type EventRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewEventRepository creates a new EventRepository instance
func NewEventRepository(db *gorm.DB, logger coreport.Logger) *EventRepository {
	return &EventRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func eventModelToEntity(m *model.Event) *entity.Event {
	event := &entity.Event{
		ID:        m.ID,
		Name:      m.Name,
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt,
	}
	if m.Owner != nil {
		event.OwnerUsername = m.Owner.Username
	}
	return event
}

func (r *EventRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorClassifier.mapError(err, domainErrors{
		notFound:  errs.ErrEventNotFound,
		duplicate: errs.ErrDuplicateEvent,
		reference: errs.ErrUserNotFound,
	})

	logFields := map[string]any{"error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}

	if errs.IsNotFoundError(mapped) || errs.IsConflictError(mapped) {
		r.logger.Debug(fmt.Sprintf("Event %s rejected", operation), logFields)
	} else {
		r.logger.Error(fmt.Sprintf("Database error when %s event", operation), logFields)
	}
	return mapped
}

// withOwner loads only the owner columns the entity needs
func withOwner(db *gorm.DB) *gorm.DB {
	return db.Preload("Owner", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "username")
	})
}

// Create saves a new event and sets its ID
func (r *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	r.logger.Debug("Creating new event", map[string]any{
		"name":     event.Name,
		"owner_id": event.OwnerID,
	})

	eventModel := model.Event{
		Name:      event.Name,
		OwnerID:   event.OwnerID,
		CreatedAt: event.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&eventModel).Error; err != nil {
		return r.handleDatabaseError("creating", err, map[string]any{"name": event.Name})
	}

	event.ID = eventModel.ID
	return nil
}

// GetByID retrieves an event with its owner's username
func (r *EventRepository) GetByID(ctx context.Context, id uint64) (*entity.Event, error) {
	var eventModel model.Event
	if err := withOwner(r.db.WithContext(ctx)).First(&eventModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting", err, map[string]any{"event_id": id})
	}
	return eventModelToEntity(&eventModel), nil
}

// List returns every event ordered by name
func (r *EventRepository) List(ctx context.Context) ([]*entity.Event, error) {
	return r.list(r.db.WithContext(ctx))
}

// ListNotOwnedBy returns the events ordered by name, leaving out the
// ones owned by userID. Events without an owner are included.
func (r *EventRepository) ListNotOwnedBy(ctx context.Context, userID uint64) ([]*entity.Event, error) {
	return r.list(r.db.WithContext(ctx).Where("owner_id IS NULL OR owner_id <> ?", userID))
}

func (r *EventRepository) list(query *gorm.DB) ([]*entity.Event, error) {
	var eventModels []model.Event
	if err := withOwner(query).Order("name").Find(&eventModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing", err, nil)
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for i := range eventModels {
		events = append(events, eventModelToEntity(&eventModels[i]))
	}
	return events, nil
}

// Delete removes an event. Its purchases go with it through the foreign key.
func (r *EventRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Event{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting", result.Error, map[string]any{"event_id": id})
	}
	if result.RowsAffected == 0 {
		return errs.ErrEventNotFound
	}

	r.logger.Debug("Event deleted", map[string]any{"event_id": id})
	return nil
}
