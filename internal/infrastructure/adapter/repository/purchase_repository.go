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

var _ persistence.PurchaseRepository = (*PurchaseRepository)(nil)

// PurchaseRepository implements PurchaseRepository interface using GORM
type PurchaseRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPurchaseRepository creates a new PurchaseRepository instance
func NewPurchaseRepository(db *gorm.DB, logger coreport.Logger) *PurchaseRepository {
	return &PurchaseRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func purchaseModelToEntity(m *model.Purchase) *entity.Purchase {
	purchase := &entity.Purchase{
		ID:            m.ID,
		EventID:       m.EventID,
		ContributorID: m.ContributorID,
		Recipient:     m.Recipient,
		Description:   m.Description,
		AmountCents:   m.Amount.Cents(),
		CreatedAt:     m.CreatedAt,
	}
	if m.Contributor != nil {
		purchase.ContributorUsername = m.Contributor.Username
	}
	return purchase
}

func (r *PurchaseRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorClassifier.mapError(err, domainErrors{
		notFound:  errs.ErrPurchaseNotFound,
		reference: errs.ErrEventNotFound,
	})

	logFields := map[string]any{"error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}

	if errs.IsNotFoundError(mapped) || errs.IsConflictError(mapped) {
		r.logger.Debug(fmt.Sprintf("Purchase %s rejected", operation), logFields)
	} else {
		r.logger.Error(fmt.Sprintf("Database error when %s purchase", operation), logFields)
	}
	return mapped
}

// newestFirst loads the contributor username and orders by creation time.
// The id breaks ties between purchases recorded in the same instant.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Preload("Contributor", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "username")
	}).Order("created_at DESC").Order("id DESC")
}

// Create saves a new purchase and sets its ID. A foreign key failure is
// reported as a missing event: the contributor is always the live caller.
func (r *PurchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	r.logger.Debug("Creating new purchase", map[string]any{
		"event_id":       purchase.EventID,
		"contributor_id": purchase.ContributorID,
		"amount":         purchase.Amount(),
	})

	purchaseModel := model.Purchase{
		EventID:       purchase.EventID,
		ContributorID: purchase.ContributorID,
		Recipient:     purchase.Recipient,
		Description:   purchase.Description,
		Amount:        model.Money(purchase.AmountCents),
		CreatedAt:     purchase.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&purchaseModel).Error; err != nil {
		return r.handleDatabaseError("creating", err, map[string]any{
			"event_id":       purchase.EventID,
			"contributor_id": purchase.ContributorID,
		})
	}

	purchase.ID = purchaseModel.ID
	return nil
}

// GetByID retrieves a purchase by ID
func (r *PurchaseRepository) GetByID(ctx context.Context, id uint64) (*entity.Purchase, error) {
	var purchaseModel model.Purchase
	err := r.db.WithContext(ctx).
		Preload("Contributor", func(tx *gorm.DB) *gorm.DB { return tx.Select("id", "username") }).
		First(&purchaseModel, id).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting", err, map[string]any{"purchase_id": id})
	}
	return purchaseModelToEntity(&purchaseModel), nil
}

// Delete removes exactly one purchase
func (r *PurchaseRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Purchase{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting", result.Error, map[string]any{"purchase_id": id})
	}
	if result.RowsAffected == 0 {
		return errs.ErrPurchaseNotFound
	}

	r.logger.Debug("Purchase deleted", map[string]any{"purchase_id": id})
	return nil
}

// ListByEvent returns every purchase of an event
func (r *PurchaseRepository) ListByEvent(ctx context.Context, eventID uint64) ([]*entity.Purchase, error) {
	return r.list(newestFirst(r.db.WithContext(ctx)).Where("event_id = ?", eventID))
}

// ListByEventAndContributor returns the purchases one user made for an event
func (r *PurchaseRepository) ListByEventAndContributor(ctx context.Context, eventID, contributorID uint64) ([]*entity.Purchase, error) {
	return r.list(newestFirst(r.db.WithContext(ctx)).
		Where("event_id = ? AND contributor_id = ?", eventID, contributorID))
}

// ListAll returns every purchase across all events
func (r *PurchaseRepository) ListAll(ctx context.Context) ([]*entity.Purchase, error) {
	return r.list(newestFirst(r.db.WithContext(ctx)))
}

func (r *PurchaseRepository) list(query *gorm.DB) ([]*entity.Purchase, error) {
	var purchaseModels []model.Purchase
	if err := query.Find(&purchaseModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing", err, nil)
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for i := range purchaseModels {
		purchases = append(purchases, purchaseModelToEntity(&purchaseModels[i]))
	}
	return purchases, nil
}
