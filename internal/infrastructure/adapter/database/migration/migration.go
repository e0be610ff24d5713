package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// step is one schema version. Steps run in order inside a transaction each,
// and only the ones newer than the recorded version are applied.
type step struct {
	version string
	details string
	run     func(tx *gorm.DB) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
	steps            []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
	m.steps = []step{
		{version: "1.0.0", details: "users, events and purchases", run: m.createBaseSchema},
		{version: "1.1.0", details: "purchase listing indexes", run: m.createListingIndexes},
	}
	return m
}

// CurrentSchemaVersion is the version MigrateAll brings the database to
func (m *MigrationManager) CurrentSchemaVersion() string {
	return m.steps[len(m.steps)-1].version
}

// MigrateAll performs all pending migrations
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	target := m.CurrentSchemaVersion()
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": target,
	})

	db := m.db.WithContext(ctx)
	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == target {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return m.advancedIndexMgr.Apply(ctx)
	}

	pending := m.pendingSteps(currentVersion)
	if pending == nil {
		return fmt.Errorf("unknown schema version %q recorded in database", currentVersion)
	}

	for _, s := range pending {
		m.logger.Info("Applying migration", map[string]any{
			"version": s.version,
			"details": s.details,
		})

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := s.run(tx); err != nil {
				return err
			}
			return m.setVersion(tx, s.version, s.details)
		})
		if err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version": s.version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s: %w", s.version, err)
		}
	}

	if err := m.advancedIndexMgr.Apply(ctx); err != nil {
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": target,
	})
	return nil
}

// pendingSteps returns the steps after currentVersion, or nil when the
// version is not one this binary knows
func (m *MigrationManager) pendingSteps(currentVersion string) []step {
	if currentVersion == "" {
		return m.steps
	}
	for i, s := range m.steps {
		if s.version == currentVersion {
			return m.steps[i+1:]
		}
	}
	return nil
}

// GetCurrentVersion gets the current migration version, or "" for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("id desc").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(tx *gorm.DB, version string, details string) error {
	return tx.Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}

// createBaseSchema creates the tables with their foreign keys.
// Order matters: purchases reference both users and events.
func (m *MigrationManager) createBaseSchema(tx *gorm.DB) error {
	return tx.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.Purchase{},
	)
}

// createListingIndexes adds the index backing the newest-first event listing
func (m *MigrationManager) createListingIndexes(tx *gorm.DB) error {
	return tx.Exec(
		"CREATE INDEX IF NOT EXISTS idx_purchases_event_created_at ON purchases (event_id, created_at DESC)",
	).Error
}
