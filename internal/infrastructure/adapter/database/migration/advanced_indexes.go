package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and storage
// settings. On other dialects it does nothing.
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// Apply creates the PostgreSQL indexes and applies the performance tweaks.
// Every statement is idempotent so Apply runs on each start-up.
func (m *AdvancedIndexManager) Apply(ctx context.Context) error {
	if m.db.Dialector.Name() != "postgres" {
		return nil
	}
	if err := m.CreateAdvancedIndexes(ctx); err != nil {
		return err
	}
	m.CreatePerformanceTweaks(ctx)
	return nil
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)
	db := m.db.WithContext(ctx)

	indexes := []struct {
		name string
		sql  string
	}{
		// Dashboard listing hides events owned by the caller
		{"idx_events_unowned", `
			CREATE INDEX IF NOT EXISTS idx_events_unowned
			ON events (name)
			WHERE owner_id IS NULL`},
		// Purchases are append-mostly, so created_at correlates with physical order
		{"idx_purchases_created_at_brin", `
			CREATE INDEX IF NOT EXISTS idx_purchases_created_at_brin
			ON purchases USING BRIN (created_at)
			WITH (pages_per_range = 32)`},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL planner settings. Failures are
// logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	db := m.db.WithContext(ctx)

	if err := db.Exec(`ALTER TABLE purchases ALTER COLUMN event_id SET STATISTICS 500`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for purchases.event_id", map[string]any{
			"error": err.Error(),
		})
	}
}
