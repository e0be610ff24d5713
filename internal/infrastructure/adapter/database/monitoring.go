package database

import (
	"time"

	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/metrics"
	"gorm.io/gorm"
)

const queryStartKey = "gift_tracker:query_start"

// MetricsCollector is a gorm plugin that records the duration and failures
// of every statement in the Prometheus registry
type MetricsCollector struct {
	timeProvider coreport.TimeProvider
}

var _ gorm.Plugin = (*MetricsCollector)(nil)

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(timeProvider coreport.TimeProvider) *MetricsCollector {
	return &MetricsCollector{timeProvider: timeProvider}
}

// Name implements gorm.Plugin
func (c *MetricsCollector) Name() string {
	return "gift_tracker:metrics"
}

// Initialize registers timing callbacks around each gorm processor
func (c *MetricsCollector) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		operation string
		before    func(name string, fn func(*gorm.DB)) error
		after     func(name string, fn func(*gorm.DB)) error
	}{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
	}

	for _, h := range hooks {
		if err := h.before("gift_tracker:before_"+h.operation, c.start); err != nil {
			return err
		}
		if err := h.after("gift_tracker:after_"+h.operation, c.observe(h.operation)); err != nil {
			return err
		}
	}
	return nil
}

func (c *MetricsCollector) start(db *gorm.DB) {
	db.InstanceSet(queryStartKey, c.timeProvider.Now())
}

func (c *MetricsCollector) observe(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		value, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		start, ok := value.(time.Time)
		if !ok {
			return
		}

		table := db.Statement.Table
		metrics.DBQueryDuration.WithLabelValues(operation, table).Observe(c.timeProvider.Since(start).Std().Seconds())

		if db.Error != nil && db.Error != gorm.ErrRecordNotFound {
			metrics.DBErrors.WithLabelValues(operation, table).Inc()
		}
	}
}
