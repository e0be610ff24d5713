// Package dbtest opens migrated in-memory SQLite databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/time"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var counter atomic.Uint64

// Open returns a fresh migrated database. Every call gets its own
// in-memory database, closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:gifttracker%d?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", counter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get test database connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	mgr := migration.NewMigrationManager(db, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
	if err := mgr.MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// CreateUser inserts a user row directly
func CreateUser(t testing.TB, db *gorm.DB, username string, role string) *model.User {
	t.Helper()

	user := &model.User{
		Username:     username,
		PasswordHash: "hash",
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// CreateEvent inserts an event row directly. ownerID may be nil.
func CreateEvent(t testing.TB, db *gorm.DB, name string, ownerID *uint64) *model.Event {
	t.Helper()

	event := &model.Event{
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.Omit("Owner").Create(event).Error; err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return event
}

// Count returns the number of rows in table
func Count(t testing.TB, db *gorm.DB, table string) int64 {
	t.Helper()

	var n int64
	if err := db.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
