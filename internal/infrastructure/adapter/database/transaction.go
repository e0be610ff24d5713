package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

var (
	_ persistence.UnitOfWork = (*UnitOfWork)(nil)
	_ persistence.Retrier    = (*UnitOfWork)(nil)
)

// UnitOfWork implements the unit of work pattern for database transactions.
// On PostgreSQL transactions run SERIALIZABLE; SQLite transactions are
// serializable by construction.
type UnitOfWork struct {
	db          *gorm.DB
	logger      coreport.Logger
	retryConfig RetryConfig
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, retryConfig RetryConfig) *UnitOfWork {
	return &UnitOfWork{
		db:          db,
		logger:      logger,
		retryConfig: retryConfig,
	}
}

// Begin starts a new database transaction and stores it in the returned context
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return ctx, errors.New("transaction already in progress")
	}

	var opts []*sql.TxOptions
	if u.db.Dialector.Name() == DriverPostgres {
		opts = append(opts, &sql.TxOptions{Isolation: sql.LevelSerializable})
	}

	tx := u.db.WithContext(ctx).Begin(opts...)
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	u.logger.Debug("Began database transaction", nil)
	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the transaction stored in ctx
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return errors.New("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.logger.Debug("Committed database transaction", nil)
	return nil
}

// Rollback rolls back the transaction stored in ctx. Rolling back a
// transaction that already ended is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return errors.New("no transaction found in context")
	}

	err := tx.Rollback().Error
	if errors.Is(err, sql.ErrTxDone) {
		u.logger.Warn("Transaction has already been committed or rolled back", nil)
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.logger.Debug("Rolled back database transaction", nil)
	return nil
}

// Retry replays attempt while it fails with a serialization conflict
func (u *UnitOfWork) Retry(ctx context.Context, attempt func() error) error {
	return RetryOnTransientError(ctx, u.retryConfig, attempt, u.logger)
}

// GetUserRepository returns a user repository bound to the transaction in ctx
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.logger)
}

// GetEventRepository returns an event repository bound to the transaction in ctx
func (u *UnitOfWork) GetEventRepository(ctx context.Context) persistence.EventRepository {
	return repository.NewEventRepository(u.getDbFromContext(ctx), u.logger)
}

// GetPurchaseRepository returns a purchase repository bound to the transaction in ctx
func (u *UnitOfWork) GetPurchaseRepository(ctx context.Context) persistence.PurchaseRepository {
	return repository.NewPurchaseRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext returns the transaction in ctx, or the pool when there is none
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
