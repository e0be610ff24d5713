package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/database/dbtest"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC)

func newTestUnitOfWork(t *testing.T) (*UnitOfWork, func(table string) int64) {
	db := dbtest.Open(t)
	uow := NewUnitOfWork(db, logger.NewNoopLogger(), fastRetry())
	return uow, func(table string) int64 { return dbtest.Count(t, db, table) }
}

func newEvent(name string) *entity.Event {
	return &entity.Event{Name: name, CreatedAt: fixedNow}
}

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit persists", func(t *testing.T) {
		uow, count := newTestUnitOfWork(t)

		err := persistence.WithinTransaction(ctx, uow, func(txCtx context.Context) error {
			return uow.GetEventRepository(txCtx).Create(txCtx, newEvent("Christmas"))
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), count("events"))
	})

	t.Run("Error rolls back every write", func(t *testing.T) {
		uow, count := newTestUnitOfWork(t)

		err := persistence.WithinTransaction(ctx, uow, func(txCtx context.Context) error {
			if err := uow.GetEventRepository(txCtx).Create(txCtx, newEvent("Christmas")); err != nil {
				return err
			}
			return uow.GetEventRepository(txCtx).Create(txCtx, newEvent("Christmas"))
		})

		assert.ErrorIs(t, err, errs.ErrDuplicateEvent)
		assert.Zero(t, count("events"))
	})

	t.Run("Panic rolls back and propagates", func(t *testing.T) {
		uow, count := newTestUnitOfWork(t)

		assert.Panics(t, func() {
			_ = persistence.WithinTransaction(ctx, uow, func(txCtx context.Context) error {
				_ = uow.GetEventRepository(txCtx).Create(txCtx, newEvent("Christmas"))
				panic("boom")
			})
		})
		assert.Zero(t, count("events"))
	})
}

func TestUnitOfWork_Begin(t *testing.T) {
	uow, _ := newTestUnitOfWork(t)

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)

	_, err = uow.Begin(txCtx)
	assert.Error(t, err, "nested transactions are rejected")

	require.NoError(t, uow.Commit(txCtx))
	assert.NoError(t, uow.Rollback(txCtx), "rolling back a finished transaction is a no-op")

	assert.Error(t, uow.Commit(context.Background()))
	assert.Error(t, uow.Rollback(context.Background()))
}

func TestUnitOfWork_RetriesTransientConflicts(t *testing.T) {
	uow, count := newTestUnitOfWork(t)
	attempts := 0

	err := persistence.WithinTransaction(context.Background(), uow, func(txCtx context.Context) error {
		attempts++
		if err := uow.GetEventRepository(txCtx).Create(txCtx, newEvent("Christmas")); err != nil {
			return err
		}
		if attempts < 2 {
			return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, repository.ErrTransientConflict)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, int64(1), count("events"), "the failed attempt left nothing behind")
}
