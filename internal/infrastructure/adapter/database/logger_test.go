package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/reqctx"
	coremocks "github.com/amirhossein-jamali/gift-tracker/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType(`  select * from "users"`))
	assert.Equal(t, "INSERT", extractQueryType(`INSERT INTO "events" ("name") VALUES ($1)`))
	assert.Equal(t, "", extractQueryType(`PRAGMA foreign_keys`))
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "users", extractTableName(`SELECT * FROM "users" WHERE id = 1`))
	assert.Equal(t, "events", extractTableName(`INSERT INTO "events" ("name","owner_id") VALUES ($1,$2)`))
	assert.Equal(t, "purchases", extractTableName(`UPDATE purchases SET amount = 1`))
	assert.Equal(t, "", extractTableName(`BEGIN`))
}

func TestDatabaseLogger_Trace(t *testing.T) {
	begin := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	ctx := reqctx.WithRequestID(context.Background(), "req-1")
	sql := func() (string, int64) { return `SELECT * FROM "events"`, 2 }

	t.Run("ErrorIsLogged", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Since(begin).Return(0)
		log.EXPECT().Error("SQL Error", mock.MatchedBy(func(f map[string]any) bool {
			return f["error"] == "boom" && f["request_id"] == "req-1" && f["table"] == "events"
		})).Once()

		l := NewDatabaseLogger(log, tp, "info", time.Second)
		l.Trace(ctx, begin, sql, errors.New("boom"))
	})

	t.Run("RecordNotFoundIsNotAnError", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Since(begin).Return(0)
		log.EXPECT().Debug("SQL Query", mock.Anything).Once()

		l := NewDatabaseLogger(log, tp, "info", time.Second)
		l.Trace(ctx, begin, sql, gorm.ErrRecordNotFound)
	})

	t.Run("SlowQueryWarns", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Since(begin).Return(2_000_000_000)
		log.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		l := NewDatabaseLogger(log, tp, "warn", time.Second)
		l.Trace(ctx, begin, sql, nil)
	})

	t.Run("SilentSkipsEverything", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)

		l := NewDatabaseLogger(log, tp, "silent", time.Second)
		l.Trace(ctx, begin, sql, errors.New("boom"))
	})
}
