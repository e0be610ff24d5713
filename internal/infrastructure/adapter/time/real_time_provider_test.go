package time

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider(t *testing.T) {
	p := NewRealTimeProvider()

	now := p.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%1000)
	assert.GreaterOrEqual(t, p.Since(now.Add(-time.Second)).Std(), time.Second)

	ctx, cancel := p.WithTimeout(context.Background(), 10*core.Millisecond)
	defer cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}
