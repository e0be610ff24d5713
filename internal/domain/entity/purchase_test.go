package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/gift-tracker/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchase(t *testing.T) {
	fixedTime := time.Date(2024, 12, 24, 18, 0, 0, 0, time.UTC)
	mockTime := coremocks.Fixed(t, fixedTime)
	alice := Identity{UserID: 3, Username: "alice", Role: RoleMember}

	t.Run("Recipient defaults to contributor", func(t *testing.T) {
		p, err := NewPurchase(1, alice, " Scarf ", "12.5", "", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), p.EventID)
		assert.Equal(t, uint64(3), p.ContributorID)
		assert.Equal(t, "alice", p.Recipient)
		assert.Equal(t, "Scarf", p.Description)
		assert.Equal(t, int64(1250), p.AmountCents)
		assert.Equal(t, "12.50", p.Amount())
		assert.Equal(t, fixedTime, p.CreatedAt)
		assert.True(t, p.IsOwnedBy(3))
		assert.False(t, p.IsOwnedBy(4))
	})

	t.Run("Explicit recipient", func(t *testing.T) {
		p, err := NewPurchase(1, alice, "Book", "8", "grandma", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "grandma", p.Recipient)
	})

	t.Run("Invalid amount is a validation error", func(t *testing.T) {
		_, err := NewPurchase(1, alice, "Book", "abc", "", mockTime)

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Negative amount", func(t *testing.T) {
		_, err := NewPurchase(1, alice, "Book", "-1", "", mockTime)

		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Missing description", func(t *testing.T) {
		_, err := NewPurchase(1, alice, "  ", "1", "", mockTime)

		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "description", vErr.Field)
	})

	t.Run("Zero event", func(t *testing.T) {
		_, err := NewPurchase(0, alice, "Book", "1", "", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidID)
	})

	t.Run("Long recipient", func(t *testing.T) {
		_, err := NewPurchase(1, alice, "Book", "1", strings.Repeat("r", MaxRecipientLength+1), mockTime)

		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestNewEvent(t *testing.T) {
	mockTime := coremocks.Fixed(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	t.Run("Trims name", func(t *testing.T) {
		owner := uint64(2)
		e, err := NewEvent("  Christmas  ", &owner, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Christmas", e.Name)
		assert.True(t, e.IsOwnedBy(2))
		assert.False(t, e.IsOwnedBy(3))
	})

	t.Run("No owner", func(t *testing.T) {
		e, err := NewEvent("Birthday", nil, mockTime)

		require.NoError(t, err)
		assert.Nil(t, e.OwnerID)
		assert.False(t, e.IsOwnedBy(0))
	})

	t.Run("Empty name", func(t *testing.T) {
		_, err := NewEvent("   ", nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Long name", func(t *testing.T) {
		_, err := NewEvent(strings.Repeat("n", MaxEventNameLength+1), nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Zero owner", func(t *testing.T) {
		zero := uint64(0)
		_, err := NewEvent("Party", &zero, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidID)
	})
}
