package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
)

// MaxRecipientLength matches the purchases.recipient column width
const MaxRecipientLength = 50

// Purchase is a contribution recorded by a user against an event
type Purchase struct {
	ID                  uint64
	EventID             uint64
	ContributorID       uint64
	ContributorUsername string // populated on reads
	Recipient           string
	Description         string
	AmountCents         int64
	CreatedAt           time.Time
}

// NewPurchase validates the purchase fields and converts the amount to cents.
// An empty recipient defaults to the contributor's username.
func NewPurchase(eventID uint64, contributor Identity, description, amount, recipient string, timeProvider coreport.TimeProvider) (*Purchase, error) {
	if eventID == 0 {
		return nil, errs.WrapValidationError("event_id", errs.ErrInvalidID)
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errs.NewValidationError("description", "is required")
	}

	amountCents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, errs.WrapValidationError("amount", err)
	}

	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		recipient = contributor.Username
	}
	if utf8.RuneCountInString(recipient) > MaxRecipientLength {
		return nil, errs.NewValidationError("recipient", "must be at most 50 characters")
	}

	return &Purchase{
		EventID:             eventID,
		ContributorID:       contributor.UserID,
		ContributorUsername: contributor.Username,
		Recipient:           recipient,
		Description:         description,
		AmountCents:         amountCents,
		CreatedAt:           timeProvider.Now(),
	}, nil
}

// Amount returns the amount as a string with 2 decimal places
func (p *Purchase) Amount() string {
	return AmountInCentsToString(p.AmountCents)
}

// IsOwnedBy reports whether userID recorded the purchase
func (p *Purchase) IsOwnedBy(userID uint64) bool {
	return p.ContributorID == userID
}
