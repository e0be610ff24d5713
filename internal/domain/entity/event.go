package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
)

// MaxEventNameLength matches the events.name column width
const MaxEventNameLength = 100

// Event is a named collection of purchases, optionally owned by a user
type Event struct {
	ID            uint64
	Name          string
	OwnerID       *uint64 // nil when the event has no owner or the owner was deleted
	OwnerUsername string  // populated on reads when the owner is loaded
	CreatedAt     time.Time
}

// NewEvent creates an event with a trimmed, non-empty name
func NewEvent(name string, ownerID *uint64, timeProvider coreport.TimeProvider) (*Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValidationError("name", "is required")
	}
	if utf8.RuneCountInString(name) > MaxEventNameLength {
		return nil, errs.NewValidationError("name", "must be at most 100 characters")
	}
	if ownerID != nil && *ownerID == 0 {
		return nil, errs.WrapValidationError("owner_id", errs.ErrInvalidID)
	}

	return &Event{
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// IsOwnedBy reports whether userID owns the event
func (e *Event) IsOwnedBy(userID uint64) bool {
	return e.OwnerID != nil && *e.OwnerID == userID
}

// ContributorTotal is the amount spent on an event by one contributor
type ContributorTotal struct {
	UserID     uint64
	Username   string
	TotalCents int64
}

// EventDetail is the read model of a single event page
type EventDetail struct {
	Event             *Event
	Purchases         []*Purchase // newest first
	TotalCents        int64
	CallerTotalCents  int64
	ContributorTotals []ContributorTotal // ordered by username
}
