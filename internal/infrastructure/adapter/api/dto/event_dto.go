package dto

import (
	"time"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
)

// CreateEventRequest represents the API request for creating an event
type CreateEventRequest struct {
	Name    string  `json:"name" binding:"required"`
	OwnerID *uint64 `json:"ownerId"`
}

// EventResponse represents an event in list and create responses
type EventResponse struct {
	ID            uint64    `json:"id"`
	Name          string    `json:"name"`
	OwnerID       *uint64   `json:"ownerId"`
	OwnerUsername string    `json:"ownerUsername,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ContributorTotalResponse is one contributor's spending on an event
type ContributorTotalResponse struct {
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
	Total    string `json:"total"`
}

// EventDetailResponse is the event page: purchases newest first plus totals
type EventDetailResponse struct {
	Event        EventResponse              `json:"event"`
	Purchases    []PurchaseResponse         `json:"purchases"`
	Total        string                     `json:"total"`
	CallerTotal  string                     `json:"callerTotal"`
	Contributors []ContributorTotalResponse `json:"contributors"`
}

// NewEventResponse converts an event entity
func NewEventResponse(e *entity.Event) EventResponse {
	return EventResponse{
		ID:            e.ID,
		Name:          e.Name,
		OwnerID:       e.OwnerID,
		OwnerUsername: e.OwnerUsername,
		CreatedAt:     e.CreatedAt,
	}
}

// NewEventResponses converts a list of events
func NewEventResponses(events []*entity.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventResponse(e))
	}
	return out
}

// NewEventDetailResponse converts an event detail read model
func NewEventDetailResponse(d *entity.EventDetail) EventDetailResponse {
	contributors := make([]ContributorTotalResponse, 0, len(d.ContributorTotals))
	for _, c := range d.ContributorTotals {
		contributors = append(contributors, ContributorTotalResponse{
			UserID:   c.UserID,
			Username: c.Username,
			Total:    entity.AmountInCentsToString(c.TotalCents),
		})
	}

	return EventDetailResponse{
		Event:        NewEventResponse(d.Event),
		Purchases:    NewPurchaseResponses(d.Purchases),
		Total:        entity.AmountInCentsToString(d.TotalCents),
		CallerTotal:  entity.AmountInCentsToString(d.CallerTotalCents),
		Contributors: contributors,
	}
}
