package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventUseCase usecase.EventUseCase
	logger       coreport.Logger
}

// NewEventHandler creates a new event handler instance
func NewEventHandler(eventUseCase usecase.EventUseCase, logger coreport.Logger) *EventHandler {
	return &EventHandler{
		eventUseCase: eventUseCase,
		logger:       logger,
	}
}

// ListEvents handles the GET /events endpoint
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventUseCase.ListEvents(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewEventResponses(events))
}

// CreateEvent handles the POST /events endpoint
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.eventUseCase.CreateEvent(c.Request.Context(), middleware.Identity(c), req.Name, req.OwnerID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewEventResponse(event))
}

// GetEvent handles the GET /events/:eventId endpoint
func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	detail, err := h.eventUseCase.GetEventDetail(c.Request.Context(), middleware.Identity(c), eventID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewEventDetailResponse(detail))
}

// DeleteEvent handles the DELETE /events/:eventId endpoint
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	if err := h.eventUseCase.DeleteEvent(c.Request.Context(), middleware.Identity(c), eventID); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
