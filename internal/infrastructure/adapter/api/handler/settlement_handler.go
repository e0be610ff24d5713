package handler

import (
	"errors"
	"net/http"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

// SettlementHandler handles settlement report requests
type SettlementHandler struct {
	settlementUseCase usecase.SettlementUseCase
	logger            coreport.Logger
}

// NewSettlementHandler creates a new settlement handler instance
func NewSettlementHandler(settlementUseCase usecase.SettlementUseCase, logger coreport.Logger) *SettlementHandler {
	return &SettlementHandler{
		settlementUseCase: settlementUseCase,
		logger:            logger,
	}
}

// GlobalSettlement handles the GET /settlement endpoint
func (h *SettlementHandler) GlobalSettlement(c *gin.Context) {
	report, err := h.settlementUseCase.GlobalSettlement(c.Request.Context(), middleware.Identity(c))
	h.respond(c, "global", report, err)
}

// EventSettlement handles the GET /events/:eventId/settlement endpoint
func (h *SettlementHandler) EventSettlement(c *gin.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	report, err := h.settlementUseCase.EventSettlement(c.Request.Context(), middleware.Identity(c), eventID)
	h.respond(c, "event", report, err)
}

func (h *SettlementHandler) respond(c *gin.Context, scope string, report *entity.SettlementReport, err error) {
	switch {
	case errors.Is(err, domainerr.ErrNoParticipants):
		metrics.RecordSettlement(scope, "no_participants", 0)
	case err != nil:
		metrics.RecordSettlement(scope, "error", 0)
	default:
		metrics.RecordSettlement(scope, "ok", report.ParticipantCount)
	}

	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSettlementResponse(report))
}
