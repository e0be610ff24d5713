package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles purchase-related HTTP requests
type PurchaseHandler struct {
	purchaseUseCase usecase.PurchaseUseCase
	logger          coreport.Logger
}

// NewPurchaseHandler creates a new purchase handler instance
func NewPurchaseHandler(purchaseUseCase usecase.PurchaseUseCase, logger coreport.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUseCase: purchaseUseCase,
		logger:          logger,
	}
}

// AddPurchase handles the POST /events/:eventId/purchases endpoint
func (h *PurchaseHandler) AddPurchase(c *gin.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	var req dto.AddPurchaseRequest
	if !bindJSON(c, &req) {
		return
	}

	purchase, err := h.purchaseUseCase.AddPurchase(c.Request.Context(), middleware.Identity(c), usecase.AddPurchaseInput{
		EventID:     eventID,
		Description: req.Description,
		Amount:      req.Amount,
		Recipient:   req.Recipient,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	metrics.PurchasesRecorded.Inc()

	c.JSON(http.StatusCreated, dto.NewPurchaseResponse(purchase))
}

// ListOwnPurchases handles the GET /events/:eventId/purchases/mine endpoint
func (h *PurchaseHandler) ListOwnPurchases(c *gin.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	purchases, err := h.purchaseUseCase.ListOwnPurchases(c.Request.Context(), middleware.Identity(c), eventID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPurchaseResponses(purchases))
}

// DeletePurchase handles the DELETE /purchases/:purchaseId endpoint
func (h *PurchaseHandler) DeletePurchase(c *gin.Context) {
	purchaseID, ok := pathID(c, "purchaseId")
	if !ok {
		return
	}

	if err := h.purchaseUseCase.DeletePurchase(c.Request.Context(), middleware.Identity(c), purchaseID); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
