package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/security"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles login
type AuthHandler struct {
	userUseCase usecase.UserUseCase
	tokens      security.TokenIssuer
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(userUseCase usecase.UserUseCase, tokens security.TokenIssuer, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		userUseCase: userUseCase,
		tokens:      tokens,
		logger:      logger,
	}
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	identity, err := h.userUseCase.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		_ = c.Error(err)
		return
	}
	metrics.LoginAttempts.WithLabelValues("success").Inc()

	token, expiresAt, err := h.tokens.Issue(identity.UserID, identity.Username)
	if err != nil {
		h.logger.Error("Failed to issue token", map[string]any{
			"userId": identity.UserID,
			"error":  err.Error(),
		})
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User: dto.UserResponse{
			ID:       identity.UserID,
			Username: identity.Username,
			Role:     string(identity.Role),
		},
	})
}
