package middleware

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/reqctx"
	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics and renders errors attached with c.Error.
// Handlers attach the domain error and return; the status and body come from
// the error's classification.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": reqctx.RequestID(c.Request.Context()),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(domainerr.ErrInternalServer))
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := domainerr.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Request error", map[string]any{
				"error":      err.Error(),
				"path":       c.Request.URL.Path,
				"request_id": reqctx.RequestID(c.Request.Context()),
			})
		}

		c.AbortWithStatusJSON(status, dto.NewErrorResponse(err))
	}
}
