package handler

import (
	"strconv"

	domainerr "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
	"github.com/gin-gonic/gin"
)

// pathID parses a positive numeric path parameter. On failure it attaches a
// validation error to the context and reports false.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		_ = c.Error(domainerr.WrapValidationError(name, domainerr.ErrInvalidID))
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body, reporting malformed bodies as validation errors
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(domainerr.NewValidationError("body", "is malformed or missing required fields"))
		return false
	}
	return true
}
