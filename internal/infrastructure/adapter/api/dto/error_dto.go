package dto

import (
	domainerr "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse builds the response body for a domain error
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: domainerr.UserMessage(err),
	}
}
