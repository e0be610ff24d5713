package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation               = 4001
	CodeInvalidAmount            = 4002
	CodeInvalidID                = 4003
	CodeUnauthenticated          = 4010
	CodeInvalidCredentials       = 4011
	CodeForbidden                = 4030
	CodeUserNotFound             = 4040
	CodeEventNotFound            = 4041
	CodePurchaseNotFound         = 4042
	CodeDuplicateUsername        = 4090
	CodeDuplicateEvent           = 4091
	CodeAdministratorUndeletable = 4092
	CodeConstraintViolation      = 4093
	CodeNoParticipants           = 4220

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrValidation is returned when a required field is missing or malformed
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when a monetary amount cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when the amount does not fit numeric(10,2)
	ErrAmountOverflow = errors.New("amount is too large")

	// ErrInvalidID is returned when an entity identifier is zero or malformed
	ErrInvalidID = errors.New("identifier must be positive")

	// ErrUnauthenticated is returned when an operation has no acting identity
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidCredentials is returned for unknown usernames and wrong passwords alike
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrForbidden is returned when the acting identity may not perform an operation
	ErrForbidden = errors.New("access denied")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrEventNotFound is returned when the requested event doesn't exist
	ErrEventNotFound = errors.New("event not found")

	// ErrPurchaseNotFound is returned when the requested purchase doesn't exist
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrDuplicateUsername is returned when a username is already taken
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrDuplicateEvent is returned when an event name is already taken
	ErrDuplicateEvent = errors.New("event with this name already exists")

	// ErrAdministratorUndeletable is returned on any attempt to delete the administrator
	ErrAdministratorUndeletable = errors.New("the administrator cannot be deleted")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNoParticipants is returned when a settlement has nobody to split between
	ErrNoParticipants = errors.New("no participants to settle")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrAmountOverflow):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidID):
		return CodeInvalidID
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrEventNotFound):
		return CodeEventNotFound
	case errors.Is(err, ErrPurchaseNotFound):
		return CodePurchaseNotFound
	case errors.Is(err, ErrDuplicateUsername):
		return CodeDuplicateUsername
	case errors.Is(err, ErrDuplicateEvent):
		return CodeDuplicateEvent
	case errors.Is(err, ErrAdministratorUndeletable):
		return CodeAdministratorUndeletable
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrNoParticipants):
		return CodeNoParticipants
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error onto the HTTP status the transport should use
func HTTPStatus(err error) int {
	switch {
	case IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case IsNotFoundError(err):
		return http.StatusNotFound
	case IsConflictError(err):
		return http.StatusConflict
	case errors.Is(err, ErrNoParticipants):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage returns a message that is safe to show to the end user.
// Infrastructure failures are collapsed into a generic message so driver
// text never reaches the caller.
func UserMessage(err error) string {
	var validationErr *ValidationError
	var authzErr *AuthorizationError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.As(err, &authzErr):
		return authzErr.Reason
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrAmountOverflow):
		return "Invalid amount"
	case errors.Is(err, ErrInvalidID):
		return "Invalid identifier"
	case errors.Is(err, ErrUnauthenticated):
		return "Authentication required"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, ErrForbidden):
		return "Access denied"
	case errors.Is(err, ErrUserNotFound):
		return "User not found"
	case errors.Is(err, ErrEventNotFound):
		return "Event not found"
	case errors.Is(err, ErrPurchaseNotFound):
		return "Purchase not found"
	case errors.Is(err, ErrDuplicateUsername):
		return "The username already exists"
	case errors.Is(err, ErrDuplicateEvent):
		return "An event with that name already exists"
	case errors.Is(err, ErrAdministratorUndeletable):
		return "The administrator cannot be deleted"
	case errors.Is(err, ErrNoParticipants):
		return "There are no participants to settle (the administrator does not count)"
	case errors.Is(err, ErrDatabaseConnection):
		return "Service temporarily unavailable"
	default:
		return "Internal server error"
	}
}

// ValidationError describes a rejected input field
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap returns the underlying error, ErrValidation when none was given
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
	return e.Err
}

// Is reports every ValidationError as an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": ErrorCode(e),
	}
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// WrapValidationError attaches field context to a lower-level validation error
func WrapValidationError(field string, err error) error {
	return &ValidationError{Field: field, Reason: err.Error(), Err: err}
}

// AuthorizationError provides detailed information about a denied operation
type AuthorizationError struct {
	Operation string
	Actor     string
	Reason    string
}

// Error implements the error interface
func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("operation %s denied for %q: %s", e.Operation, e.Actor, e.Reason)
}

// Is checks if the target error is an ErrForbidden
func (e *AuthorizationError) Is(target error) bool {
	return target == ErrForbidden
}

// LogFields returns a map of fields for structured logging
func (e *AuthorizationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "authorization_error",
		"operation":  e.Operation,
		"actor":      e.Actor,
		"reason":     e.Reason,
		"error_code": CodeForbidden,
	}
}

// NewAuthorizationError creates a new detailed authorization error
func NewAuthorizationError(operation, actor, reason string) error {
	return &AuthorizationError{
		Operation: operation,
		Actor:     actor,
		Reason:    reason,
	}
}

// IsValidationError checks if the error is any kind of input validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrInvalidID)
}

// IsForbiddenError checks if the error is an authorization denial
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrPurchaseNotFound)
}

// IsConflictError checks if the error is an integrity conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateUsername) ||
		errors.Is(err, ErrDuplicateEvent) ||
		errors.Is(err, ErrAdministratorUndeletable) ||
		errors.Is(err, ErrConstraintViolation)
}
