package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	// ErrUnauthorized covers a missing, malformed, forged or expired session token.
	ErrUnauthorized = errors.New("Unauthorized")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrMissingCredentials is returned when login omits email or password.
	ErrMissingCredentials = errors.New("Please provide both email and password")
	// ErrUserNotFound is returned when the session's user no longer exists.
	ErrUserNotFound = errors.New("User not found")
	// ErrUserAlreadyExists is returned when signing up with a taken email.
	ErrUserAlreadyExists = errors.New("User already exists")
)

// ValidationError is a BadRequest carrying a human-readable field message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// Echo converts the error into the echo error returned by handlers.
func (e *HTTPError) Echo() *echo.HTTPError {
	return echo.NewHTTPError(e.StatusCode, e.ToErrorResponse()).SetInternal(e)
}

// Unauthorized is the single response for every session failure.
func Unauthorized() *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, ErrUnauthorized.Error(), "UNAUTHORIZED")
}

// BadRequest wraps a client input problem.
func BadRequest(message, code string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message, code)
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become a
// 500 that passes the underlying message through.
func MapErrorToHTTP(err error) *HTTPError {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		return BadRequest(vErr.Message, "VALIDATION_ERROR")
	case errors.Is(err, ErrUnauthorized):
		return Unauthorized()
	case errors.Is(err, ErrMissingCredentials):
		return BadRequest(ErrMissingCredentials.Error(), "MISSING_CREDENTIALS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, ErrUserAlreadyExists.Error(), "USER_ALREADY_EXISTS")
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
	}
}
