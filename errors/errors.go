package errors

import (
	"fmt"
	"net/http"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
)

// Stable error codes returned to API clients alongside the message.
const (
	CodeMissingField      = "MISSING_FIELD"
	CodeInvalidReference  = "INVALID_REFERENCE"
	CodeInvalidAuthorType = "INVALID_AUTHOR_TYPE"
	CodeNotFound          = "NOT_FOUND"
	CodeForbidden         = "FORBIDDEN"
	CodeBadRequest        = "BAD_REQUEST"
	CodeRateLimited       = "RATE_LIMITED"
	CodeStorageFailure    = "STORAGE_FAILURE"
)

// Error is the error type surfaced to handlers. Status drives the HTTP
// response code, Code is a stable machine-readable kind, and Detail (set
// only on storage failures) is emitted to clients in debug mode only.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Detail  string `json:"detail,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("error: %s", e.Message)
}

func New(message string, status int) *Error {
	return &Error{Code: codeForStatus(status), Message: message, Status: status}
}

var ErrInternalServerError = New("internal server error", http.StatusInternalServerError)

// MissingField reports an absent or empty required input.
func MissingField(field string) *Error {
	return &Error{
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
		Status:  http.StatusBadRequest,
	}
}

// InvalidReference reports a declared foreign id that does not resolve,
// naming which reference failed.
func InvalidReference(entity, field string) *Error {
	return &Error{
		Code:    CodeInvalidReference,
		Message: fmt.Sprintf("invalid %s: %s not found", field, entity),
		Status:  http.StatusBadRequest,
	}
}

func InvalidAuthorType(got string) *Error {
	return &Error{
		Code:    CodeInvalidAuthorType,
		Message: fmt.Sprintf("authorType must be CITIZEN, MLA, or ORGANIZATION, got %q", got),
		Status:  http.StatusBadRequest,
	}
}

// NotFound reports that the primary entity targeted by an operation does
// not exist.
func NotFound(entity string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", entity),
		Status:  http.StatusNotFound,
	}
}

func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message, Status: http.StatusForbidden}
}

func BadRequest(message string) *Error {
	return &Error{Code: CodeBadRequest, Message: message, Status: http.StatusBadRequest}
}

// StorageFailure wraps an unexpected persistence error. The underlying
// detail is kept on the error but never shown to clients outside debug
// mode; see response.JSON.
func StorageFailure(err error) *Error {
	e := &Error{
		Code:    CodeStorageFailure,
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
	}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusTooManyRequests:
		return CodeRateLimited
	default:
		return CodeStorageFailure
	}
}

// ErrorHandler is plugged into the gin rate limiter.
func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{
		"status":  http.StatusText(http.StatusTooManyRequests),
		"message": "too many requests, try again later",
		"errors":  []string{CodeRateLimited},
	})
	c.Abort()
}
