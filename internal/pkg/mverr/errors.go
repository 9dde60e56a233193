package mverr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeConflict       = "CONFLICT"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrConflict is returned when a request would create a duplicate of an existing resource.
	ErrConflict = New(fiber.StatusConflict, CodeConflict, "resource already exists with given parameters")

	// ErrUnauthorized is returned when credentials are missing or invalid.
	ErrUnauthorized = New(fiber.StatusUnauthorized, CodeUnauthorized, "missing or invalid credentials")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

type BackofficeError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *BackofficeError {
	return &BackofficeError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// Msg returns a copy of the error with its message replaced. The receiver is
// a value so the package-level sentinels stay immutable.
func (e BackofficeError) Msg(format string, parts ...interface{}) *BackofficeError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e BackofficeError) WithExtras(extras Extras) *BackofficeError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *BackofficeError {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *BackofficeError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
