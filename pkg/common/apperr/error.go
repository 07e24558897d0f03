package apperr

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Error codes shared by the drivers.
const (
	CodeParamInvalid     = 40001
	CodeValidationFailed = 40002
	CodeNotFound         = 40401
	CodeInternal         = 50001
)

// AppError carries a public code and message together with the HTTP status
// a driver should answer with. The wrapped cause is never rendered to clients.
type AppError struct {
	Code       int
	Message    string
	HTTPStatus int
	cause      error
}

// New creates an AppError.
func New(code int, msg string, httpStatus int, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    msg,
		HTTPStatus: httpStatus,
		cause:      cause,
	}
}

// Wrap attaches code, msg and status to err. Returns nil if err is nil.
func Wrap(err error, code int, msg string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return New(code, msg, httpStatus, err)
}

func (e *AppError) Error() string {
	if e.cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.cause)
}

// Cause implements the github.com/pkg/errors causer interface.
func (e *AppError) Cause() error {
	return e.cause
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// As extracts an *AppError from err's chain. Anything else is reported as an
// internal error wrapping err.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeInternal, MsgProcessFailed, http.StatusInternalServerError)
}
