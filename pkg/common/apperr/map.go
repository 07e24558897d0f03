package apperr

import (
	"fmt"
)

// Generic Action Messages
const (
	MsgProcessFailed    = "failed to process"
	MsgInvalidParams    = "invalid parameters"
	MsgValidationFailed = "validation failed"
	MsgNotFound         = "not found"
)

// NewError creates a new AppError with standardized message format
func NewError(serviceName string, code int, msg string, httpStatus int, cause error) *AppError {
	formattedMsg := fmt.Sprintf("%s %s", serviceName, msg)
	return New(code, formattedMsg, httpStatus, cause)
}
