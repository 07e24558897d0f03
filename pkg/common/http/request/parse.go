package request

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/waitlist/pkg/common/apperr"
	"github.com/huynhanx03/waitlist/pkg/common/http/validation"
)

// Normalizer is implemented by requests that clean their fields before validation.
type Normalizer interface {
	Normalize()
}

// ParseRequest binds the JSON body into T, normalizes and validates it.
func ParseRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeParamInvalid, apperr.MsgInvalidParams, http.StatusBadRequest)
	}

	if n, ok := any(&req).(Normalizer); ok {
		n.Normalize()
	}

	if ok, msg := validation.IsRequestValid(req); !ok {
		return nil, apperr.New(apperr.CodeValidationFailed, msg, http.StatusUnprocessableEntity, nil)
	}

	return &req, nil
}
