package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/waitlist/pkg/common/apperr"
)

const CodeSuccess = 20000

// Response is the JSON envelope returned by every endpoint.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SuccessResponse writes data with HTTP 200.
func SuccessResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// ErrorResponse writes err using its AppError code and status.
// Errors that are not AppErrors become internal errors.
func ErrorResponse(c *gin.Context, err error) {
	appErr := apperr.As(err)
	c.AbortWithStatusJSON(appErr.HTTPStatus, Response{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}
