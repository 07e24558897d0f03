package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/waitlist/pkg/common/http/request"
	"github.com/huynhanx03/waitlist/pkg/common/http/response"
)

// HandlerFunc is the generic function signature
type HandlerFunc[T any, R any] func(context.Context, *T) (R, error)

// QueryFunc is a handler without a request body
type QueryFunc[R any] func(context.Context) (R, error)

// Wrap converts a generic handler to a Gin handler
func Wrap[T any, R any](h HandlerFunc[T, R]) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := request.ParseRequest[T](c)
		if err != nil {
			response.ErrorResponse(c, err)
			return
		}

		res, err := h(c.Request.Context(), req)
		if err != nil {
			response.ErrorResponse(c, err)
			return
		}

		response.SuccessResponse(c, res)
	}
}

// WrapQuery converts a body-less handler to a Gin handler
func WrapQuery[R any](h QueryFunc[R]) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := h(c.Request.Context())
		if err != nil {
			response.ErrorResponse(c, err)
			return
		}

		response.SuccessResponse(c, res)
	}
}
