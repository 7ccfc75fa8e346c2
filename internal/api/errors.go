package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quotegateway/internal/market"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps the gateway's error kinds to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, market.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, market.ErrMissingEntity),
		errors.Is(err, market.ErrIneligible),
		errors.Is(err, market.ErrEmptyResult):
		return http.StatusNotFound
	case errors.Is(err, market.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes err as {"error": "..."} with its mapped status.
func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: err.Error()})
}
