package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON shape of a failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler recovers from panics anywhere in the handler chain, so one
// malformed submission can never take the booking API down with it. The
// guest sees the same retryable message a booking failure produces.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("panic while serving request",
					zap.String("path", c.FullPath()),
					zap.Any("panic", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "Something went wrong on our side. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}
