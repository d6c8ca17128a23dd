package middleware

import (
	"errors"
	"net/http"

	"go-jetlab-backend/internal/delivery/http/response"
	"go-jetlab-backend/pkg/apperror"
	"go-jetlab-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors collected on the context into the uniform
// failure envelope. In production, diagnostic details of 5xx errors are
// withheld so transport internals never reach end users.
func ErrorHandler(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			details := appErr.Details
			if production && appErr.Code >= http.StatusInternalServerError {
				details = ""
			}
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"error", appErr.Message,
					"cause", appErr.Details,
					"request_id", c.GetString("RequestID"))
			}
			response.Error(c, appErr.Code, appErr.Message, details)
			return
		}

		logger.Log.Error("unhandled error", "error", err, "request_id", c.GetString("RequestID"))
		response.Error(c, http.StatusInternalServerError, "Internal server error", "")
	}
}
