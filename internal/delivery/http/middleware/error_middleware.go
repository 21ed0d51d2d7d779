package middleware

import (
	"errors"
	"net/http"

	"go-recruitment-ops/internal/delivery/http/response"
	"go-recruitment-ops/pkg/apperror"
	"go-recruitment-ops/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Never expose internal error details to clients
				requestID, _ := c.Get("RequestID")
				logger.Log.Error("Internal Server Error", "error", err, "path", c.FullPath(), "request_id", requestID)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
