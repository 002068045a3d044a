package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"expense-api/utils"
)

// RequestLogger tags each request with an ID and logs method, path,
// status and duration once the handler chain finishes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		utils.LogAPIRequest(
			c.Request.Method,
			c.Request.URL.Path,
			requestID,
			c.Writer.Status(),
			time.Since(start).String(),
		)
	}
}
