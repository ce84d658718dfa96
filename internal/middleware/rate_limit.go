package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-task-planner/pkg/response"
)

// RateLimit rejects requests exceeding the configured global rate with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
