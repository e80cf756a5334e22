package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/shared/utils"
)

// SubmitRateLimit throttles public ticket submission per client IP. Limiter
// errors fail open so a redis outage cannot block submissions.
func SubmitRateLimit(limiter ratelimit.RateLimiter, perMinute int) gin.HandlerFunc {
	cfg := ratelimit.RateLimitConfig{RequestsPerMinute: perMinute}

	return func(c *gin.Context) {
		allowed, err := limiter.Allow("submit:"+c.ClientIP(), cfg)
		if err != nil {
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many submissions, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
