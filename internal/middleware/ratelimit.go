package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// RateLimitMiddleware 以 Redis 固定視窗計數限制單一來源的請求頻率
// Redis 不可用時放行，流量限制是保護手段而非功能
func RateLimitMiddleware(rdb *redis.Client, requestsPerMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || requestsPerMinute <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.ClientIP(), time.Now().Format("200601021504"))

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(c.Request.Context(), key, time.Minute)
		}

		if count > int64(requestsPerMinute) {
			utils.FailAbort(c, http.StatusTooManyRequests, utils.CodeRateLimited, "請求過於頻繁，請稍後再試")
			return
		}

		c.Next()
	}
}
