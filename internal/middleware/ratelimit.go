// Package middleware 提供 HTTP 中间件
package middleware

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/zhumingyu/minishop-backend/internal/common/response"
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Limit   rate.Limit                // 每秒放行的请求数
	Burst   int                       // 突发容量
	TTL     time.Duration             // 空闲键的回收时间
	KeyFunc func(*gin.Context) string // 自定义键生成函数
}

// DefaultRateLimitConfig 默认限流配置
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		Limit: 5,
		Burst: 10,
		TTL:   3 * time.Minute,
	}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit 进程内令牌桶限流中间件
// 默认使用 IP + 路径作为键，各键独立计数
func RateLimit(config *RateLimitConfig) gin.HandlerFunc {
	if config == nil {
		config = DefaultRateLimitConfig()
	}
	if config.TTL <= 0 {
		config.TTL = 3 * time.Minute
	}

	var (
		mu      sync.Mutex
		entries = make(map[string]*limiterEntry)
		lastGC  = time.Now()
	)

	return func(c *gin.Context) {
		var key string
		if config.KeyFunc != nil {
			key = config.KeyFunc(c)
		} else {
			key = fmt.Sprintf("%s:%s", c.ClientIP(), c.Request.URL.Path)
		}

		mu.Lock()
		now := time.Now()

		// 顺带回收长时间未出现的键
		if now.Sub(lastGC) > config.TTL {
			for k, e := range entries {
				if now.Sub(e.lastSeen) > config.TTL {
					delete(entries, k)
				}
			}
			lastGC = now
		}

		entry, ok := entries[key]
		if !ok {
			entry = &limiterEntry{limiter: rate.NewLimiter(config.Limit, config.Burst)}
			entries[key] = entry
		}
		entry.lastSeen = now
		mu.Unlock()

		if !entry.limiter.Allow() {
			c.Header("X-RateLimit-Limit", strconv.Itoa(config.Burst))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "1")
			response.TooManyRequests(c, "Too many requests")
			c.Abort()
			return
		}

		c.Next()
	}
}

// IPRateLimit 按客户端 IP 限流
func IPRateLimit(limit rate.Limit, burst int) gin.HandlerFunc {
	return RateLimit(&RateLimitConfig{
		Limit: limit,
		Burst: burst,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	})
}
