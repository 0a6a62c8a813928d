package middleware

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apperrors "github.com/CM6156/CoilmasterThailand/backend/pkg/errors"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/redis"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

// RateLimiterConfig 限流配置
type RateLimiterConfig struct {
	Limit           int           // 窗口内允许的请求数
	Window          time.Duration // 窗口时长
	CleanupInterval time.Duration // 进程内限流器的清理间隔
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter 按客户端 IP 限流
// Redis 可用时使用滑动窗口，Redis 未配置或出错时退回进程内令牌桶
type RateLimiter struct {
	config RateLimiterConfig
	rdb    *redis.Client
	failer *response.Failer
	logger *zap.Logger

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewRateLimiter 创建限流器并启动后台清理，rdb 可为 nil
func NewRateLimiter(cfg RateLimiterConfig, rdb *redis.Client, failer *response.Failer, logger *zap.Logger) *RateLimiter {
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}
	rl := &RateLimiter{
		config:   cfg,
		rdb:      rdb,
		failer:   failer,
		logger:   logger,
		limiters: make(map[string]*clientLimiter),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Stop 停止后台清理并等待退出，可重复调用
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
	<-rl.done
}

// Middleware 返回限流中间件，scope 区分不同接口的配额
func (rl *RateLimiter) Middleware(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s:%s", scope, c.ClientIP())
		if rl.allow(c, key) {
			c.Next()
			return
		}

		rl.logger.Warn("请求频率超限",
			zap.String("ip", c.ClientIP()),
			zap.String("scope", scope),
		)
		c.Header("Retry-After", strconv.Itoa(rl.retryAfter()))
		rl.failer.Abort(c, apperrors.ErrTooManyRequests)
	}
}

func (rl *RateLimiter) allow(c *gin.Context, key string) bool {
	if rl.rdb != nil {
		allowed, _, err := rl.rdb.CheckRateLimit(c.Request.Context(), key, rl.config.Limit, rl.config.Window)
		if err == nil {
			return allowed
		}
		rl.logger.Warn("Redis 限流失败，改用进程内限流", zap.Error(err))
	}
	return rl.localLimiter(key).Allow()
}

// localLimiter 取得或创建 key 对应的令牌桶
// 速率为 Limit/Window，突发容量为 Limit
func (rl *RateLimiter) localLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if cl, ok := rl.limiters[key]; ok {
		cl.lastAccess = now
		return cl.limiter
	}

	every := rate.Every(rl.config.Window / time.Duration(rl.config.Limit))
	cl := &clientLimiter{
		limiter:    rate.NewLimiter(every, rl.config.Limit),
		lastAccess: now,
	}
	rl.limiters[key] = cl
	return cl.limiter
}

// Len 当前进程内限流器数量
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) cleanupLoop() {
	defer close(rl.done)
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup 删除超过两个清理周期未访问的条目
func (rl *RateLimiter) cleanup(now time.Time) {
	ttl := rl.config.CleanupInterval * 2

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, key)
		}
	}
}

// retryAfter 补充一个令牌所需的秒数
func (rl *RateLimiter) retryAfter() int {
	sec := int(math.Ceil(rl.config.Window.Seconds() / float64(rl.config.Limit)))
	if sec < 1 {
		sec = 1
	}
	return sec
}
