package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gbmfoods/admin-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ClientRateLimiter keeps a token-bucket limiter per client. Authenticated
// requests are keyed by staff email so a shared office IP does not starve
// everyone at once; anonymous requests fall back to the client IP.
type ClientRateLimiter struct {
	limiters map[string]*limiterEntry
	mu       sync.RWMutex

	requestsPerMinute int
	burstSize         int
	cleanupInterval   time.Duration
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewClientRateLimiter(requestsPerMinute, burstSize int) *ClientRateLimiter {
	rl := &ClientRateLimiter{
		limiters:          make(map[string]*limiterEntry),
		requestsPerMinute: requestsPerMinute,
		burstSize:         burstSize,
		cleanupInterval:   10 * time.Minute,
	}

	go rl.cleanup()

	return rl
}

func (rl *ClientRateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.RLock()
	entry, exists := rl.limiters[key]
	rl.mu.RUnlock()

	if exists {
		rl.mu.Lock()
		entry.lastSeen = time.Now()
		rl.mu.Unlock()
		return entry.limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Double-check after acquiring write lock
	if entry, exists := rl.limiters[key]; exists {
		entry.lastSeen = time.Now()
		return entry.limiter
	}

	limiter := rate.NewLimiter(rate.Limit(float64(rl.requestsPerMinute)/60.0), rl.burstSize)
	rl.limiters[key] = &limiterEntry{
		limiter:  limiter,
		lastSeen: time.Now(),
	}

	return limiter
}

// cleanup removes limiters that have been idle for over an hour.
func (rl *ClientRateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-time.Hour)
		for key, entry := range rl.limiters {
			if entry.lastSeen.Before(cutoff) {
				delete(rl.limiters, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware enforces the per-client limit and sets standard rate limit
// headers on every response.
func (rl *ClientRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := GetStaffEmail(c)
		if key == "" {
			key = c.ClientIP()
		}

		limiter := rl.getLimiter(key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.requestsPerMinute))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

		if !limiter.Allow() {
			c.Header("Retry-After", "60")
			response.ErrorWithCode(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
