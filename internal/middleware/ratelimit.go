package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/guttosm/tradeseed/internal/domain/dto"
)

// visitor is a token bucket for one client IP.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// In-memory per-IP buckets. Entries idle for longer than idleTTL are dropped
// on the next request.
var (
	visitors        = make(map[string]*visitor)
	limit           = rate.Limit(1) // tokens per second
	burst           = 60
	idleTTL         = 3 * time.Minute
	rateLimiterLock sync.Mutex
)

func visitorFor(ip string, now time.Time) *rate.Limiter {
	rateLimiterLock.Lock()
	defer rateLimiterLock.Unlock()

	for k, v := range visitors {
		if now.Sub(v.lastSeen) > idleTTL {
			delete(visitors, k)
		}
	}

	v, ok := visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(limit, burst)}
		visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// RateLimiter limits each client IP to a sustained `limit` requests per
// second with bursts of up to `burst` (default: 60 per minute, burst 60).
//
// Response when limit exceeded:
//
//	HTTP/1.1 429 Too Many Requests
//	{"message": "rate limit exceeded", "timestamp": "..."}
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !visitorFor(c.ClientIP(), time.Now()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}
		c.Next()
	}
}
