package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"docta-server/config"
	"docta-server/utils"
)

// ipLimiters keeps one token bucket per client IP. Entries idle longer than
// staleAfter are pruned on the next sweep so the map does not grow unbounded.
type ipLimiters struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const staleAfter = 10 * time.Minute

func newIPLimiters() *ipLimiters {
	s := &ipLimiters{buckets: make(map[string]*bucket)}
	go s.sweep()
	return s
}

func (s *ipLimiters) get(ip string, perMinute int) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[ip]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)}
		s.buckets[ip] = b
	}
	b.lastSeen = time.Now()
	return b.limiter
}

func (s *ipLimiters) sweep() {
	for range time.Tick(staleAfter) {
		s.mu.Lock()
		for ip, b := range s.buckets {
			if time.Since(b.lastSeen) > staleAfter {
				delete(s.buckets, ip)
			}
		}
		s.mu.Unlock()
	}
}

// RateLimitMiddleware throttles each client IP to the configured requests per
// minute.
func RateLimitMiddleware() gin.HandlerFunc {
	store := newIPLimiters()
	perMinute := config.RateLimitPerMinute()
	if perMinute < 1 {
		perMinute = 60
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.get(ip, perMinute).Allow() {
			utils.GetLogger().Warn("Rate limit exceeded", zap.String("ip", ip))
			utils.JSONError(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
