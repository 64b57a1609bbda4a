package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimiterConfig holds the configuration for the rate limiter
type RateLimiterConfig struct {
	RequestsPerSecond float64
	Burst             int
	// MaxClients bounds the number of per-client limiters kept in memory.
	MaxClients int
}

const defaultMaxClients = 10000

// NewRateLimiterMiddleware creates a rate limiter keyed by client IP. Clients
// that have been quiet the longest are forgotten once MaxClients is reached.
func NewRateLimiterMiddleware(config RateLimiterConfig) (gin.HandlerFunc, error) {
	size := config.MaxClients
	if size <= 0 {
		size = defaultMaxClients
	}
	limiters, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rate limiter cache")
	}

	limiterFor := func(client string) *rate.Limiter {
		if l, ok := limiters.Get(client); ok {
			return l.(*rate.Limiter)
		}
		l := rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst)
		// Another request from the same client may have raced us here.
		if existing, ok, _ := limiters.PeekOrAdd(client, l); ok {
			return existing.(*rate.Limiter)
		}
		return l
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}, nil
}
