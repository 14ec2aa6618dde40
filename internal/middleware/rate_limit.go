package middleware

import (
	"context"
	"sync"
	"time"

	"quizmaster/internal/config"
	"quizmaster/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter allows cfg.Requests requests per cfg.Window for each caller,
// keyed by user id when authenticated and by IP otherwise. Idle entries are
// dropped until ctx is done.
func RateLimiter(ctx context.Context, cfg config.RateLimitConfig, m *metrics.Metrics) fiber.Handler {
	store := make(map[string]*visitor)
	var mu sync.Mutex

	expiry := cfg.Window * 3
	if expiry < time.Minute {
		expiry = time.Minute
	}
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				mu.Lock()
				for key, v := range store {
					if time.Since(v.lastSeen) > expiry {
						delete(store, key)
					}
				}
				mu.Unlock()
			}
		}
	}()

	limit := rate.Every(cfg.Window / time.Duration(cfg.Requests))

	return func(c *fiber.Ctx) error {
		key := "ip:" + c.IP()
		if principal, ok := GetPrincipal(c); ok {
			key = "user:" + principal.UserID
		}

		mu.Lock()
		v, exists := store[key]
		if !exists {
			v = &visitor{limiter: rate.NewLimiter(limit, cfg.Requests)}
			store[key] = v
		}
		v.lastSeen = time.Now()
		mu.Unlock()

		if !v.limiter.Allow() {
			m.RateLimited.Inc()
			return c.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "Too many requests, slow down",
				Status:  fiber.StatusTooManyRequests,
			})
		}
		return c.Next()
	}
}
