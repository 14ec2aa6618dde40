package middleware

import (
	"errors"
	"strconv"
	"time"

	"quizmaster/internal/domain"
	"quizmaster/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request counts and latencies per route template.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = statusFromError(err)
		}
		route := c.Route().Path
		m.RequestCounter.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// statusFromError predicts the status ErrorHandler will write for err.
func statusFromError(err error) int {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return StatusForCode(domainErr.Code)
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
