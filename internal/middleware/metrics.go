package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-api/internal/metrics"
)

// Metrics records request count and latency per matched route.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}

		done := metrics.RequestStarted()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		done(c.Method(), c.Route().Path, status)
		return err
	}
}
