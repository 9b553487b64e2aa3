package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/EmployeePortal-api/pkg/logger"
)

// RequestLogger registra cada request con zerolog al terminar la cadena.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Interface("request_id", c.Locals("requestid")).
			Str("user", GetUsername(c)).
			Msg("request")
		return err
	}
}
