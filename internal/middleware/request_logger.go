package middleware

import (
	"time"

	"examgen/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request once the handler chain returns.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// render the error now so the logged status is the one sent
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		}
		if id := TeacherID(c); id != "" {
			fields = append(fields, zap.String("teacher_id", id))
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Get().Error("HTTP request", fields...)
		case status >= fiber.StatusBadRequest:
			logger.Get().Warn("HTTP request", fields...)
		default:
			logger.Get().Info("HTTP request", fields...)
		}
		return nil
	}
}
