package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avelichko/reminder-server/internal/logger"
)

// Logging logs HTTP requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, status and duration for each request.
func (l *Logging) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()

		err := next(c)
		if err != nil {
			// Let echo's error handler set the status before logging it.
			c.Error(err)
		}

		res := c.Response()
		duration := time.Since(start)

		l.logger.Info("HTTP request completed",
			"method", req.Method,
			"uri", req.RequestURI,
			"status", res.Status,
			"duration_ms", duration.Milliseconds())

		if err != nil {
			l.logger.Error("HTTP request failed",
				"method", req.Method,
				"uri", req.RequestURI,
				"error", err.Error())
		}

		return nil
	}
}
