package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

// Middleware logs one line per request after the handler chain runs.
// A request id is minted when the client did not send one so log lines
// across services correlate.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
			c.Set("X-Request-ID", rid)
		}

		err := c.Next()

		if m != nil && m.logger != nil {
			m.logger.Printf(
				"[HTTP] %s %s status=%d latency=%s rid=%s ip=%s bytes=%d ua=%q",
				c.Method(),
				c.OriginalURL(),
				c.Response().StatusCode(),
				time.Since(start),
				rid,
				c.IP(),
				c.Response().Header.ContentLength(),
				c.Get("User-Agent"),
			)
		}

		return err
	}
}
