package middleware

import (
	"strconv"
	"time"

	"jobboard/internal/metrics"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type AccessLogMiddleware struct{}

func NewAccessLogMiddleware() *AccessLogMiddleware {
	return &AccessLogMiddleware{}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
			c.Set("X-Request-ID", rid)
		}

		err := c.Next()

		dur := time.Since(start)
		status := c.Response().StatusCode()
		method := c.Method()
		// the route pattern, not the raw URL, keeps metric cardinality bounded
		route := c.Route().Path

		metrics.RequestsCounter.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		metrics.RequestDuration.WithLabelValues(method, route).Observe(dur.Seconds())

		log.WithFields(log.Fields{
			"rid":     rid,
			"ip":      c.IP(),
			"method":  method,
			"path":    c.OriginalURL(),
			"status":  status,
			"latency": dur.String(),
		}).Info("http access")

		return err
	}
}
