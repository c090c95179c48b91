package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/atomo10/atomo/pkg/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func NewLogger(collector *metrics.Collector) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		startTime := time.Now()
		err = c.Next()

		msg := "HTTP Request"
		if err != nil {
			msg = err.Error()
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		code := c.Response().StatusCode()
		latency := time.Since(startTime)

		requestLogger := log.With().
			Int("status", code).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("ip", c.IP()).
			Str("latency", latency.String()).
			Str("user-agent", c.Get(fiber.HeaderUserAgent)).
			Logger()

		switch {
		case code >= fiber.StatusBadRequest && code < fiber.StatusInternalServerError:
			requestLogger.Warn().Msg(msg)
		case code >= http.StatusInternalServerError:
			requestLogger.Error().Msg(msg)
		default:
			requestLogger.Info().Msg(msg)
		}

		if collector != nil {
			route := c.Route().Path
			collector.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(code)).Inc()
			collector.HTTPRequestDuration.WithLabelValues(c.Method(), route).Observe(latency.Seconds())
		}

		return nil
	}
}
