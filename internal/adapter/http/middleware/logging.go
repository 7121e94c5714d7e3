package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// quietPaths are polled by load balancers; successful hits log at debug.
var quietPaths = map[string]bool{
	"/health": true,
}

// RequestLogger returns middleware that logs each request on completion.
// It also attaches a logger tagged with the request ID to the request context,
// so that zerolog.Ctx in the layers below logs with the same ID.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			reqID := GetRequestID(c)

			req := c.Request()
			scoped := log.With().Str("request_id", reqID).Logger()
			c.SetRequest(req.WithContext(scoped.WithContext(req.Context())))

			if err := next(c); err != nil {
				// let echo's error handler write the response before the status is read
				c.Error(err)
			}

			res := c.Response()
			levelFor(log, res.Status, quietPaths[req.URL.Path]).
				Str("request_id", reqID).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", res.Status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}

func levelFor(log zerolog.Logger, status int, quiet bool) *zerolog.Event {
	switch {
	case status >= 500:
		return log.Error()
	case status >= 400:
		return log.Warn()
	case quiet:
		return log.Debug()
	default:
		return log.Info()
	}
}
