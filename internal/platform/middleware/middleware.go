package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"formvalidator/internal/platform/logger"
)

const RequestIDHeader = "X-Request-Id"

// RequestLogger puts a request-scoped logger in the context and logs one
// entry per request. The entry level follows the status; probe and scrape
// routes log at debug so they do not drown out signup traffic.
func RequestLogger(baseLogger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			reqID := middleware.GetReqID(r.Context())
			if reqID != "" {
				ww.Header().Set(RequestIDHeader, reqID)
			}

			contextLogger := baseLogger.With(logger.String("request_id", reqID))
			ctx := logger.WithLogger(r.Context(), contextLogger)

			next.ServeHTTP(ww, r.WithContext(ctx))

			route := RoutePattern(r)
			logFn := levelFor(contextLogger, ww.Status(), route)
			logFn("HTTP Request",
				logger.String("method", r.Method),
				logger.String("route", route),
				logger.String("remote_addr", r.RemoteAddr),
				logger.Int("status", ww.Status()),
				logger.Int("bytes", ww.BytesWritten()),
				logger.Duration("duration", time.Since(start)),
			)
		})
	}
}

func levelFor(log logger.Logger, status int, route string) func(string, ...logger.Field) {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error
	case status >= http.StatusBadRequest && status != http.StatusNotFound:
		return log.Warn
	case isProbeRoute(route):
		return log.Debug
	default:
		return log.Info
	}
}

func isProbeRoute(route string) bool {
	return strings.HasPrefix(route, "/health/") || route == "/metrics"
}
