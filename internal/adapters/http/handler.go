package http

import (
	"errors"
	"net/http"

	"formvalidator/internal/adapters/http/response"
	"formvalidator/internal/core/domain/validation"
	httpErrors "formvalidator/internal/platform/http"
	"formvalidator/internal/platform/logger"
	"formvalidator/internal/platform/middleware"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler renders errors returned by a handler. Unexpected errors are
// logged with the route pattern rather than the raw path, which can carry an
// email address.
func ErrorHandler(next HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}

		contextLogger := logger.FromContext(r.Context())

		var httpErr *httpErrors.Error
		if errors.As(err, &httpErr) {
			if httpErr.HasFields() {
				response.RespondErrorMap(w, httpErr.StatusCode, httpErr.Fields)
				return
			}
			response.RespondError(w, httpErr.StatusCode, httpErr)
			return
		}

		message := "Unexpected server error"
		if validation.IsConfigurationError(err) {
			message = "Signup pipeline misconfigured"
		}

		contextLogger.Error(message,
			logger.String("method", r.Method),
			logger.String("route", middleware.RoutePattern(r)),
			logger.String("remote_addr", r.RemoteAddr),
			logger.Error(err))
		response.RespondError(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}
