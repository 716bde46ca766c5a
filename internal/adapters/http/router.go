package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"formvalidator/internal/adapters/http/health"
	"formvalidator/internal/adapters/http/response"
	"formvalidator/internal/adapters/http/signup"
	"formvalidator/internal/config"
	"formvalidator/internal/platform/logger"
	"formvalidator/internal/platform/metrics"
	platformMiddleware "formvalidator/internal/platform/middleware"
)

type RouterDependencies struct {
	Config           *config.HttpConfig
	Logger           logger.Logger
	SignupHandler    *signup.Handler
	LivenessHandler  *health.LivenessHandler
	ReadinessHandler *health.ReadinessHandler
	MetricsProvider  *metrics.Provider
}

var errRateLimited = errors.New("too many requests, slow down")

func NewRouter(deps RouterDependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(platformMiddleware.RequestLogger(deps.Logger))
	r.Use(platformMiddleware.MetricsMiddleware(deps.MetricsProvider))
	r.Use(platformMiddleware.Recovery(deps.Logger))
	r.Use(middleware.StripSlashes)
	r.Use(corsHandler(deps.Config.CORS))

	r.Get("/health/live", deps.LivenessHandler.Check)
	r.Get("/health/ready", deps.ReadinessHandler.Check)
	r.Handle("/metrics", deps.MetricsProvider.Handler())

	// Probes and scrapes stay outside the limits so a signup burst cannot
	// take the instance out of rotation.
	r.Route("/api", func(api chi.Router) {
		api.Use(rateLimits(deps.Config.RateLimit)...)
		api.Route("/signups", func(signups chi.Router) {
			mountSignups(signups, deps.SignupHandler)
		})
	})

	return r
}

func mountSignups(r chi.Router, h *signup.Handler) {
	r.Post("/", ErrorHandler(h.Register))
	r.Post("/validate", ErrorHandler(h.ValidateSignup))
	r.Get("/{email}", ErrorHandler(h.GetAccount))
}

func corsHandler(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

// rateLimits returns the instance-wide limiter followed by the per-client one.
// Both answer with the JSON error envelope.
func rateLimits(cfg config.RateLimitConfig) []func(http.Handler) http.Handler {
	limited := httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
		response.RespondError(w, http.StatusTooManyRequests, errRateLimited)
	})

	return []func(http.Handler) http.Handler{
		httprate.Limit(cfg.GlobalRequests, seconds(cfg.GlobalWindow), limited),
		httprate.Limit(cfg.RequestsPerIP, seconds(cfg.WindowSeconds), httprate.WithKeyFuncs(httprate.KeyByIP), limited),
	}
}
