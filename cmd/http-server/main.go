package main

import (
	"context"

	"go.uber.org/fx"

	"formvalidator/internal/adapters/database"
	"formvalidator/internal/adapters/health"
	httpAdapter "formvalidator/internal/adapters/http"
	healthHttp "formvalidator/internal/adapters/http/health"
	signupHandler "formvalidator/internal/adapters/http/signup"
	"formvalidator/internal/adapters/observer"
	"formvalidator/internal/adapters/repository/memory"
	postgresRepo "formvalidator/internal/adapters/repository/postgres"
	"formvalidator/internal/adapters/validator"
	"formvalidator/internal/config"
	"formvalidator/internal/core/domain/signup"
	"formvalidator/internal/core/domain/validation"
	"formvalidator/internal/core/ports"
	signupUsecase "formvalidator/internal/core/usecase/signup"
	platformHealth "formvalidator/internal/platform/health"
	"formvalidator/internal/platform/logger"
	"formvalidator/internal/platform/metrics"
	"formvalidator/internal/version"
)

func main() {
	fx.New(appModule).Run()
}

// accountStore is what both repositories offer: the port plus a row count
// for the storage health check.
type accountStore interface {
	ports.AccountRepository
	Count(ctx context.Context) (int, error)
}

func newAccountStore(cfg *config.StorageConfig, db *database.Lifecycle, log logger.Logger) accountStore {
	if cfg.UsesPostgres() {
		repo := postgresRepo.NewRepository(db)
		db.OnConnect(repo.CreateTable)
		log.Info("Using PostgreSQL account storage")
		return repo
	}

	log.Info("Using in-memory account storage")
	return memory.NewRepository()
}

func newPipeline(cfg *config.RulesConfig, log logger.Logger) (*validation.Pipeline, error) {
	policy := cfg.Signup.Policy()
	pipeline, err := signup.NewPipeline(policy, validation.WithParallelism(cfg.Signup.Parallelism))
	if err != nil {
		return nil, err
	}

	log.Info("Signup rules loaded",
		logger.String("allowed_domain", policy.AllowedDomain),
		logger.Int("min_password_length", policy.MinPasswordLength),
		logger.Int("parallelism", cfg.Signup.Parallelism),
	)
	return pipeline, nil
}

// optionalCheckers returns the checkers that depend on deployment settings.
func optionalCheckers(cfg *config.StorageConfig, db *database.Lifecycle) []platformHealth.Checker {
	var checkers []platformHealth.Checker
	if cfg.UsesPostgres() {
		checkers = append(checkers, health.NewDatabaseChecker(db, healthHttp.DatabaseComponent))
	}
	if cfg.Health.UpstreamURL != "" {
		checkers = append(checkers, health.NewUpstreamChecker(cfg.Health.UpstreamURL, healthHttp.UpstreamComponent, cfg.Health.UpstreamTimeout))
	}
	return checkers
}

// warnPermissiveCORS flags a production deployment that accepts any origin.
func warnPermissiveCORS(cfg *config.HttpConfig, log logger.Logger) {
	if !cfg.IsProduction() {
		return
	}
	for _, origin := range cfg.CORS.AllowedOrigins {
		if origin == "*" {
			log.Warn("CORS allows every origin in production", logger.Bool("allow_credentials", cfg.CORS.AllowCredentials))
			return
		}
	}
}

var appModule = fx.Options(
	// Platform
	fx.Provide(config.LoadBase),
	fx.Provide(config.LoadHttp),
	fx.Provide(config.LoadDatabase),
	fx.Provide(config.LoadRules),
	fx.Provide(config.LoadStorage),
	fx.Provide((*config.BaseConfig).LoggerConfig),
	fx.Provide(logger.NewZapLogger),
	fx.Provide(validator.NewPlaygroundAdapter),
	fx.Provide(database.NewDatabaseLifecycle),
	fx.Provide(metrics.NewProvider),

	// Health Checks
	fx.Provide(fx.Annotate(
		func(pipeline *validation.Pipeline, rules *config.RulesConfig) *health.RulesChecker {
			return health.NewRulesChecker(pipeline, rules.Signup.Policy().Probe().Record(), healthHttp.RulesComponent)
		},
		fx.As(new(platformHealth.Checker)),
		fx.ResultTags(`group:"health_checkers"`),
	)),
	fx.Provide(fx.Annotate(
		func(store accountStore) *health.StorageChecker {
			return health.NewStorageChecker(store, healthHttp.StorageComponent)
		},
		fx.As(new(platformHealth.Checker)),
		fx.ResultTags(`group:"health_checkers"`),
	)),
	fx.Provide(fx.Annotate(
		optionalCheckers,
		fx.ResultTags(`group:"health_checkers,flatten"`),
	)),
	fx.Provide(fx.Annotate(
		func(checkers []platformHealth.Checker) *platformHealth.Manager {
			m := platformHealth.NewManager()
			for _, checker := range checkers {
				m.Register(checker)
			}
			return m
		},
		fx.ParamTags(`group:"health_checkers"`),
		fx.As(new(platformHealth.ManagerInterface)),
	)),

	// HTTP Server
	fx.Provide(httpAdapter.NewServer),
	fx.Provide(httpAdapter.NewRouter),
	fx.Provide(signupHandler.NewHandler),
	fx.Provide(func() *healthHttp.LivenessHandler {
		return healthHttp.NewLivenessHandler(version.Get())
	}),
	fx.Provide(func(hm platformHealth.ManagerInterface, storage *config.StorageConfig) *healthHttp.ReadinessHandler {
		return healthHttp.NewReadinessHandler(version.Get(), hm, storage.Health.ReadinessTimeout)
	}),
	fx.Provide(func(cfg *config.HttpConfig, log logger.Logger, signups *signupHandler.Handler, liveness *healthHttp.LivenessHandler, readiness *healthHttp.ReadinessHandler, metrics *metrics.Provider) httpAdapter.RouterDependencies {
		return httpAdapter.RouterDependencies{
			Config:           cfg,
			Logger:           log,
			SignupHandler:    signups,
			LivenessHandler:  liveness,
			ReadinessHandler: readiness,
			MetricsProvider:  metrics,
		}
	}),

	// Domain
	fx.Provide(newPipeline),
	fx.Provide(func(p *validation.Pipeline) signupUsecase.FormValidator { return p }),
	fx.Provide(newAccountStore),
	fx.Provide(func(store accountStore) ports.AccountRepository { return store }),
	fx.Provide(fx.Annotate(observer.NewMetricsObserver, fx.As(new(signupUsecase.Observer)))),
	fx.Provide(fx.Annotate(signupUsecase.NewUsecase, fx.As(new(signupHandler.Manager)))),

	fx.Invoke(warnPermissiveCORS),

	// Lifecycle Hooks
	fx.Invoke(func(lc fx.Lifecycle, storage *config.StorageConfig, db *database.Lifecycle, srv *httpAdapter.Server, log logger.Logger) {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return logger.Sync(log) },
		})
		if storage.UsesPostgres() {
			lc.Append(fx.Hook{
				OnStart: db.Start,
				OnStop:  db.Stop,
			})
		}
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				log.Info("Starting formvalidator", logger.String("version", version.Info().String()))
				return srv.Start(ctx)
			},
			OnStop: srv.Stop,
		})
	}),

	fx.NopLogger,
)
