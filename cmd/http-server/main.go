package main

import (
	"context"
	"fmt"
	"net/url"

	"scaffold/internal/adapters/database"
	"scaffold/internal/adapters/health"
	httpAdapter "scaffold/internal/adapters/http"
	categoryHandler "scaffold/internal/adapters/http/category"
	healthHttp "scaffold/internal/adapters/http/health"
	productHandler "scaffold/internal/adapters/http/product"
	"scaffold/internal/adapters/repository"
	"scaffold/internal/adapters/validator"
	"scaffold/internal/config"
	categoryUseCase "scaffold/internal/core/usecase/category"
	productUseCase "scaffold/internal/core/usecase/product"
	platformHealth "scaffold/internal/platform/health"
	"scaffold/internal/platform/logger"
	"scaffold/internal/platform/metrics"
	"scaffold/internal/version"

	"go.uber.org/fx"
)

func main() {
	fx.New(appModule).Run()
}

var appModule = fx.Options(
	// Platform
	fx.Provide(config.LoadBase),
	fx.Provide(config.LoadHttp),
	fx.Provide(config.LoadDatabase),
	fx.Provide(func(cfg *config.BaseConfig) logger.Config {
		return logger.Config{
			Environment: cfg.Environment,
			Level:       cfg.Logger.Level,
			Format:      cfg.Logger.Format,
		}
	}),
	fx.Provide(logger.NewZapLogger),
	fx.Provide(validator.NewPlaygroundAdapter),
	fx.Provide(database.NewLifecycle),

	// Health Checks
	fx.Provide(fx.Annotate(
		func(cfg *config.DatabaseConfig, db *database.Lifecycle) *health.DatabaseChecker {
			return health.NewDatabaseChecker(db, cfg.SQL.Driver)
		},
		fx.As(new(platformHealth.Checker)),
		fx.ResultTags(`group:"health_checkers"`),
	)),
	fx.Provide(fx.Annotate(
		func(checkers []platformHealth.Checker, cfg *config.HttpConfig) *platformHealth.Manager {
			m := platformHealth.NewManager()
			for _, checker := range checkers {
				m.Register(checker)
			}
			for _, endpoint := range cfg.Upstreams {
				m.Register(health.NewUpstreamChecker(endpoint, upstreamName(endpoint)))
			}
			return m
		},
		fx.ParamTags(`group:"health_checkers"`),
		fx.As(new(platformHealth.ManagerInterface)),
	)),

	// HTTP Server
	fx.Provide(metrics.NewProvider),
	fx.Provide(httpAdapter.NewServer),
	fx.Provide(httpAdapter.NewRouter),
	fx.Provide(productHandler.NewHandler),
	fx.Provide(categoryHandler.NewHandler),
	fx.Provide(func() *healthHttp.LivenessHandler {
		return healthHttp.NewLivenessHandler(version.Get())
	}),
	fx.Provide(func(hm platformHealth.ManagerInterface) *healthHttp.ReadinessHandler {
		return healthHttp.NewReadinessHandler(version.Get(), hm)
	}),
	fx.Provide(func(cfg *config.HttpConfig, log logger.Logger, products *productHandler.Handler, categories *categoryHandler.Handler, liveness *healthHttp.LivenessHandler, readiness *healthHttp.ReadinessHandler, metrics *metrics.Provider) httpAdapter.RouterDependencies {
		return httpAdapter.RouterDependencies{
			Config:           cfg,
			Logger:           log,
			ProductHandler:   products,
			CategoryHandler:  categories,
			LivenessHandler:  liveness,
			ReadinessHandler: readiness,
			MetricsProvider:  metrics,
		}
	}),

	// Domain
	fx.Provide(repository.NewProductRepository),
	fx.Provide(repository.NewCategoryRepository),
	fx.Provide(fx.Annotate(productUseCase.NewUsecase, fx.As(new(productHandler.Manager)))),
	fx.Provide(fx.Annotate(categoryUseCase.NewUsecase, fx.As(new(categoryHandler.Manager)))),

	// Lifecycle Hooks
	fx.Invoke(func(lc fx.Lifecycle, db *database.Lifecycle, srv *httpAdapter.Server) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := db.Start(ctx); err != nil {
					return err
				}
				return repository.EnsureSchema(ctx, db.BunDB())
			},
			OnStop: db.Stop,
		})
		lc.Append(fx.Hook{
			OnStart: srv.Start,
			OnStop:  srv.Stop,
		})
	}),
)

func upstreamName(endpoint string) string {
	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Host == "" {
		return fmt.Sprintf("upstream %s", endpoint)
	}
	return fmt.Sprintf("upstream %s", parsed.Host)
}
