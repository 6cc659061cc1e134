package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"scaffold/internal/adapters/http/category"
	"scaffold/internal/adapters/http/health"
	"scaffold/internal/adapters/http/product"
	"scaffold/internal/config"
	"scaffold/internal/platform/logger"
	"scaffold/internal/platform/metrics"
	platformMiddleware "scaffold/internal/platform/middleware"
)

type RouterDependencies struct {
	Config           *config.HttpConfig
	Logger           logger.Logger
	ProductHandler   *product.Handler
	CategoryHandler  *category.Handler
	LivenessHandler  *health.LivenessHandler
	ReadinessHandler *health.ReadinessHandler
	MetricsProvider  *metrics.Provider
}

func NewRouter(deps RouterDependencies) http.Handler {
	cfg := deps.Config
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(platformMiddleware.RequestLogger(deps.Logger))
	r.Use(platformMiddleware.Metrics(deps.MetricsProvider))
	r.Use(platformMiddleware.Recovery(deps.Logger))
	r.Use(middleware.StripSlashes)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Use(httprate.LimitAll(
		cfg.RateLimit.GlobalRequests,
		time.Duration(cfg.RateLimit.GlobalWindow)*time.Second,
	))
	r.Use(httprate.LimitByIP(
		cfg.RateLimit.RequestsPerIP,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	))

	r.Get("/health/live", deps.LivenessHandler.Check)
	r.Get("/health/ready", deps.ReadinessHandler.Check)

	r.Handle("/metrics", deps.MetricsProvider.Handler())

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Route("/products", func(productRouter chi.Router) {
			productRouter.Get("/", ErrorHandler(deps.ProductHandler.ListProducts))
			productRouter.Post("/", ErrorHandler(deps.ProductHandler.CreateProduct))
			productRouter.Get("/{id}", ErrorHandler(deps.ProductHandler.GetProduct))
			productRouter.Put("/{id}", ErrorHandler(deps.ProductHandler.UpdateProduct))
			productRouter.Delete("/{id}", ErrorHandler(deps.ProductHandler.DeleteProduct))
		})
		apiRouter.Route("/categories", func(categoryRouter chi.Router) {
			categoryRouter.Get("/", ErrorHandler(deps.CategoryHandler.ListCategories))
			categoryRouter.Post("/", ErrorHandler(deps.CategoryHandler.CreateCategory))
			categoryRouter.Get("/{slug}", ErrorHandler(deps.CategoryHandler.GetCategory))
			categoryRouter.Delete("/{slug}", ErrorHandler(deps.CategoryHandler.DeleteCategory))
		})
	})

	return r
}
