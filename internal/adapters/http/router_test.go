package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	categoryHandler "scaffold/internal/adapters/http/category"
	healthHandler "scaffold/internal/adapters/http/health"
	productHandler "scaffold/internal/adapters/http/product"
	"scaffold/internal/adapters/validator"
	"scaffold/internal/config"
	categoryDomain "scaffold/internal/core/domain/category"
	productDomain "scaffold/internal/core/domain/product"
	platformHealth "scaffold/internal/platform/health"
	"scaffold/internal/platform/logger"
	"scaffold/internal/platform/metrics"
	"scaffold/internal/platform/repository"
)

type stubProductManager struct{}

func (stubProductManager) CreateProduct(ctx context.Context, name string, status int, priceCents int64) (*productDomain.Entity, error) {
	return &productDomain.Entity{ID: 1, Name: name, Status: status, PriceCents: priceCents}, nil
}

func (stubProductManager) GetProduct(ctx context.Context, id int64) (*productDomain.Entity, error) {
	return &productDomain.Entity{ID: id, Name: "Widget"}, nil
}

func (stubProductManager) UpdateProduct(ctx context.Context, id int64, name string, status int, priceCents int64) (*productDomain.Entity, error) {
	return &productDomain.Entity{ID: id, Name: name, Status: status, PriceCents: priceCents}, nil
}

func (stubProductManager) DeleteProduct(ctx context.Context, id int64) error {
	return nil
}

func (stubProductManager) ListProducts(ctx context.Context, page, pageSize int, filter productDomain.Filter) (*repository.Page[productDomain.Entity], error) {
	return repository.NewPage[productDomain.Entity](repository.NewPageRequest(page, pageSize)), nil
}

type stubCategoryManager struct{}

func (stubCategoryManager) CreateCategory(ctx context.Context, slug, name string, status int) (*categoryDomain.Entity, error) {
	return &categoryDomain.Entity{Slug: slug, Name: name, Status: status}, nil
}

func (stubCategoryManager) GetCategory(ctx context.Context, slug string) (*categoryDomain.Entity, error) {
	return &categoryDomain.Entity{Slug: slug, Name: "Category"}, nil
}

func (stubCategoryManager) DeleteCategory(ctx context.Context, slug string) error {
	return nil
}

func (stubCategoryManager) ListCategories(ctx context.Context, page, pageSize int, name string) (*repository.Page[categoryDomain.Entity], error) {
	return repository.NewPage[categoryDomain.Entity](repository.NewPageRequest(page, pageSize)), nil
}

type stubHealthManager struct{}

func (stubHealthManager) Register(checker platformHealth.Checker) {}

func (stubHealthManager) CheckAll(ctx context.Context) map[string]platformHealth.CheckResult {
	return map[string]platformHealth.CheckResult{
		"postgres": {Status: platformHealth.StatusHealthy},
	}
}

func (stubHealthManager) IsHealthy(ctx context.Context) bool { return true }

type RouterTestSuite struct {
	suite.Suite
	router http.Handler
}

func (s *RouterTestSuite) SetupTest() {
	cfg := &config.HttpConfig{
		Server: config.HttpServerConfig{
			Host:         "localhost",
			Port:         8080,
			ReadTimeout:  30,
			WriteTimeout: 30,
			IdleTimeout:  120,
		},
		RateLimit: config.RateLimitConfig{
			GlobalRequests: 1000,
			GlobalWindow:   60,
			RequestsPerIP:  100,
			WindowSeconds:  60,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         86400,
		},
	}

	metricsProvider, err := metrics.NewProvider()
	s.Require().NoError(err)

	validatorAdapter := validator.NewPlaygroundAdapter()

	s.router = NewRouter(RouterDependencies{
		Config:           cfg,
		Logger:           logger.NewNop(),
		ProductHandler:   productHandler.NewHandler(stubProductManager{}, validatorAdapter),
		CategoryHandler:  categoryHandler.NewHandler(stubCategoryManager{}, validatorAdapter),
		LivenessHandler:  healthHandler.NewLivenessHandler("1.0.0"),
		ReadinessHandler: healthHandler.NewReadinessHandler("1.0.0", stubHealthManager{}),
		MetricsProvider:  metricsProvider,
	})
}

func (s *RouterTestSuite) serve(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterTestSuite) TestHealthEndpoints() {
	s.Assert().Equal(http.StatusOK, s.serve(http.MethodGet, "/health/live").Code)
	s.Assert().Equal(http.StatusOK, s.serve(http.MethodGet, "/health/ready").Code)
}

func (s *RouterTestSuite) TestMetricsEndpoint() {
	s.Assert().Equal(http.StatusOK, s.serve(http.MethodGet, "/metrics").Code)
}

func (s *RouterTestSuite) TestProductRoutes() {
	s.Assert().Equal(http.StatusOK, s.serve(http.MethodGet, "/api/products").Code)
	s.Assert().Equal(http.StatusOK, s.serve(http.MethodGet, "/api/products/1").Code)
	s.Assert().Equal(http.StatusNoContent, s.serve(http.MethodDelete, "/api/products/1").Code)
	s.Assert().Equal(http.StatusBadRequest, s.serve(http.MethodGet, "/api/products/not-a-number").Code)
}

func (s *RouterTestSuite) TestCategoryRoutes() {
	s.Assert().Equal(http.StatusOK, s.serve(http.MethodGet, "/api/categories").Code)
	s.Assert().Equal(http.StatusOK, s.serve(http.MethodGet, "/api/categories/home-goods").Code)
	s.Assert().Equal(http.StatusNoContent, s.serve(http.MethodDelete, "/api/categories/home-goods").Code)
}

func (s *RouterTestSuite) TestUnknownRoute() {
	s.Assert().Equal(http.StatusNotFound, s.serve(http.MethodGet, "/api/unknown").Code)
}

func (s *RouterTestSuite) TestTrailingSlashIsStripped() {
	s.Assert().Equal(http.StatusOK, s.serve(http.MethodGet, "/api/products/").Code)
}

func (s *RouterTestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Assert().Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
