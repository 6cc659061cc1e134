package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"scaffold/internal/adapters/database"
	"scaffold/internal/config"
	platformHealth "scaffold/internal/platform/health"
	"scaffold/internal/platform/logger"
)

func sqliteConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		SQL: config.SQLConfig{
			Driver:       config.DriverSQLite,
			Path:         ":memory:",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
	}
}

type DatabaseCheckerTestSuite struct {
	suite.Suite
	lifecycle *database.Lifecycle
	ctx       context.Context
}

func (s *DatabaseCheckerTestSuite) SetupTest() {
	s.lifecycle = database.NewLifecycle(sqliteConfig(), logger.NewNop())
	s.ctx = context.Background()
}

func (s *DatabaseCheckerTestSuite) TestName() {
	checker := NewDatabaseChecker(s.lifecycle, "sqlite")

	s.Assert().Equal("sqlite", checker.Name())
}

func (s *DatabaseCheckerTestSuite) TestCheck_NotStarted() {
	checker := NewDatabaseChecker(s.lifecycle, "sqlite")

	result := checker.Check(s.ctx)

	s.Assert().Equal(platformHealth.StatusUnhealthy, result.Status)
	s.Assert().Equal("database connection is not initialized", result.Message)
}

func (s *DatabaseCheckerTestSuite) TestCheck_Healthy() {
	s.Require().NoError(s.lifecycle.Start(s.ctx))
	defer func() { s.Require().NoError(s.lifecycle.Stop(s.ctx)) }()

	checker := NewDatabaseChecker(s.lifecycle, "sqlite")
	result := checker.Check(s.ctx)

	s.Assert().Equal(platformHealth.StatusHealthy, result.Status)
}

func (s *DatabaseCheckerTestSuite) TestCheck_AfterStop() {
	s.Require().NoError(s.lifecycle.Start(s.ctx))
	s.Require().NoError(s.lifecycle.Stop(s.ctx))

	checker := NewDatabaseChecker(s.lifecycle, "sqlite")
	result := checker.Check(s.ctx)

	s.Assert().Equal(platformHealth.StatusUnhealthy, result.Status)
}

func TestDatabaseCheckerTestSuite(t *testing.T) {
	suite.Run(t, new(DatabaseCheckerTestSuite))
}

type UpstreamCheckerTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *UpstreamCheckerTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *UpstreamCheckerTestSuite) TestName() {
	checker := NewUpstreamChecker("http://inventory:8080/health/live", "upstream inventory")

	s.Assert().Equal("upstream inventory", checker.Name())
}

func (s *UpstreamCheckerTestSuite) TestCheck_Healthy() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	checker := NewUpstreamChecker(srv.URL, "upstream")
	result := checker.Check(s.ctx)

	s.Assert().Equal(platformHealth.StatusHealthy, result.Status)
	s.Assert().Contains(result.Message, "200")
}

func (s *UpstreamCheckerTestSuite) TestCheck_Non2xxResponse() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	checker := NewUpstreamChecker(srv.URL, "upstream")
	result := checker.Check(s.ctx)

	s.Assert().Equal(platformHealth.StatusUnhealthy, result.Status)
	s.Assert().Contains(result.Message, "503")
}

func (s *UpstreamCheckerTestSuite) TestCheck_ConnectionRefused() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	checker := NewUpstreamChecker(srv.URL, "upstream")
	result := checker.Check(s.ctx)

	s.Assert().Equal(platformHealth.StatusUnhealthy, result.Status)
	s.Assert().NotEmpty(result.Error)
}

func TestUpstreamCheckerTestSuite(t *testing.T) {
	suite.Run(t, new(UpstreamCheckerTestSuite))
}
