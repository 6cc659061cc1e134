package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"scaffold/internal/config"
	"scaffold/internal/platform/logger"
)

type LifecycleTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *LifecycleTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *LifecycleTestSuite) newSQLiteLifecycle() *Lifecycle {
	return NewLifecycle(&config.DatabaseConfig{
		SQL: config.SQLConfig{
			Driver:       config.DriverSQLite,
			Path:         ":memory:",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
	}, logger.NewNop())
}

func (s *LifecycleTestSuite) TestConnection_BeforeStart() {
	lifecycle := s.newSQLiteLifecycle()

	s.Assert().Nil(lifecycle.Connection())
	s.Assert().Nil(lifecycle.BunDB())
}

func (s *LifecycleTestSuite) TestStartAndStop() {
	lifecycle := s.newSQLiteLifecycle()

	s.Require().NoError(lifecycle.Start(s.ctx))
	s.Require().NotNil(lifecycle.Connection())
	s.Require().NotNil(lifecycle.BunDB())

	s.Require().NoError(lifecycle.Stop(s.ctx))
	s.Assert().Nil(lifecycle.Connection())
}

func (s *LifecycleTestSuite) TestStart_ReplacesExistingConnection() {
	lifecycle := s.newSQLiteLifecycle()

	s.Require().NoError(lifecycle.Start(s.ctx))
	first := lifecycle.Connection()

	s.Require().NoError(lifecycle.Start(s.ctx))
	second := lifecycle.Connection()

	s.Require().NotNil(second)
	s.Assert().NotSame(first, second)

	s.Require().NoError(lifecycle.Stop(s.ctx))
}

func (s *LifecycleTestSuite) TestStart_UnsupportedDriver() {
	lifecycle := NewLifecycle(&config.DatabaseConfig{
		SQL: config.SQLConfig{Driver: "oracle"},
	}, logger.NewNop())

	s.Assert().Error(lifecycle.Start(s.ctx))
	s.Assert().Nil(lifecycle.Connection())
}

func (s *LifecycleTestSuite) TestStop_WithoutStart() {
	lifecycle := s.newSQLiteLifecycle()

	s.Assert().NoError(lifecycle.Stop(s.ctx))
}

func TestLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(LifecycleTestSuite))
}
