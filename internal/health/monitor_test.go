package health_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/KirkDiggler/drive-api/internal/errors"
	"github.com/KirkDiggler/drive-api/internal/health"
	"github.com/KirkDiggler/drive-api/internal/testutils"
)

type MonitorTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	server  *grpchealth.Server
	monitor *health.Monitor
	ctx     context.Context
}

func (s *MonitorTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.server = grpchealth.NewServer()
	s.ctx = context.Background()

	monitor, err := health.NewMonitor(&health.Config{
		Redis:    client,
		Health:   s.server,
		Interval: 10 * time.Millisecond,
		Timeout:  100 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.monitor = monitor
}

func (s *MonitorTestSuite) status(service string) healthpb.HealthCheckResponse_ServingStatus {
	resp, err := s.server.Check(s.ctx, &healthpb.HealthCheckRequest{Service: service})
	s.Require().NoError(err)
	return resp.GetStatus()
}

func (s *MonitorTestSuite) TestNewMonitorValidation() {
	_, err := health.NewMonitor(&health.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Redis")
	s.Contains(err.Error(), "Health")
}

func (s *MonitorTestSuite) TestStartsNotServing() {
	s.False(s.monitor.Serving())
	s.Equal(healthpb.HealthCheckResponse_NOT_SERVING, s.status(""))
	s.Equal(healthpb.HealthCheckResponse_NOT_SERVING, s.status(health.ServiceName))
}

func (s *MonitorTestSuite) TestCheckFlipsStatus() {
	s.Require().NoError(s.monitor.Check(s.ctx))
	s.True(s.monitor.Serving())
	s.Equal(healthpb.HealthCheckResponse_SERVING, s.status(health.ServiceName))

	s.mr.Close()
	s.Error(s.monitor.Check(s.ctx))
	s.False(s.monitor.Serving())
	s.Equal(healthpb.HealthCheckResponse_NOT_SERVING, s.status(""))
}

func (s *MonitorTestSuite) TestRunStopsWithContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan error, 1)
	go func() { done <- s.monitor.Run(ctx) }()

	s.Eventually(s.monitor.Serving, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(time.Second):
		s.Fail("monitor did not stop")
	}
}

func (s *MonitorTestSuite) TestServeHTTP() {
	rec := httptest.NewRecorder()
	s.monitor.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Contains(rec.Body.String(), "NOT_SERVING")

	s.Require().NoError(s.monitor.Check(s.ctx))

	rec = httptest.NewRecorder()
	s.monitor.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"SERVING"}`, rec.Body.String())
}

func (s *MonitorTestSuite) TestShutdown() {
	s.Require().NoError(s.monitor.Check(s.ctx))
	s.monitor.Shutdown()

	s.False(s.monitor.Serving())
	s.Equal(healthpb.HealthCheckResponse_NOT_SERVING, s.status(health.ServiceName))
}

func TestMonitorTestSuite(t *testing.T) {
	suite.Run(t, new(MonitorTestSuite))
}
