// Package health tracks whether the service can reach Redis and publishes the
// result through the gRPC health service and an HTTP probe.
package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/KirkDiggler/drive-api/internal/errors"
	redisclient "github.com/KirkDiggler/drive-api/internal/redis"
)

// ServiceName is the gRPC health service name of the drive API
const ServiceName = "drive.v1.DriveService"

const (
	defaultInterval = 10 * time.Second
	defaultTimeout  = 2 * time.Second
)

// Config holds the dependencies of a Monitor
type Config struct {
	Redis    redisclient.Client
	Health   *health.Server
	Interval time.Duration
	Timeout  time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Redis == nil {
		vb.RequiredField("Redis")
	}
	if c.Health == nil {
		vb.RequiredField("Health")
	}
	if c.Interval < 0 {
		vb.InvalidField("Interval", "cannot be negative")
	}
	if c.Timeout < 0 {
		vb.InvalidField("Timeout", "cannot be negative")
	}
	return vb.Build()
}

// Monitor pings Redis on an interval and flips the serving status
type Monitor struct {
	redis    redisclient.Client
	health   *health.Server
	interval time.Duration
	timeout  time.Duration
	serving  atomic.Bool
}

// NewMonitor creates a monitor. The status starts as NOT_SERVING until the first check.
func NewMonitor(cfg *Config) (*Monitor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Monitor{
		redis:    cfg.Redis,
		health:   cfg.Health,
		interval: cfg.Interval,
		timeout:  cfg.Timeout,
	}
	if m.interval == 0 {
		m.interval = defaultInterval
	}
	if m.timeout == 0 {
		m.timeout = defaultTimeout
	}

	m.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return m, nil
}

// Check pings Redis once and updates the status
func (m *Monitor) Check(ctx context.Context) error {
	err := redisclient.Ping(ctx, m.redis, m.timeout)

	wasServing := m.serving.Load()
	if err != nil {
		m.serving.Store(false)
		m.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		if wasServing {
			slog.WarnContext(ctx, "redis unreachable, marking service not serving", "error", err.Error())
		}
		return err
	}

	m.serving.Store(true)
	m.setStatus(healthpb.HealthCheckResponse_SERVING)
	if !wasServing {
		slog.InfoContext(ctx, "redis reachable, marking service serving")
	}
	return nil
}

// Run checks immediately and then on every interval until ctx is done
func (m *Monitor) Run(ctx context.Context) error {
	_ = m.Check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			_ = m.Check(ctx)
		}
	}
}

// Serving reports the result of the last check
func (m *Monitor) Serving() bool {
	return m.serving.Load()
}

// Shutdown marks every service NOT_SERVING for good
func (m *Monitor) Shutdown() {
	m.serving.Store(false)
	m.health.Shutdown()
}

// ServeHTTP answers the HTTP health probe
func (m *Monitor) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	status := healthpb.HealthCheckResponse_SERVING
	code := http.StatusOK
	if !m.Serving() {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status.String()})
}

func (m *Monitor) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	m.health.SetServingStatus("", status)
	m.health.SetServingStatus(ServiceName, status)
}
