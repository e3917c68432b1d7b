package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/drive-api/internal/config"
	v1 "github.com/KirkDiggler/drive-api/internal/handlers/drive/v1"
	"github.com/KirkDiggler/drive-api/internal/handlers/middleware"
	"github.com/KirkDiggler/drive-api/internal/health"
)

const seedTimeout = 10 * time.Second

var (
	httpPort int
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP and gRPC servers",
	Long: `Start the drive HTTP API together with the gRPC health service.
Both stop gracefully on SIGINT or SIGTERM.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "http-port", 8080, "HTTP server port (overrides HTTP_PORT)")
	serverCmd.Flags().IntVar(&grpcPort, "grpc-port", 50051, "gRPC server port (overrides GRPC_PORT)")
	addRedisFlag(serverCmd)
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	if cfg.SeedCatalog {
		seedCtx, cancel := context.WithTimeout(ctx, seedTimeout)
		if err := seedCatalog(seedCtx, deps.driveService); err != nil {
			logger.WarnContext(ctx, "catalog seeding failed, continuing", "error", err)
		}
		cancel()
	}

	healthServer := grpchealth.NewServer()
	monitor, err := health.NewMonitor(&health.Config{
		Redis:    deps.redis,
		Health:   healthServer,
		Interval: cfg.HealthInterval,
	})
	if err != nil {
		return fmt.Errorf("failed to create health monitor: %w", err)
	}

	httpServer, err := newHTTPServer(cfg, logger, deps, monitor)
	if err != nil {
		return err
	}
	grpcServer := newGRPCServer(logger, healthServer)

	httpLis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.HTTPPort))
	if err != nil {
		return fmt.Errorf("failed to listen on http port: %w", err)
	}
	grpcLis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		_ = httpLis.Close() // nolint:errcheck // already failing
		return fmt.Errorf("failed to listen on grpc port: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", "port", cfg.HTTPPort)
		if err := httpServer.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("grpc server listening", "port", cfg.GRPCPort)
		if err := grpcServer.Serve(grpcLis); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return monitor.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
		monitor.Shutdown()
		return shutdown(logger, cfg.ShutdownTimeout, httpServer, grpcServer)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}

func newHTTPServer(cfg *config.Config, logger *slog.Logger, deps *dependencies, monitor *health.Monitor) (*http.Server, error) {
	handler, err := v1.NewHandler(&v1.HandlerConfig{
		DriveService: deps.driveService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create drive handler: %w", err)
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("GET /healthz", monitor)

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           middleware.Chain(mux, middleware.Recovery(logger), middleware.AccessLog(logger)),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

func newGRPCServer(logger *slog.Logger, healthServer *grpchealth.Server) *grpc.Server {
	logFunc := grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	})

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logFunc),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logFunc),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	reflection.Register(srv)

	return srv
}

// shutdown drains both servers. gRPC falls back to a hard stop once the
// timeout passes.
func shutdown(logger *slog.Logger, timeout time.Duration, httpServer *http.Server, grpcServer *grpc.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	err := httpServer.Shutdown(ctx)
	if err != nil {
		logger.Warn("http shutdown did not complete", "error", err)
	}

	select {
	case <-stopped:
	case <-ctx.Done():
		logger.Warn("grpc graceful stop timed out, forcing stop")
		grpcServer.Stop()
	}

	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
