package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/drive-api/internal/config"
	"github.com/KirkDiggler/drive-api/internal/orchestrators/drive"
	"github.com/KirkDiggler/drive-api/internal/pkg/clock"
	"github.com/KirkDiggler/drive-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/drive-api/internal/redis"
	"github.com/KirkDiggler/drive-api/internal/repositories/catalog"
	driverepo "github.com/KirkDiggler/drive-api/internal/repositories/drive"
)

var redisAddr string

func addRedisFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address (overrides REDIS_ADDR)")
}

// loadConfig reads the environment and applies any flags set on cmd
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("http-port") {
		cfg.HTTPPort = httpPort
	}
	if flags.Changed("grpc-port") {
		cfg.GRPCPort = grpcPort
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

type dependencies struct {
	redis        redisclient.Client
	driveService drive.Service
}

func (d *dependencies) Close() {
	if err := d.redis.Close(); err != nil {
		slog.Warn("failed to close redis client", "error", err)
	}
}

func buildDependencies(cfg *config.Config) (*dependencies, error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
		UseTLS:   cfg.RedisTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	driveRepo, err := driverepo.NewRedis(&driverepo.RedisConfig{Client: client})
	if err != nil {
		_ = client.Close() // nolint:errcheck // already failing
		return nil, fmt.Errorf("failed to create drive repository: %w", err)
	}

	catalogRepo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	if err != nil {
		_ = client.Close() // nolint:errcheck // already failing
		return nil, fmt.Errorf("failed to create catalog repository: %w", err)
	}

	service, err := drive.NewOrchestrator(&drive.Config{
		DriveRepo:   driveRepo,
		CatalogRepo: catalogRepo,
		IDGenerator: idgen.NewUUID("drive"),
		Clock:       clock.New(),
		DiceRoller:  dice.DefaultRoller,
	})
	if err != nil {
		_ = client.Close() // nolint:errcheck // already failing
		return nil, fmt.Errorf("failed to create drive orchestrator: %w", err)
	}

	return &dependencies{
		redis:        client,
		driveService: service,
	}, nil
}

func seedCatalog(ctx context.Context, service drive.Service) error {
	out, err := service.SeedCatalog(ctx, &drive.SeedCatalogInput{})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "catalog seeded",
		"set_types_added", out.SetTypesAdded,
		"stat_types_added", out.StatTypesAdded)
	return nil
}

func setupLogger(cfg *config.Config) *slog.Logger {
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	return logger
}
