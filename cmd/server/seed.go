package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the drive catalog",
	Long:  `Write the known stat names and the default set types into Redis. Existing entries are kept.`,
	RunE:  runSeed,
}

func init() {
	addRedisFlag(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(cfg)

	deps, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	if err := seedCatalog(ctx, deps.driveService); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}
