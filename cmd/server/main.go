// Package main is the entry point for the drive API
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/drive-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "drive-api",
	Short: "Drive form engine and inventory API",
	Long: `drive-api validates drive forms, stores drive pieces in Redis and
reports statistics over the stored collection.`,
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
