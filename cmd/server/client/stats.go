package client

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/spf13/cobra"

	v1 "github.com/KirkDiggler/drive-api/internal/handlers/drive/v1"
)

var pairingStats []string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics or a substat pairing",
	Long: `Without --pair the command prints the collection summary. With one or more
--pair flags it compares how often the drives carry all of those substats
against the uniform expectation.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringSliceVar(&pairingStats, "pair", nil, "Substat to include in a pairing, repeat up to 4 times")
}

func runStats(_ *cobra.Command, _ []string) error {
	ctx, cancel := withTimeout()
	defer cancel()

	client := newAPIClient(serverAddr)

	if len(pairingStats) > 0 {
		var resp v1.PairingResponse
		req := &v1.PairingRequest{SelectedStats: pairingStats}
		if err := client.do(ctx, http.MethodPost, "/stats/pairing", req, &resp); err != nil {
			return fmt.Errorf("failed to calculate pairing: %w", err)
		}

		fmt.Printf("Pairing %v over %d drives\n", resp.SelectedStats, resp.TotalPieces)
		fmt.Printf("  Theoretical: %.2f%%\n", resp.Theoretical)
		fmt.Printf("  Actual: %.2f%% (%d matches)\n", resp.Actual, resp.MatchCount)
		fmt.Printf("  Difference: %+.2f%%\n", resp.Difference)
		if resp.Expectation > 0 {
			fmt.Printf("  About 1 in %d drives\n", resp.Expectation)
		}
		return nil
	}

	var resp v1.StatisticsResponse
	if err := client.do(ctx, http.MethodGet, "/stats", nil, &resp); err != nil {
		return fmt.Errorf("failed to get statistics: %w", err)
	}

	fmt.Printf("Drives: %d across %d sets\n", resp.TotalPieces, resp.TotalSets)
	fmt.Printf("Average substats: %.1f\n", resp.AvgSubstats)

	names := make([]string, 0, len(resp.SubstatFrequency))
	for name := range resp.SubstatFrequency {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return resp.SubstatFrequency[names[i]].Count > resp.SubstatFrequency[names[j]].Count
	})

	fmt.Printf("\nSubstat frequency:\n")
	for _, name := range names {
		freq := resp.SubstatFrequency[name]
		fmt.Printf("  - %s: %d (%.2f%%)\n", name, freq.Count, freq.Percentage)
	}
	return nil
}
