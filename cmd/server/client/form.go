package client

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/drive-api/internal/forms/driveform"
	v1 "github.com/KirkDiggler/drive-api/internal/handlers/drive/v1"
)

var (
	formSet      string
	formPosition int
	formMain     string
	formSubstats []string
)

var checkFormCmd = &cobra.Command{
	Use:   "check-form",
	Short: "Ask the server whether a drive form is complete",
	RunE:  runCheckForm,
}

func init() {
	checkFormCmd.Flags().StringVar(&formSet, "set", "", "Set name")
	checkFormCmd.Flags().IntVar(&formPosition, "position", 1, "Slot position 1-6")
	checkFormCmd.Flags().StringVar(&formMain, "main-stat", "", "Main stat name")
	checkFormCmd.Flags().StringSliceVar(&formSubstats, "substat", nil, "Substat name, repeat for each line")
}

func runCheckForm(_ *cobra.Command, _ []string) error {
	ctx, cancel := withTimeout()
	defer cancel()

	req := &v1.CheckFormRequest{
		Form: &driveform.Form{
			SetName:             formSet,
			Slot:                formPosition,
			PrimaryAttribute:    formMain,
			SecondaryAttributes: formSubstats,
		},
	}

	var resp v1.FormReportResponse
	if err := newAPIClient(serverAddr).do(ctx, http.MethodPost, "/form/check", req, &resp); err != nil {
		return fmt.Errorf("failed to check form: %w", err)
	}

	fmt.Printf("Valid: %v\n", resp.Valid)
	fmt.Printf("Hint: %s\n", resp.Hint)
	fmt.Printf("Legal main stats: %v\n", resp.LegalPrimaries)
	if len(resp.Problems) > 0 {
		fmt.Printf("\nProblems:\n")
		for _, p := range resp.Problems {
			fmt.Printf("  - %s (%s)\n", p.Code, p.Field)
		}
	}
	return nil
}
