package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	v1 "github.com/KirkDiggler/drive-api/internal/handlers/drive/v1"
)

var (
	driveID string

	page    int
	perPage int

	setName  string
	position int
	mainStat string
	substats []string

	upgradeType    string
	newSubstatName string
	substatID      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored drives, newest first",
	RunE:  runList,
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a drive by ID",
	RunE:  runGet,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new drive",
	Long:  `Add a new drive. The main stat must be legal for the position and 3 or 4 substats are required.`,
	RunE:  runAdd,
}

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade a drive",
	Long: `Upgrade a drive either by adding a new substat (--type new) or by
raising an existing substat line (--type existing --substat-id ...).`,
	RunE: runUpgrade,
}

func init() {
	listCmd.Flags().IntVar(&page, "page", 1, "Page number")
	listCmd.Flags().IntVar(&perPage, "per-page", 20, "Drives per page")

	getCmd.Flags().StringVar(&driveID, "drive-id", "", "Drive ID (required)")
	_ = getCmd.MarkFlagRequired("drive-id") // nolint:errcheck // safe to ignore in init

	addCmd.Flags().StringVar(&setName, "set", "", "Set name (required)")
	addCmd.Flags().IntVar(&position, "position", 0, "Slot position 1-6 (required)")
	addCmd.Flags().StringVar(&mainStat, "main-stat", "", "Main stat name (required)")
	addCmd.Flags().StringSliceVar(&substats, "substat", nil, "Substat name, repeat for each line")
	_ = addCmd.MarkFlagRequired("set")       // nolint:errcheck // safe to ignore in init
	_ = addCmd.MarkFlagRequired("position")  // nolint:errcheck // safe to ignore in init
	_ = addCmd.MarkFlagRequired("main-stat") // nolint:errcheck // safe to ignore in init

	upgradeCmd.Flags().StringVar(&driveID, "drive-id", "", "Drive ID (required)")
	upgradeCmd.Flags().StringVar(&upgradeType, "type", "new", "Upgrade type: new or existing")
	upgradeCmd.Flags().StringVar(&newSubstatName, "substat-name", "", "Substat to add, random when empty")
	upgradeCmd.Flags().StringVar(&substatID, "substat-id", "", "Substat line to raise")
	_ = upgradeCmd.MarkFlagRequired("drive-id") // nolint:errcheck // safe to ignore in init
}

func runList(_ *cobra.Command, _ []string) error {
	ctx, cancel := withTimeout()
	defer cancel()

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	var resp v1.ListDrivesResponse
	if err := newAPIClient(serverAddr).do(ctx, http.MethodGet, "/pieces?"+query.Encode(), nil, &resp); err != nil {
		return fmt.Errorf("failed to list drives: %w", err)
	}

	p := resp.Pagination
	fmt.Printf("Drives (page %d of %d, %d total)\n\n", p.CurrentPage, p.TotalPages, p.TotalItems)
	for _, d := range resp.Drives {
		fmt.Printf("  - %s  %s  %d号位  %s  %v\n", d.ID, d.SetName, d.Position, d.MainStat, d.Substats)
	}
	return nil
}

func runGet(_ *cobra.Command, _ []string) error {
	ctx, cancel := withTimeout()
	defer cancel()

	var resp v1.DriveResponse
	if err := newAPIClient(serverAddr).do(ctx, http.MethodGet, "/pieces/"+url.PathEscape(driveID), nil, &resp); err != nil {
		return fmt.Errorf("failed to get drive: %w", err)
	}

	printDrive(&resp)
	return nil
}

func runAdd(_ *cobra.Command, _ []string) error {
	ctx, cancel := withTimeout()
	defer cancel()

	req := &v1.AddDriveRequest{
		SetName:  setName,
		Position: position,
		MainStat: mainStat,
		Substats: substats,
	}

	var resp v1.DriveMessageResponse
	if err := newAPIClient(serverAddr).do(ctx, http.MethodPost, "/add", req, &resp); err != nil {
		return fmt.Errorf("failed to add drive: %w", err)
	}

	fmt.Printf("%s\n\n", resp.Message)
	if resp.Drive != nil {
		printDrive(resp.Drive)
	}
	return nil
}

func runUpgrade(_ *cobra.Command, _ []string) error {
	ctx, cancel := withTimeout()
	defer cancel()

	req := &v1.UpgradeDriveRequest{
		UpgradeType:    upgradeType,
		NewSubstatName: newSubstatName,
		SubstatID:      substatID,
	}

	var resp v1.UpgradeResponse
	path := "/pieces/" + url.PathEscape(driveID) + "/upgrade"
	if err := newAPIClient(serverAddr).do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return fmt.Errorf("failed to upgrade drive: %w", err)
	}

	fmt.Printf("%s\n", resp.Message)
	if resp.Result != nil {
		fmt.Printf("Substat: %s +%d\n", resp.Result.SubstatName, resp.Result.UpgradeCount)
	}
	fmt.Printf("Total Upgrades: %d\n", resp.NewTotalUpgrades)
	return nil
}
