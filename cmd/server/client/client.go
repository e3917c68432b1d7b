// Package client provides commands that exercise the drive HTTP API
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	v1 "github.com/KirkDiggler/drive-api/internal/handlers/drive/v1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the drive API",
	Long:  `Client commands call a running drive API over HTTP and print the results.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "addr", "http://localhost:8080", "HTTP server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Drive commands
	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(addCmd)
	ClientCmd.AddCommand(upgradeCmd)

	// Form and statistics commands
	ClientCmd.AddCommand(checkFormCmd)
	ClientCmd.AddCommand(statsCmd)
}

// APIError is a non-2xx answer from the server
type APIError struct {
	Status int
	Code   string
	Detail string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server returned %d %s: %s", e.Status, e.Code, e.Detail)
}

type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(addr string) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(addr, "/") + v1.RoutePrefix,
		http:    &http.Client{},
	}
}

// do sends body as JSON and decodes a 2xx answer into out when out is not nil
func (c *apiClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody v1.ErrorResponse
		raw, _ := io.ReadAll(resp.Body) // nolint:errcheck // best effort detail
		if err := json.Unmarshal(raw, &errBody); err == nil && errBody.Error != "" {
			apiErr.Code = errBody.Code
			apiErr.Detail = errBody.Error
		} else {
			apiErr.Detail = strings.TrimSpace(string(raw))
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func printDrive(d *v1.DriveResponse) {
	fmt.Printf("Drive ID: %s\n", d.ID)
	fmt.Printf("Set: %s\n", d.SetName)
	fmt.Printf("Position: %d\n", d.Position)
	fmt.Printf("Main Stat: %s\n", d.MainStat)
	fmt.Printf("Total Upgrades: %d\n", d.TotalUpgrades)
	if len(d.SubstatsWithLevels) > 0 {
		fmt.Printf("Substats:\n")
		for _, sub := range d.SubstatsWithLevels {
			fmt.Printf("  - %s +%d (%s)\n", sub.Name, sub.UpgradeCount, sub.ID)
		}
	}
}
