package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"itemstore/cli/output"
	"itemstore/types"

	"github.com/spf13/cobra"
)

// NewStatsCommand creates a new stats command
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show store statistics",
		Run: func(cmd *cobra.Command, args []string) {
			addr := os.Getenv("ITEMSTORE_ADDR")
			if addr == "" {
				addr = "http://localhost:8080"
			}

			client := &http.Client{Timeout: 10 * time.Second}
			resp, err := client.Get(fmt.Sprintf("%s/api/stats", addr))
			if err != nil {
				output.Error(fmt.Sprintf("Failed to connect to server at %s\n %v", addr, err))
				os.Exit(1)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				output.Error(fmt.Sprintf("Server error: %s\n", resp.Status))
				os.Exit(1)
			}
			var stats types.StatsResponse
			if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
				output.Error(fmt.Sprintf("Invalid response: %v\n", err))
				os.Exit(1)
			}
			output.Info(fmt.Sprintf("Total items: %d", stats.TotalItems))
		},
	}
}
