package commands

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"itemstore/cli/output"

	"github.com/spf13/cobra"
)

// NewUpdateCommand creates a new update command
func NewUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <value>",
		Short: "Update an existing item",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				output.Error(fmt.Sprintf("Item id must be an integer, got '%s'", args[0]))
				os.Exit(1)
			}
			value := args[1]
			addr := os.Getenv("ITEMSTORE_ADDR")
			if addr == "" {
				addr = "http://localhost:8080"
			}

			client := &http.Client{Timeout: 10 * time.Second}
			target := fmt.Sprintf("%s/api/items/%d?value=%s", addr, id, url.QueryEscape(value))
			req, err := http.NewRequest(http.MethodPut, target, nil)
			if err != nil {
				output.Error(fmt.Sprintf("Failed to create request: %v", err))
				os.Exit(1)
			}
			resp, err := client.Do(req)
			if err != nil {
				output.Error(fmt.Sprintf("Failed to connect to server at %s\n %v", addr, err))
				os.Exit(1)
			}
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusNotFound {
				output.Warn(fmt.Sprintf("Item %d not found", id))
				os.Exit(1)
			}
			if resp.StatusCode != http.StatusOK {
				output.Error(fmt.Sprintf("Server error: %s\n", resp.Status))
				os.Exit(1)
			}
			output.Success(fmt.Sprintf("Updated item %d = %s\n", id, value))
		},
	}
}
