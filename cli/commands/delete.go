package commands

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"itemstore/cli/output"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates a new delete command
func NewDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				output.Error(fmt.Sprintf("Item id must be an integer, got '%s'", args[0]))
				return
			}
			addr := os.Getenv("ITEMSTORE_ADDR")
			if addr == "" {
				addr = "http://localhost:8080"
			}

			client := &http.Client{Timeout: 10 * time.Second}
			req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/items/%d", addr, id), nil)
			if err != nil {
				output.Error(fmt.Sprintf("Failed to create request: %v", err))
				return
			}
			resp, err := client.Do(req)
			if err != nil {
				output.Error(fmt.Sprintf("Failed to connect to server at %s\n %v", addr, err))
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusNotFound {
				output.Warn(fmt.Sprintf("Item %d not found", id))
				return
			}
			if resp.StatusCode != http.StatusOK {
				output.Error(fmt.Sprintf("Server error: %s", resp.Status))
				return
			}
			output.Success(fmt.Sprintf("Deleted item %d", id))
		},
	}
}
