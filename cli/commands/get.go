package commands

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"itemstore/cli/output"

	"github.com/spf13/cobra"
)

// NewGetCommand creates a new get command
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an item by id",
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
			resp, err := client.Get(fmt.Sprintf("%s/api/items/%d", addr, id))
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
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				output.Error(fmt.Sprintf("Invalid response: %v", err))
				return
			}
			output.Success(fmt.Sprintf("Item: %d", id))
			output.Info(fmt.Sprintf("Value: %s", string(body)))
		},
	}
}
