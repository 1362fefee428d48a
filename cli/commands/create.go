package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"itemstore/cli/output"
	"itemstore/types"

	"github.com/spf13/cobra"
)

// NewCreateCommand creates a new create command
func NewCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <id> <name>",
		Short: "Create an item",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				output.Error(fmt.Sprintf("Item id must be an integer, got '%s'", args[0]))
				os.Exit(1)
			}
			name := args[1]
			addr := os.Getenv("ITEMSTORE_ADDR")
			if addr == "" {
				addr = "http://localhost:8080"
			}

			client := &http.Client{Timeout: 10 * time.Second}
			body, _ := json.Marshal(types.CreateItemRequest{ID: &id, FirstName: &name})
			resp, err := client.Post(fmt.Sprintf("%s/api/items", addr), "application/json", bytes.NewReader(body))
			if err != nil {
				output.Error(fmt.Sprintf("Failed to connect to server at %s\n %v", addr, err))
				os.Exit(1)
			}
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusConflict {
				output.Warn(fmt.Sprintf("Item %d already exists", id))
				os.Exit(1)
			}
			if resp.StatusCode != http.StatusCreated {
				output.Error(fmt.Sprintf("Server error: %s\n", resp.Status))
				os.Exit(1)
			}
			output.Success(fmt.Sprintf("Created item %d = %s\n", id, name))
		},
	}
}
