package cli

import (
	"itemstore/cli/commands"

	"github.com/spf13/cobra"
)

type CLI struct {
	root *cobra.Command
}

func NewCLI() *CLI {
	cli := &CLI{}

	rootCmd := &cobra.Command{
		Use:   "itemstore-cli",
		Short: "An in-memory item store CLI",
		Long:  "Itemstore CLI is a command-line client for the itemstore HTTP API",
	}

	// Create command registry and register all commands
	registry := commands.NewCommandRegistry()
	registry.RegisterCommands(rootCmd)

	cli.root = rootCmd

	return cli
}

func (c *CLI) Run() error {
	return c.root.Execute()
}
