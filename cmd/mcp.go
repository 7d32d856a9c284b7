package cmd

import (
	"github.com/spf13/cobra"

	"plantuml_assistant/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the diagram tools over MCP stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		agent, set, err := buildAgent(cmd.Context())
		if err != nil {
			return err
		}
		s, err := mcpserver.New(agent, set.Types(), Version)
		if err != nil {
			return err
		}
		return mcpserver.Serve(s)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
