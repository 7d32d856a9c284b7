package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"plantuml_assistant/generator"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a diagram from a description and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		diagramType, _ := cmd.Flags().GetString("type")

		agent, _, err := buildAgent(cmd.Context())
		if err != nil {
			return err
		}
		uml, err := agent.Generate(cmd.Context(), generator.GenerationRequest{
			Description: description,
			DiagramType: diagramType,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), uml)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("description", "d", "", "system description")
	generateCmd.Flags().StringP("type", "t", "class", "diagram type")
	_ = generateCmd.MarkFlagRequired("description")
}
