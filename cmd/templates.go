package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"plantuml_assistant/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the diagram types that have reference templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := templates.Load(cfg.TemplatesPath)
		if err != nil {
			return err
		}
		for _, t := range set.Types() {
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
