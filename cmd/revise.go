package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"plantuml_assistant/generator"
)

var reviseCmd = &cobra.Command{
	Use:   "revise",
	Short: "Ask about or change an existing diagram",
	Long: `Sends the diagram in --uml-file together with --message and the original --story.
Prints the explanation, then the updated diagram when the model returned one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		umlFile, _ := cmd.Flags().GetString("uml-file")
		message, _ := cmd.Flags().GetString("message")
		story, _ := cmd.Flags().GetString("story")
		diagramType, _ := cmd.Flags().GetString("type")

		current, err := os.ReadFile(umlFile)
		if err != nil {
			return err
		}

		agent, _, err := buildAgent(cmd.Context())
		if err != nil {
			return err
		}
		rev := agent.Revise(cmd.Context(), generator.RevisionRequest{
			CurrentUML:    string(current),
			UserMessage:   message,
			DiagramType:   diagramType,
			OriginalStory: story,
		})
		if rev == nil {
			return generator.ErrRevisionFailed
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, rev.RawText)
		if rev.HasUML() {
			fmt.Fprintln(out)
			fmt.Fprintln(out, *rev.UML)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reviseCmd)
	reviseCmd.Flags().StringP("uml-file", "f", "", "file holding the current diagram")
	reviseCmd.Flags().StringP("message", "m", "", "question or change request")
	reviseCmd.Flags().StringP("story", "s", "", "original system description")
	reviseCmd.Flags().StringP("type", "t", "class", "diagram type")
	_ = reviseCmd.MarkFlagRequired("uml-file")
	_ = reviseCmd.MarkFlagRequired("message")
}
