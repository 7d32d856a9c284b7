package cmd

import (
	"github.com/spf13/cobra"

	"plantuml_assistant/config"
	"plantuml_assistant/logger"
)

var (
	configPath string
	logLevel   string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "plantuml-assistant",
	Short: "Generate and revise PlantUML diagrams with an LLM",
	Long: `plantuml-assistant turns natural-language system descriptions into PlantUML
diagrams and revises existing diagrams from follow-up questions or change requests.
It runs as an HTTP API (serve), an MCP stdio server (mcp), or one-shot commands.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		level := cfg.Log.Level
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		logger.Init(level, cfg.Log.JSON)
		logger.Debugf("config loaded from %s, provider=%s", configPath, cfg.LLM.Provider)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Set the logging level (debug, info, warn, error)")
}
