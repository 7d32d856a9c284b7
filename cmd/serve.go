package cmd

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"plantuml_assistant/logger"
	"plantuml_assistant/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		agent, set, err := buildAgent(cmd.Context())
		if err != nil {
			return err
		}

		gin.SetMode(gin.ReleaseMode)
		srv, err := server.New(agent, server.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			RequestTimeout: cfg.Server.RequestTimeout,
			DiagramTypes:   set.Types(),
		}, logger.L().Named("http"))
		if err != nil {
			return err
		}

		listen := cfg.Server.Addr
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			listen = addr
		}
		if listen == "" {
			listen = ":8080"
		}
		logger.Infof("Starting web server on %s (provider=%s)", listen, cfg.LLM.Provider)
		return http.ListenAndServe(listen, srv.Routes())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "http listen address (overrides server.addr)")
}
