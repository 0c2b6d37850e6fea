package main

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/todo/internal/todo/app"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API. Pending migrations are applied and the
expired-token sweeper runs in the background until shutdown.`,
		RunE: runServe,
	}

	addStoreFlags(cmd)
	cmd.Flags().Int("port", 8080, "HTTP listen port")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := app.LoadConfig(configFile, cmd.Flags())
	if err != nil {
		return oops.Code("CONFIG_INVALID").With("operation", "load config").Wrap(err)
	}

	application, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return oops.With("operation", "initialize application").Wrap(err)
	}

	return application.Run(cmd.Context())
}
