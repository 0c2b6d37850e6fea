package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the todo CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Todo API server",
		Long: `todo serves a JSON API for users, categories and todos with
JWT sessions. Configuration comes from defaults, an optional YAML file,
TODO_ environment variables and flags, in increasing priority.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (YAML)")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewConfigCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// addStoreFlags registers the flags every database-touching command shares.
func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().String("env", "dev", "environment (dev, test, staging, production)")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().String("db-driver", "sqlite", "database driver (sqlite, postgres)")
	cmd.Flags().String("db-dsn", "", "database connection string")
}
