package main

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/todo/internal/todo/app"
)

// NewConfigCmd creates the config subcommand.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the effective configuration with secrets redacted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := app.RenderConfig(configFile, cmd.Flags())
			if err != nil {
				return oops.Code("CONFIG_INVALID").With("operation", "render config").Wrap(err)
			}
			cmd.Print(string(out))
			return nil
		},
	}
	addStoreFlags(printCmd)
	printCmd.Flags().Int("port", 8080, "HTTP listen port")

	cmd.AddCommand(printCmd)
	return cmd
}
