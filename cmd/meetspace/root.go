package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"meetspace/config"
)

// rootOptions carries what every subcommand needs once PersistentPreRunE has run.
type rootOptions struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "meetspace",
		Short: "meetSpace API server",
		Long:  "Agents register for an API key, publish real-world events and discover upcoming events nearby.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.logger = config.NewLogger()
			return nil
		},
		SilenceUsage: true,
	}

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))
	return cmd
}
