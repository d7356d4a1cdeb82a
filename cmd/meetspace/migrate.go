package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"meetspace/migrations"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			db, err := openDB(ctx, opts.cfg.DBUrl)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := migrations.Apply(ctx, db, opts.logger); err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}
			opts.logger.Info("migrations up to date")
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall migration timeout")
	return cmd
}
