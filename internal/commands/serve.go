package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"finance-tracker/internal/database"
	"finance-tracker/internal/server"

	"github.com/spf13/cobra"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var noJobs bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the daily job scheduler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if noJobs {
				cfg.Jobs.Enabled = false
			}
			logger := newLogger(cfg.Log, cmd.ErrOrStderr())

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := database.Initialize(ctx, cfg)
			if err != nil {
				return fmt.Errorf("initializing database: %w", err)
			}
			defer db.Close()

			container := server.NewContainer(cfg, db.DB, logger, nil)
			return server.New(container).Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&noJobs, "no-jobs", false, "do not start the in-process job scheduler")

	return cmd
}

// withDatabase opens the configured database without migrating it and hands
// a wired container to fn.
func withDatabase(ctx context.Context, opts *rootOptions, cmd *cobra.Command, fn func(context.Context, *server.Container) error) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log, cmd.ErrOrStderr())

	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, server.NewContainer(cfg, db.DB, logger, nil))
}
