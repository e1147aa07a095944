package commands

import (
	"fmt"

	"finance-tracker/internal/database"

	"github.com/spf13/cobra"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	var steps int

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationRunner(opts, cmd, func(runner *database.MigrationRunner) error {
				if err := runner.WaitForDatabase(cmd.Context()); err != nil {
					return err
				}
				return runner.Up()
			})
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationRunner(opts, cmd, func(runner *database.MigrationRunner) error {
				return runner.Down(steps)
			})
		},
	}
	downCmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationRunner(opts, cmd, func(runner *database.MigrationRunner) error {
				version, dirty, err := runner.Status()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	}

	migrateCmd.AddCommand(upCmd, downCmd, statusCmd)
	return migrateCmd
}

func withMigrationRunner(opts *rootOptions, cmd *cobra.Command, fn func(*database.MigrationRunner) error) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	newLogger(cfg.Log, cmd.ErrOrStderr())

	db, err := database.OpenMigrationDB(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(database.NewMigrationRunner(db, &cfg.Database))
}
