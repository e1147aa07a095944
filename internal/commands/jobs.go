package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"finance-tracker/internal/server"
	"finance-tracker/internal/services"

	"github.com/spf13/cobra"
)

var jobNames = []string{services.JobStatements, services.JobSnapshots, services.JobInstallments}

func newJobsCommand(opts *rootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:       "jobs <statements|snapshots|installments>",
		Short:     "Run one daily batch job now",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: jobNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			runDate, err := parseRunDate(date)
			if err != nil {
				return err
			}

			return withDatabase(cmd.Context(), opts, cmd, func(ctx context.Context, c *server.Container) error {
				if runDate.IsZero() {
					runDate = time.Now().In(c.Calculator.Location())
				}
				return runJob(ctx, c, args[0], runDate, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "run date as YYYY-MM-DD or RFC 3339 (default now)")

	return cmd
}

func parseRunDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: use YYYY-MM-DD or RFC 3339", value)
	}
	return t, nil
}

func runJob(ctx context.Context, c *server.Container, job string, runDate time.Time, out io.Writer) error {
	var (
		result interface{}
		err    error
	)

	switch job {
	case services.JobStatements:
		result, err = c.Generator.GenerateCreditCardStatements(ctx, runDate)
	case services.JobSnapshots:
		result, err = c.Snapshots.CreateDailyAccountSnapshots(ctx, runDate)
	case services.JobInstallments:
		result, err = c.Tracker.ProcessAllUsers(ctx, runDate)
	default:
		return fmt.Errorf("unknown job %q", job)
	}
	if err != nil {
		return fmt.Errorf("job %s failed: %w", job, err)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
