package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/server"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newSeedCommand(opts *rootOptions) *cobra.Command {
	var (
		userID string
		months int
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate demo accounts, purchases and MSI plans for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := uuid.New()
			if userID != "" {
				parsed, err := uuid.Parse(userID)
				if err != nil {
					return fmt.Errorf("invalid --user %q: %w", userID, err)
				}
				id = parsed
			}

			return withDatabase(cmd.Context(), opts, cmd, func(ctx context.Context, c *server.Container) error {
				result, err := c.Seeder().SeedUser(ctx, dto.SeedRequest{
					UserID: id,
					Months: months,
					Seed:   seed,
				})
				if err != nil {
					return err
				}

				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			})
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id to seed (default a new random id)")
	cmd.Flags().IntVar(&months, "months", 3, "months of history to generate (max 12)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible data (0 picks one)")

	return cmd
}
