package commands

import (
	"fmt"

	"finance-tracker/internal/models"
	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTokenCommand(opts *rootOptions) *cobra.Command {
	var (
		userID string
		role   string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token signed with the configured key",
		Long: "Issue an access token signed with JWT_PRIVATE_KEY. Without a configured key\n" +
			"an ephemeral one is generated, so the token only verifies against this process.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("invalid --user %q: %w", userID, err)
			}
			if role != models.RoleUser && role != models.RoleAdmin {
				return fmt.Errorf("invalid --role %q: use %s or %s", role, models.RoleUser, models.RoleAdmin)
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			newLogger(cfg.Log, cmd.ErrOrStderr())

			token, expiresAt, err := services.NewTokenService(&cfg.JWT).GenerateAccessToken(id, role)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format("2006-01-02T15:04:05Z07:00"))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id (UUID) the token is issued for")
	cmd.Flags().StringVar(&role, "role", models.RoleUser, "token role (user or admin)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
