package token

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	infraAuth "github.com/polyforma/qualitrack/internal/infrastructure/auth"
	"github.com/polyforma/qualitrack/internal/infrastructure/config"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/constants"
)

var (
	env        string
	configPath string
	userID     uint
	role       string
	ttl        time.Duration
)

// NewCommand issues a bearer token signed with the configured secret. Tokens
// normally come from the identity provider; this is for local testing.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development bearer token",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().UintVar(&userID, "user-id", 0, "User ID the token identifies (required)")
	cmd.Flags().StringVar(&role, "role", auth.RoleQualityAssistant, "Role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 8*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if env == constants.EnvProduction {
		return fmt.Errorf("token issuing is disabled in production")
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	signed, err := infraAuth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer).
		Issue(auth.Actor{UserID: userID, Role: role}, ttl)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), signed)
	return nil
}
