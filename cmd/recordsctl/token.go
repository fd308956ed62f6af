package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/precinct-records/internal/auth"
	"github.com/heartmarshall/precinct-records/internal/domain"
)

var (
	tokenEmail string
	tokenTTL   time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Mint an access token signed with the configured backend secret",
	Long: `Prints a bearer token for the given auth identity. Only useful against
environments that share BACKEND_JWT_SECRET with this tool.`,
	Args: cobra.ExactArgs(1),
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "token lifetime")
}

func runToken(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	if tokenTTL <= 0 {
		return fmt.Errorf("ttl must be positive")
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	mgr := auth.NewJWTManager(cfg.Backend.JWTSecret, cfg.Backend.JWTAudience, tokenTTL)
	token, err := mgr.GenerateAccessToken(domain.Identity{ID: id, Email: tokenEmail})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
