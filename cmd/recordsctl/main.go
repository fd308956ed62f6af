// Command recordsctl is the operator tool for the records database:
// applying migrations, loading development fixtures and minting test
// access tokens.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/precinct-records/internal/app"
	"github.com/heartmarshall/precinct-records/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "recordsctl",
	Short:         "Operator tooling for the precinct records backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       app.BuildVersion(),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config YAML (default: $CONFIG_PATH or ./config.yaml)")

	rootCmd.AddCommand(migrateCmd, seedCmd, tokenCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "recordsctl: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads configuration honouring the --config flag.
func loadConfig() (*config.Config, *slog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}
