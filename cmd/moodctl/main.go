// Command moodctl is the operator CLI of the moodlog backend. It reads the
// same configuration as the server: --config, else CONFIG_PATH, overlaid by
// environment variables such as DATABASE_DSN.
//
// Usage:
//
//	moodctl migrate
//	moodctl promote --email=user@example.com
//	moodctl token --user-id=<uuid> [--role=admin] [--ttl=1h]
//	moodctl export --user-id=<uuid> [--format=json|csv|sqlite] [--out=file]
//	moodctl purge-user --user-id=<uuid> --yes
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/moodlog-backend/internal/app"
	"github.com/heartmarshall/moodlog-backend/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "moodctl",
	Short:         "Operator tasks for the moodlog backend",
	Version:       app.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default $CONFIG_PATH or ./config.yaml)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.AddCommand(migrateCmd, promoteCmd, tokenCmd, exportCmd, purgeCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup loads configuration and the logger shared by every command.
func setup() (*config.Config, *slog.Logger, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, app.NewLogger(cfg.Log), nil
}
