package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lumenhq/lumen/internal/kiosk"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "kiosk",
		Short: "Lumen kiosk agent",
		Long: `Runs next to the mirror's kiosk browser. Reloads the browser when the
server reports a new build and posts host heartbeats.`,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to kiosk config file (default: ./configs/kiosk.yaml)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := kiosk.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if err := logger.Init(&cfg.Logger, "release"); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger().Named("kiosk")

	agent, err := kiosk.NewAgent(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infow("kiosk agent started",
		"server", cfg.ServerURL,
		"reload_mode", cfg.Reload.Mode,
		"poll_interval", cfg.PollInterval(),
	)
	if err := agent.Run(ctx); err != nil {
		return err
	}
	log.Infow("kiosk agent stopped")
	return nil
}
