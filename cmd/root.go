package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ijalalfrz/trip-flight-planner/internal/app/config"
	"github.com/ijalalfrz/trip-flight-planner/internal/app/dto"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	envFileArg string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:           "tripplanner",
	Short:         "Search one-way flights for both legs of a trip",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg = config.MustInitConfig(envFileArg)
		logger.InitStructuredLogger(cfg.LogLevel)

		slog.Debug("config loaded successfully", slog.String("log_level", string(cfg.LogLevel)))

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}

		if err := dto.InitValidator(); err != nil {
			return fmt.Errorf("init validator: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, config.ErrMissingCredential) {
			slog.Error("missing credential, nothing was searched", slog.Any("error", err))
		} else {
			slog.Error("command failed", slog.Any("error", err))
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFileArg, "env", "e", ".env", "Path of the .env config file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}
