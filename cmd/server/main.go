package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/icsboyx/chathole/internal/app"
	"github.com/icsboyx/chathole/internal/config"
	"github.com/icsboyx/chathole/internal/log"
)

func main() {
	var (
		cfgPath   string
		overrides config.Config
	)

	root := &cobra.Command{
		Use:          "chathole-server",
		Short:        "Multi-user terminal chat server over raw TCP",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := log.New(overrides.LogLevel)

			cfg, path, err := config.Load(logger, cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg.UpdateFrom(overrides)
			logger = log.New(cfg.LogLevel)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info().Str("config", path).Str("addr", cfg.Addr).Msg("starting chathole server")
			if err := app.New(&cfg, logger).Run(ctx); err != nil {
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file")
	root.Flags().StringVar(&overrides.Addr, "addr", "", "TCP listen address (overrides config)")
	root.Flags().StringVar(&overrides.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
