package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emberwood/stay/internal/app"
	"github.com/emberwood/stay/internal/config"
	"github.com/emberwood/stay/internal/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the booking HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			l := logger.New(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile})

			return app.Run(l, cfg)
		},
	}
}
