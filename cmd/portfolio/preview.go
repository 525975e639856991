package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rudresh.dev/internal/config"
	"rudresh.dev/internal/handlers"
	"rudresh.dev/internal/preview"
	"rudresh.dev/internal/services"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the portfolio in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		store := config.NewStore(cfg)

		// the alt screen owns the terminal; keep log lines off it
		quiet := zap.NewNop()
		fetcher := services.NewFetcher()
		m, err := preview.NewModel(cmd.Context(), cfg.ProfileView(),
			handlers.TimingFromConfig(cfg.Typewriter),
			services.NewProjectService(fetcher, store, quiet),
			services.NewStatsService(fetcher, store, quiet))
		if err != nil {
			return err
		}
		return preview.Run(m)
	},
}
