package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"rudresh.dev/internal/config"
	"rudresh.dev/internal/services"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the resolved portfolio data as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		store := config.NewStore(cfg)

		fetcher := services.NewFetcher()
		portfolio := services.NewPortfolioService(store,
			services.NewProjectService(fetcher, store, logger),
			services.NewStatsService(fetcher, store, logger))

		snap, err := portfolio.Snapshot(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	},
}
