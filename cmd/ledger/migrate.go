package main

import (
	"fmt"

	pgStorage "donation-ledger/internal/adapter/storage/postgres"

	"github.com/spf13/cobra"
)

func migrateCommand(load loaderFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}

			pool, err := pgStorage.NewPool(cmd.Context(), cfg.Database, log)
			if err != nil {
				return fmt.Errorf("connect postgres: %w", err)
			}
			defer pool.Close()

			return pgStorage.Migrate(cmd.Context(), pool, log)
		},
	}
}
