// Command ledger runs the donation ledger API and its maintenance tasks.
package main

import (
	"fmt"
	"os"

	"donation-ledger/config"
	"donation-ledger/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "ledger",
		Short:         "Donation ledger and referral attribution service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (defaults to ./config.yaml)")

	load := func() (*config.Config, zerolog.Logger, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
		}
		return cfg, logger.New(cfg.Log.Level, cfg.Log.Pretty), nil
	}

	root.AddCommand(serveCommand(load), migrateCommand(load), tokenCommand(load))
	return root
}

type loaderFunc func() (*config.Config, zerolog.Logger, error)
