package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zatekoja/clinicsite/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/clinicsite/internal/infrastructure/observability"
	"github.com/zatekoja/clinicsite/pkg/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "seed",
	Short:         "Provision the clinic site's stores",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		observability.InitLogger("clinic-site-seed", cfg.Log.Env, cfg.Log.Level)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openDatabase connects to the relational store, which every subcommand
// except content requires.
func openDatabase() (*postgres.Client, error) {
	if !cfg.Database.Configured() {
		return nil, fmt.Errorf("relational store not configured: set DATABASE_URL or DB_HOST")
	}
	return postgres.NewClient(&cfg.Database)
}
