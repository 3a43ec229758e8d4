package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zatekoja/clinicsite/internal/adapters/database"
	"github.com/zatekoja/clinicsite/internal/application/services"
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Insert the built-in clinic locations into an empty locations table",
	RunE:  runLocations,
}

func init() {
	rootCmd.AddCommand(locationsCmd)
}

func runLocations(cmd *cobra.Command, args []string) error {
	client, err := openDatabase()
	if err != nil {
		return err
	}
	defer client.Close()

	svc := services.NewLocationService(database.NewLocationAdapter(client), nil, nil)
	inserted, err := svc.ProvisionDefaults(cmd.Context())
	if err != nil {
		return fmt.Errorf("locations failed: %w", err)
	}

	if inserted == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Locations table already populated; nothing inserted.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d locations.\n", inserted)
	return nil
}
