package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zatekoja/clinicsite/internal/infrastructure/clients/postgres"
)

var printSchema bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the blog, FAQ, location and management team tables",
	Long: `Applies the embedded schema to the relational store. Existing tables
are left untouched, so the command can be run repeatedly.`,
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().BoolVar(&printSchema, "print", false, "print the schema instead of applying it")
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	if printSchema {
		fmt.Fprint(cmd.OutOrStdout(), postgres.Schema())
		return nil
	}

	client, err := openDatabase()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.EnsureSchema(cmd.Context()); err != nil {
		return fmt.Errorf("schema failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Schema applied.")
	return nil
}
