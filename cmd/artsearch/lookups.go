package main

import (
	"context"
	"fmt"
	"os"

	"github.com/adampresley/artbrowser/pkg/models"
	"github.com/adampresley/artbrowser/pkg/services"
	"github.com/spf13/cobra"
)

var centuriesCmd = &cobra.Command{
	Use:   "centuries",
	Short: "List centuries in temporal order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookups(cmd, services.CatalogService.FetchAllCenturies)
	},
}

var classificationsCmd = &cobra.Command{
	Use:   "classifications",
	Short: "List classifications by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookups(cmd, services.CatalogService.FetchAllClassifications)
	},
}

func init() {
	rootCmd.AddCommand(centuriesCmd)
	rootCmd.AddCommand(classificationsCmd)
}

func runLookups(cmd *cobra.Command, fetch func(services.CatalogService, context.Context) ([]models.Lookup, error)) error {
	catalog, err := newCatalog()
	if err != nil {
		return err
	}

	p, err := newPrinter()
	if err != nil {
		return err
	}

	lookups, err := fetch(catalog, cmd.Context())
	if err != nil {
		return fmt.Errorf("%s failed: %w", cmd.Name(), err)
	}

	return p.printLookups(os.Stdout, lookups)
}
