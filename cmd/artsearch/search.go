package main

import (
	"fmt"
	"os"

	"github.com/adampresley/artbrowser/pkg/models"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search objects by century, classification and keywords",
	Long: `Search sends the filter to the catalog exactly as the browser's search
form does. Century and classification take the numeric ids printed by the
centuries and classifications commands, or "any".`,
	RunE: runSearch,
}

var pageCmd = &cobra.Command{
	Use:   "page [cursor-url]",
	Short: "Fetch the page behind a next or previous cursor",
	Args:  cobra.ExactArgs(1),
	RunE:  runPage,
}

func init() {
	searchCmd.Flags().String("century", models.AnyOption, "century id")
	searchCmd.Flags().String("classification", models.AnyOption, "classification id")
	searchCmd.Flags().String("keywords", "", "free-text keywords")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(pageCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	var (
		err    error
		result models.SearchResult
	)

	filter := models.NewFilter()
	filter.Century, _ = cmd.Flags().GetString("century")
	filter.Classification, _ = cmd.Flags().GetString("classification")
	filter.QueryString, _ = cmd.Flags().GetString("keywords")

	catalog, err := newCatalog()
	if err != nil {
		return err
	}

	p, err := newPrinter()
	if err != nil {
		return err
	}

	if result, err = catalog.FetchQueryResults(cmd.Context(), filter); err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	return p.printResults(os.Stdout, result)
}

func runPage(cmd *cobra.Command, args []string) error {
	catalog, err := newCatalog()
	if err != nil {
		return err
	}

	p, err := newPrinter()
	if err != nil {
		return err
	}

	result, err := catalog.FetchQueryResultsFromURL(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("page fetch failed: %w", err)
	}

	return p.printResults(os.Stdout, result)
}
