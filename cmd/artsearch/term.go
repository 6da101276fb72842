package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var termCmd = &cobra.Command{
	Use:   "term [term] [value]",
	Short: "Search objects where one fact matches a value",
	Long: `Term runs the search behind a fact on the detail view, for example
"artsearch term culture Dutch" or "artsearch term people 'Vincent van Gogh'".
Hyphens in the value are sent as alternatives.`,
	Args: cobra.ExactArgs(2),
	RunE: runTerm,
}

func init() {
	rootCmd.AddCommand(termCmd)
}

func runTerm(cmd *cobra.Command, args []string) error {
	catalog, err := newCatalog()
	if err != nil {
		return err
	}

	p, err := newPrinter()
	if err != nil {
		return err
	}

	result, err := catalog.FetchQueryResultsFromTermAndValue(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("term search failed: %w", err)
	}

	return p.printResults(os.Stdout, result)
}
