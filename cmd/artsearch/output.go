package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/adampresley/artbrowser/pkg/models"
	"go.yaml.in/yaml/v3"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

func parseFormat(s string) (outputFormat, error) {
	switch outputFormat(s) {
	case "", formatText:
		return formatText, nil
	case formatJSON, formatYAML:
		return outputFormat(s), nil
	}

	return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
}

type printer struct {
	format outputFormat
}

func (p printer) printResults(w io.Writer, result models.SearchResult) error {
	if p.format != formatText {
		return p.encode(w, result)
	}

	fmt.Fprintf(w, "Page %d of %d (%d records)\n\n", result.Info.Page, result.Info.Pages, result.Info.TotalRecords)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDATED\tIMAGE")

	for _, record := range result.Records {
		title := models.Value(record.Title)

		if title == "" {
			title = "MISSING INFO"
		}

		image := "no"

		if record.HasPrimaryImage() {
			image = "yes"
		}

		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", record.ID, title, models.Value(record.Dated), image)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if result.Info.HasPrev() {
		fmt.Fprintf(w, "\nprevious: %s\n", result.Info.Prev)
	}

	if result.Info.HasNext() {
		fmt.Fprintf(w, "\nnext: %s\n", result.Info.Next)
	}

	return nil
}

func (p printer) printLookups(w io.Writer, lookups []models.Lookup) error {
	if p.format != formatText {
		return p.encode(w, lookups)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")

	for _, lookup := range lookups {
		fmt.Fprintf(tw, "%d\t%s\n", lookup.ID, lookup.Name)
	}

	return tw.Flush()
}

func (p printer) encode(w io.Writer, v any) error {
	if p.format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}

		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error encoding json: %w", err)
	}

	return nil
}
