package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"homecatalog/internal/model"
	"homecatalog/internal/service"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printView(w io.Writer, view *model.CatalogView) {
	fmt.Fprintf(w, "%s (catalog %s)\n", view.Title, view.Version)
	if len(view.Pills) > 0 {
		labels := make([]string, 0, len(view.Pills))
		for _, p := range view.Pills {
			labels = append(labels, p.Label)
		}
		fmt.Fprintf(w, "Filters (%d): %s\n", view.ActiveCount, strings.Join(labels, ", "))
	}
	fmt.Fprintln(w)

	if view.Empty {
		fmt.Fprintln(w, "No homes found matching your criteria.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMANUFACTURER\tTYPE\tBEDS\tBATHS\tSIZE")
	for _, h := range view.Homes {
		name := h.Name
		if h.IsFeatured {
			name += " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			h.ID,
			name,
			h.Manufacturer,
			h.Type,
			h.Beds,
			service.FormatBaths(h.Baths),
			h.SizeLabel,
		)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d of %d homes\n", view.Count, view.Total)
}

func printCatalogs(w io.Writer, summaries []model.CatalogSummary) {
	for i, s := range summaries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s  %s (%d homes)\n", s.ID, s.Title, s.Total)
		for _, g := range s.Facets {
			labels := make([]string, 0, len(g.Options))
			for _, o := range g.Options {
				labels = append(labels, o.Label)
			}
			fmt.Fprintf(w, "  %-15s %s\n", g.Title+":", strings.Join(labels, " | "))
		}
	}
}
