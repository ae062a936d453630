package main

import (
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"homecatalog/internal/catalog"
	"homecatalog/internal/model"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the homes of a catalog that match the given filters",
	Example: `  catalogctl list --catalog double-wide --manufacturer Franklin --beds 3
  catalogctl list --catalog modular --size "Over 2,500" --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogID, _ := cmd.Flags().GetString("catalog")
		query, err := facetQuery(cmd)
		if err != nil {
			return err
		}

		view, err := catalogService.Browse(catalogID, query)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(os.Stdout, view)
		}
		printView(os.Stdout, view)
		return nil
	},
}

var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "List catalogs and their filter options",
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries := catalogService.Catalogs()
		if jsonOutput {
			return printJSON(os.Stdout, summaries)
		}
		printCatalogs(os.Stdout, summaries)
		return nil
	},
}

// facetQuery turns the facet flags that were set into a browse query
func facetQuery(cmd *cobra.Command) (url.Values, error) {
	query := url.Values{}
	for _, f := range model.Facets {
		if !cmd.Flags().Changed(string(f)) {
			continue
		}
		v, err := cmd.Flags().GetString(string(f))
		if err != nil {
			return nil, err
		}
		query.Set(string(f), v)
	}
	return query, nil
}

func init() {
	listCmd.Flags().StringP("catalog", "c", catalog.IDAll, "catalog id (all, single-wide, double-wide, modular)")
	listCmd.Flags().StringP("manufacturer", "m", "", "filter by manufacturer")
	listCmd.Flags().StringP("type", "t", "", "filter by home type")
	listCmd.Flags().StringP("beds", "b", "", "filter by bedroom count")
	listCmd.Flags().String("baths", "", "filter by bathroom count")
	listCmd.Flags().StringP("size", "s", "", `filter by square footage range (e.g. "Under 1,500")`)
}
