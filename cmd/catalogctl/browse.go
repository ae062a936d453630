package main

import (
	"net/url"

	"github.com/spf13/cobra"

	"homecatalog/internal/catalog"
	"homecatalog/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse a catalog interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogID, _ := cmd.Flags().GetString("catalog")
		manufacturer, _ := cmd.Flags().GetString("manufacturer")

		query := url.Values{}
		if manufacturer != "" {
			query.Set(catalog.QueryManufacturer, manufacturer)
		}
		session, err := catalogService.NewSession(catalogID, query)
		if err != nil {
			return err
		}
		return tui.Run(session, catalogService.Version())
	},
}

func init() {
	browseCmd.Flags().StringP("catalog", "c", catalog.IDAll, "catalog id (all, single-wide, double-wide, modular)")
	browseCmd.Flags().StringP("manufacturer", "m", "", "preselect a manufacturer")
}
