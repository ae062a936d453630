package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"homecatalog/internal/config"
	"homecatalog/internal/logging"
	"homecatalog/internal/repository"
	"homecatalog/internal/service"
)

var (
	jsonOutput bool
	source     string
	logLevel   string

	logger         *zap.Logger
	catalogService *service.CatalogService
)

var rootCmd = &cobra.Command{
	Use:           "catalogctl <command>",
	Short:         "Browse the home catalog from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if source != "" {
			cfg.Catalog.Source = source
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		cfg.Logging.Level = logLevel
		cfg.Logging.Format = "console"

		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		for _, w := range cfg.Warnings {
			logger.Warn("Configuration fallback", zap.String("detail", w))
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		store, err := repository.Open(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		catalogService = service.NewCatalogService(store, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&source, "source", "", "catalog source (embedded or postgres); defaults to CATALOG_SOURCE")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(catalogsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
