package repository

import (
	"context"

	"go.uber.org/zap"

	"homecatalog/internal/config"
)

// Open loads the catalog from the configured source. A PostgreSQL
// connection is closed again once the listings are in memory.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	if cfg.Catalog.Source != config.SourcePostgres {
		return LoadEmbedded()
	}

	repo, err := NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		return nil, err
	}
	logger.Info("Connected to PostgreSQL database")

	return loadAndClose(ctx, repo, logger)
}

func loadAndClose(ctx context.Context, repo *PostgresRepository, logger *zap.Logger) (*Store, error) {
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("Failed to close database connection", zap.Error(err))
		}
	}()

	manufacturers, err := EmbeddedManufacturers()
	if err != nil {
		return nil, err
	}
	return repo.Load(ctx, manufacturers)
}
