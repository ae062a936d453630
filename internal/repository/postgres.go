package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"homecatalog/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresRepository reads the catalog from PostgreSQL. It only ever
// issues SELECTs; the catalog is loaded wholesale at startup.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// NewPostgresRepositoryFromDB wraps an existing connection
func NewPostgresRepositoryFromDB(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// ListHomes returns every listing ordered by its catalog position
func (r *PostgresRepository) ListHomes(ctx context.Context) ([]model.HomeListing, error) {
	query := `
		SELECT
			id, name, manufacturer, type, beds, baths, sqft,
			description, features, image_url, gallery, is_featured
		FROM home_listings
		ORDER BY position ASC, id ASC
	`
	var homes []model.HomeListing
	if err := r.db.SelectContext(ctx, &homes, query); err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return homes, nil
}

// CatalogVersion returns the most recently published dataset version
func (r *PostgresRepository) CatalogVersion(ctx context.Context) (string, error) {
	var version string
	query := `SELECT version FROM catalog_versions ORDER BY published_at DESC LIMIT 1`
	err := r.db.GetContext(ctx, &version, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("no catalog version published")
		}
		return "", fmt.Errorf("failed to get catalog version: %w", err)
	}
	return version, nil
}

// Load reads the whole catalog into an in-memory store. The manufacturer
// directory is not kept in the database and is passed in.
func (r *PostgresRepository) Load(ctx context.Context, manufacturers []model.Manufacturer) (*Store, error) {
	version, err := r.CatalogVersion(ctx)
	if err != nil {
		return nil, err
	}
	homes, err := r.ListHomes(ctx)
	if err != nil {
		return nil, err
	}
	return NewStore(version, homes, manufacturers)
}
