package repository

import (
	"fmt"

	"homecatalog/internal/catalog"
	"homecatalog/internal/model"
)

// Store is the in-memory catalog loaded at startup. It is never mutated
// after construction and is safe for concurrent readers.
type Store struct {
	version       string
	homes         []model.HomeListing
	byID          map[string]int
	manufacturers []model.Manufacturer
}

// NewStore validates homes and builds the id index. Duplicate ids or any
// listing breaking the data-model invariants is an error.
func NewStore(version string, homes []model.HomeListing, manufacturers []model.Manufacturer) (*Store, error) {
	byID := make(map[string]int, len(homes))
	for i := range homes {
		if err := homes[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid listing at index %d: %w", i, err)
		}
		if _, dup := byID[homes[i].ID]; dup {
			return nil, fmt.Errorf("duplicate listing id %q", homes[i].ID)
		}
		byID[homes[i].ID] = i
	}

	return &Store{
		version:       version,
		homes:         homes,
		byID:          byID,
		manufacturers: manufacturers,
	}, nil
}

// Version returns the dataset version string
func (s *Store) Version() string {
	return s.version
}

// All returns every listing in dataset order
func (s *Store) All() []model.HomeListing {
	return s.homes
}

// ForCatalog returns the listings a catalog browses, in dataset order
func (s *Store) ForCatalog(def *catalog.Definition) []model.HomeListing {
	return def.Collection(s.homes)
}

// Get retrieves a single listing by its ID
func (s *Store) Get(id string) (*model.HomeListing, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	h := s.homes[i]
	return &h, true
}

// Featured returns the featured listings in dataset order
func (s *Store) Featured() []model.HomeListing {
	var out []model.HomeListing
	for _, h := range s.homes {
		if h.IsFeatured {
			out = append(out, h)
		}
	}
	return out
}

// Manufacturers returns the manufacturer directory
func (s *Store) Manufacturers() []model.Manufacturer {
	return s.manufacturers
}
