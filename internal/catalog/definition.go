package catalog

import (
	"slices"

	"homecatalog/internal/model"
)

// Catalog identifiers
const (
	IDAll        = "all"
	IDSingleWide = "single-wide"
	IDDoubleWide = "double-wide"
	IDModular    = "modular"
)

// Definition describes one catalog screen: which listings it shows, which
// facets it offers and its curated option lists.
type Definition struct {
	ID          string
	Title       string
	Types       []model.HomeType
	Facets      []model.Facet
	BedOptions  []string
	BathOptions []string
	Buckets     BucketTable
}

var (
	// AllHomes browses every listing by type and manufacturer
	AllHomes = &Definition{
		ID:     IDAll,
		Title:  "Available Models",
		Types:  []model.HomeType{model.TypeSingleWide, model.TypeDoubleWide, model.TypeModular},
		Facets: []model.Facet{model.FacetType, model.FacetManufacturer},
	}

	SingleWide = &Definition{
		ID:          IDSingleWide,
		Title:       "Single-Wide Homes",
		Types:       []model.HomeType{model.TypeSingleWide},
		Facets:      []model.Facet{model.FacetManufacturer, model.FacetBeds, model.FacetBaths, model.FacetSize},
		BedOptions:  []string{"1", "2", "3"},
		BathOptions: []string{"1", "2"},
		Buckets: BucketTable{
			Under("Under 1,000", 1000),
			Between("1,000-1,200", 1000, true, 1200, true),
			Over("Over 1,200", 1200),
		},
	}

	DoubleWide = &Definition{
		ID:          IDDoubleWide,
		Title:       "Double-Wide Homes",
		Types:       []model.HomeType{model.TypeDoubleWide},
		Facets:      []model.Facet{model.FacetManufacturer, model.FacetBeds, model.FacetBaths, model.FacetSize},
		BedOptions:  []string{"3", "4", "5"},
		BathOptions: []string{"2", "2.5", "3"},
		Buckets: BucketTable{
			Under("Under 1,500", 1500),
			Between("1,500-2,000", 1500, true, 2000, true),
			Over("Over 2,000", 2000),
		},
	}

	Modular = &Definition{
		ID:          IDModular,
		Title:       "Modular Homes",
		Types:       []model.HomeType{model.TypeModular},
		Facets:      []model.Facet{model.FacetManufacturer, model.FacetBeds, model.FacetBaths, model.FacetSize},
		BedOptions:  []string{"2", "3", "4"},
		BathOptions: []string{"2", "2.5", "3"},
		Buckets: BucketTable{
			Under("Under 1,500", 1500),
			Between("1,500-2,000", 1500, true, 2000, true),
			// 2,000 belongs to the bucket above
			Between("2,000-2,500", 2000, false, 2500, true),
			Over("Over 2,500", 2500),
		},
	}
)

// Definitions lists every catalog in navigation order
var Definitions = []*Definition{AllHomes, SingleWide, DoubleWide, Modular}

// Lookup finds a catalog definition by id
func Lookup(id string) (*Definition, bool) {
	for _, d := range Definitions {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

// Supports reports whether the catalog offers facet f
func (d *Definition) Supports(f model.Facet) bool {
	return slices.Contains(d.Facets, f)
}

// Includes reports whether a listing belongs in this catalog
func (d *Definition) Includes(h model.HomeListing) bool {
	return slices.Contains(d.Types, h.Type)
}

// Collection returns the listings of homes that belong in this catalog,
// preserving order
func (d *Definition) Collection(homes []model.HomeListing) []model.HomeListing {
	out := make([]model.HomeListing, 0, len(homes))
	for _, h := range homes {
		if d.Includes(h) {
			out = append(out, h)
		}
	}
	return out
}

// FacetTitle is the heading shown above a facet's options
func FacetTitle(f model.Facet) string {
	switch f {
	case model.FacetType:
		return "Home Type"
	case model.FacetManufacturer:
		return "Manufacturer"
	case model.FacetBeds:
		return "Bedrooms"
	case model.FacetBaths:
		return "Bathrooms"
	case model.FacetSize:
		return "Square Footage"
	}
	return string(f)
}
