package model

// All is the facet value meaning "no constraint"
const All = "All"

// Facet names one filterable dimension of a listing
type Facet string

const (
	FacetManufacturer Facet = "manufacturer"
	FacetType         Facet = "type"
	FacetBeds         Facet = "beds"
	FacetBaths        Facet = "baths"
	FacetSize         Facet = "size"
)

// Facets lists every facet in display order
var Facets = []Facet{FacetType, FacetManufacturer, FacetBeds, FacetBaths, FacetSize}

// FilterCriteria holds the selected value of every facet. Each field is
// either All or one specific value.
type FilterCriteria struct {
	Manufacturer string `json:"manufacturer"`
	Type         string `json:"type"`
	Beds         string `json:"beds"`
	Baths        string `json:"baths"`
	Size         string `json:"size"`
}

// NewFilterCriteria returns criteria with every facet unconstrained
func NewFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Manufacturer: All,
		Type:         All,
		Beds:         All,
		Baths:        All,
		Size:         All,
	}
}

// Get returns the selected value for a facet
func (c FilterCriteria) Get(f Facet) string {
	switch f {
	case FacetManufacturer:
		return c.Manufacturer
	case FacetType:
		return c.Type
	case FacetBeds:
		return c.Beds
	case FacetBaths:
		return c.Baths
	case FacetSize:
		return c.Size
	}
	return All
}

// With returns a copy of c with facet f set to value
func (c FilterCriteria) With(f Facet, value string) FilterCriteria {
	switch f {
	case FacetManufacturer:
		c.Manufacturer = value
	case FacetType:
		c.Type = value
	case FacetBeds:
		c.Beds = value
	case FacetBaths:
		c.Baths = value
	case FacetSize:
		c.Size = value
	}
	return c
}

// ActiveCount returns the number of facets not set to All
func (c FilterCriteria) ActiveCount() int {
	n := 0
	for _, f := range Facets {
		if c.Get(f) != All {
			n++
		}
	}
	return n
}

// FacetOption is one selectable value of a facet
type FacetOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// FacetGroup is the option list rendered for one facet in the filter drawer
type FacetGroup struct {
	Facet   Facet         `json:"facet"`
	Title   string        `json:"title"`
	Options []FacetOption `json:"options"`
}

// Pill is an active-filter chip; removing it resets Facet to All
type Pill struct {
	Facet Facet  `json:"facet"`
	Label string `json:"label"`
}

// HomeCard is a listing as shown in the catalog grid
type HomeCard struct {
	HomeListing
	SizeLabel string `json:"size_label"`
	DetailURL string `json:"detail_url"`
}

// CatalogView is the derived view of one catalog screen
type CatalogView struct {
	Catalog     string         `json:"catalog"`
	Title       string         `json:"title"`
	Version     string         `json:"version"`
	Homes       []HomeCard     `json:"homes"`
	Count       int            `json:"count"`
	Total       int            `json:"total"`
	ActiveCount int            `json:"active_count"`
	Criteria    FilterCriteria `json:"criteria"`
	Facets      []FacetGroup   `json:"facets"`
	Pills       []Pill         `json:"pills"`
	Empty       bool           `json:"empty"`
}

// CatalogSummary describes a catalog and its filter options
type CatalogSummary struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Total  int          `json:"total"`
	Facets []FacetGroup `json:"facets"`
}

// ManufacturerEntry is a manufacturer with links into the filtered catalogs
type ManufacturerEntry struct {
	Manufacturer
	SinglesRoute string `json:"singles_route"`
	DoublesRoute string `json:"doubles_route"`
	HomeCount    int    `json:"home_count"`
}

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=120"`
	Phone   string `json:"phone" binding:"required,max=32"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=4000"`
	HomeID  string `json:"home_id,omitempty"`
}

// ContactResponse represents contact form acknowledgement
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
