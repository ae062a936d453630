package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// HomeType is the construction class of a listing
type HomeType string

const (
	TypeSingleWide HomeType = "Single Wide"
	TypeDoubleWide HomeType = "Double Wide"
	TypeModular    HomeType = "Modular"
)

// Valid reports whether t is one of the known home types
func (t HomeType) Valid() bool {
	switch t {
	case TypeSingleWide, TypeDoubleWide, TypeModular:
		return true
	}
	return false
}

// HomeListing represents a home model offered by the dealership.
// Listings are fixture data: loaded once at startup and never mutated.
type HomeListing struct {
	ID           string    `json:"id" db:"id" yaml:"id"`
	Name         string    `json:"name" db:"name" yaml:"name"`
	Manufacturer string    `json:"manufacturer" db:"manufacturer" yaml:"manufacturer"`
	Type         HomeType  `json:"type" db:"type" yaml:"type"`
	Beds         int       `json:"beds" db:"beds" yaml:"beds"`
	Baths        float64   `json:"baths" db:"baths" yaml:"baths"`
	Sqft         int       `json:"sqft" db:"sqft" yaml:"sqft"`
	Description  string    `json:"description" db:"description" yaml:"description"`
	Features     JSONArray `json:"features" db:"features" yaml:"features"`
	ImageURL     string    `json:"image_url" db:"image_url" yaml:"imageUrl"`
	Gallery      JSONArray `json:"gallery,omitempty" db:"gallery" yaml:"gallery,omitempty"`
	IsFeatured   bool      `json:"is_featured" db:"is_featured" yaml:"isFeatured"`
}

// Validate checks the data-model invariants of a listing
func (h *HomeListing) Validate() error {
	if h.ID == "" {
		return fmt.Errorf("listing has empty id")
	}
	if !h.Type.Valid() {
		return fmt.Errorf("listing %s: unknown type %q", h.ID, h.Type)
	}
	if h.Beds < 0 {
		return fmt.Errorf("listing %s: beds must be >= 0, got %d", h.ID, h.Beds)
	}
	if h.Baths < 0 {
		return fmt.Errorf("listing %s: baths must be >= 0, got %g", h.ID, h.Baths)
	}
	if h.Sqft <= 0 {
		return fmt.Errorf("listing %s: sqft must be > 0, got %d", h.ID, h.Sqft)
	}
	return nil
}

// Manufacturer represents a manufacturer partner shown in the directory
type Manufacturer struct {
	Slug         string `json:"slug" yaml:"slug"`
	DisplayName  string `json:"display_name" yaml:"displayName"`
	ShortTagline string `json:"short_tagline,omitempty" yaml:"shortTagline,omitempty"`
	Description  string `json:"description" yaml:"description"`
	LogoPath     string `json:"logo_path" yaml:"logoPath"`
}

// JSONArray represents a JSON array field
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("unsupported JSONArray source type %T", value)
	}
}
