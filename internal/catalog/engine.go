package catalog

import (
	"strconv"
	"strings"

	"homecatalog/internal/model"
	"homecatalog/internal/utils"
)

// Result is the filtered view of a collection
type Result struct {
	Homes       []model.HomeListing
	Count       int
	ActiveCount int
	Criteria    model.FilterCriteria
}

// Empty reports whether no listing matched
func (r Result) Empty() bool {
	return r.Count == 0
}

// Apply filters homes by c. The result keeps the input order; every
// non-All facet must match (AND across facets).
func (d *Definition) Apply(homes []model.HomeListing, c model.FilterCriteria) Result {
	filtered := d.Filter(homes, c)
	return Result{
		Homes:       filtered,
		Count:       len(filtered),
		ActiveCount: c.ActiveCount(),
		Criteria:    c,
	}
}

// Filter returns the stable subsequence of homes satisfying c
func (d *Definition) Filter(homes []model.HomeListing, c model.FilterCriteria) []model.HomeListing {
	out := make([]model.HomeListing, 0, len(homes))
	for _, h := range homes {
		if d.Match(h, c) {
			out = append(out, h)
		}
	}
	return out
}

// Match reports whether a single listing satisfies every facet of c
func (d *Definition) Match(h model.HomeListing, c model.FilterCriteria) bool {
	for _, f := range model.Facets {
		value := c.Get(f)
		if value == model.All {
			continue
		}
		if !d.matchFacet(h, f, value) {
			return false
		}
	}
	return true
}

func (d *Definition) matchFacet(h model.HomeListing, f model.Facet, value string) bool {
	switch f {
	case model.FacetManufacturer:
		return utils.NormalizeManufacturer(h.Manufacturer) == value
	case model.FacetType:
		return string(h.Type) == value
	case model.FacetBeds:
		beds, ok := parseBeds(value)
		return ok && h.Beds == beds
	case model.FacetBaths:
		baths, ok := parseBaths(value)
		return ok && h.Baths == baths
	case model.FacetSize:
		bucket, ok := d.Buckets.Find(value)
		return ok && bucket.Contains(h.Sqft)
	}
	return false
}

func parseBeds(value string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseBaths(value string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// DistinctValues scans homes for distinct non-empty values of field, in
// order of first occurrence, with All prepended
func DistinctValues(homes []model.HomeListing, field func(model.HomeListing) string) []string {
	seen := make(map[string]bool, len(homes))
	values := []string{model.All}
	for _, h := range homes {
		v := field(h)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

// Options returns the selectable values for facet f, All first. Type and
// manufacturer are derived from homes; beds, baths and size come from the
// catalog's curated lists. Unsupported facets only offer All.
func (d *Definition) Options(homes []model.HomeListing, f model.Facet) []string {
	if !d.Supports(f) {
		return []string{model.All}
	}
	switch f {
	case model.FacetManufacturer:
		return DistinctValues(homes, func(h model.HomeListing) string {
			return utils.NormalizeManufacturer(h.Manufacturer)
		})
	case model.FacetType:
		return DistinctValues(homes, func(h model.HomeListing) string {
			return string(h.Type)
		})
	case model.FacetBeds:
		return withAll(d.BedOptions)
	case model.FacetBaths:
		return withAll(d.BathOptions)
	case model.FacetSize:
		return withAll(d.Buckets.Names())
	}
	return []string{model.All}
}

func withAll(values []string) []string {
	out := make([]string, 0, len(values)+1)
	out = append(out, model.All)
	return append(out, values...)
}

// Normalize resolves raw input for facet f to one of its options. Unknown,
// malformed or unsupported values fall back to All.
func (d *Definition) Normalize(homes []model.HomeListing, f model.Facet, raw string) string {
	options := d.Options(homes, f)
	switch f {
	case model.FacetBeds:
		if n, ok := parseBeds(raw); ok {
			for _, opt := range options[1:] {
				if v, _ := parseBeds(opt); v == n {
					return opt
				}
			}
		}
		return model.All
	case model.FacetBaths:
		if n, ok := parseBaths(raw); ok {
			for _, opt := range options[1:] {
				if v, _ := parseBaths(opt); v == n {
					return opt
				}
			}
		}
		return model.All
	}
	if opt, ok := utils.MatchOption(raw, options); ok {
		return opt
	}
	return model.All
}

// NormalizeCriteria normalizes every facet of c against this catalog
func (d *Definition) NormalizeCriteria(homes []model.HomeListing, c model.FilterCriteria) model.FilterCriteria {
	out := model.NewFilterCriteria()
	for _, f := range model.Facets {
		if v := c.Get(f); v != model.All {
			out = out.With(f, d.Normalize(homes, f, v))
		}
	}
	return out
}
