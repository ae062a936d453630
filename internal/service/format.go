package service

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"homecatalog/internal/catalog"
	"homecatalog/internal/model"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// SizeLabel formats square footage for cards, e.g. "1,480 sq ft"
func SizeLabel(sqft int) string {
	return printer.Sprintf("%d sq ft", sqft)
}

// BedsLabel formats a bedroom count, e.g. "1 Bed" or "3 Beds"
func BedsLabel(value string) string {
	if value == "1" {
		return "1 Bed"
	}
	return value + " Beds"
}

// BathsLabel formats a bathroom count, e.g. "1 Bath" or "2.5 Baths"
func BathsLabel(value string) string {
	if value == "1" {
		return "1 Bath"
	}
	return value + " Baths"
}

// FormatBaths renders a bath count without trailing zeros
func FormatBaths(baths float64) string {
	return strconv.FormatFloat(baths, 'f', -1, 64)
}

// OptionLabel is the text shown for a facet value in the drawer and on pills
func OptionLabel(def *catalog.Definition, f model.Facet, value string) string {
	if value == model.All {
		if f == model.FacetSize {
			return "All Sizes"
		}
		return model.All
	}
	switch f {
	case model.FacetBeds:
		return BedsLabel(value)
	case model.FacetBaths:
		return BathsLabel(value)
	case model.FacetSize:
		if b, ok := def.Buckets.Find(value); ok {
			return b.Label()
		}
	}
	return value
}

// Pills returns one pill per active facet in display order
func Pills(def *catalog.Definition, c model.FilterCriteria) []model.Pill {
	pills := []model.Pill{}
	for _, f := range model.Facets {
		v := c.Get(f)
		if v == model.All {
			continue
		}
		pills = append(pills, model.Pill{Facet: f, Label: OptionLabel(def, f, v)})
	}
	return pills
}

// FacetGroups returns the drawer contents for a session
func FacetGroups(s *catalog.Session) []model.FacetGroup {
	def := s.Definition()
	c := s.Criteria()
	groups := make([]model.FacetGroup, 0, len(def.Facets))
	for _, f := range def.Facets {
		group := model.FacetGroup{Facet: f, Title: catalog.FacetTitle(f)}
		for _, v := range s.Options(f) {
			group.Options = append(group.Options, model.FacetOption{
				Value:    v,
				Label:    OptionLabel(def, f, v),
				Selected: c.Get(f) == v,
			})
		}
		groups = append(groups, group)
	}
	return groups
}

// Card decorates a listing for the catalog grid
func Card(h model.HomeListing) model.HomeCard {
	return model.HomeCard{
		HomeListing: h,
		SizeLabel:   SizeLabel(h.Sqft),
		DetailURL:   "/catalog/" + h.ID,
	}
}

// Cards decorates a list of listings, keeping order
func Cards(homes []model.HomeListing) []model.HomeCard {
	cards := make([]model.HomeCard, 0, len(homes))
	for _, h := range homes {
		cards = append(cards, Card(h))
	}
	return cards
}
