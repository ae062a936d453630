package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"homecatalog/internal/catalog"
	"homecatalog/internal/model"
)

func TestSizeLabel(t *testing.T) {
	assert.Equal(t, "1,480 sq ft", SizeLabel(1480))
	assert.Equal(t, "672 sq ft", SizeLabel(672))
}

func TestFormatBaths(t *testing.T) {
	assert.Equal(t, "2.5", FormatBaths(2.5))
	assert.Equal(t, "2", FormatBaths(2))
}

func TestPills(t *testing.T) {
	c := model.NewFilterCriteria().
		With(model.FacetSize, "Under 1,000").
		With(model.FacetBaths, "1").
		With(model.FacetManufacturer, "Champion")

	got := Pills(catalog.SingleWide, c)
	assert.Equal(t, []model.Pill{
		{Facet: model.FacetManufacturer, Label: "Champion"},
		{Facet: model.FacetBaths, Label: "1 Bath"},
		{Facet: model.FacetSize, Label: "Under 1,000 sq ft"},
	}, got)

	assert.Empty(t, Pills(catalog.SingleWide, model.NewFilterCriteria()))
}
