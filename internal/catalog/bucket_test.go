package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketTables_Partition(t *testing.T) {
	for _, def := range Definitions {
		if len(def.Buckets) == 0 {
			continue
		}
		t.Run(def.ID, func(t *testing.T) {
			require.NoError(t, def.Buckets.Verify(6000))
		})
	}
}

func TestBucketTables_Boundaries(t *testing.T) {
	tests := []struct {
		def  *Definition
		sqft int
		want string
	}{
		{SingleWide, 999, "Under 1,000"},
		{SingleWide, 1000, "1,000-1,200"},
		{SingleWide, 1200, "1,000-1,200"},
		{SingleWide, 1201, "Over 1,200"},
		{DoubleWide, 1499, "Under 1,500"},
		{DoubleWide, 1500, "1,500-2,000"},
		{DoubleWide, 2000, "1,500-2,000"},
		{DoubleWide, 2001, "Over 2,000"},
		{Modular, 1500, "1,500-2,000"},
		{Modular, 2000, "1,500-2,000"},
		{Modular, 2001, "2,000-2,500"},
		{Modular, 2500, "2,000-2,500"},
		{Modular, 2501, "Over 2,500"},
	}

	for _, tt := range tests {
		got, ok := tt.def.Buckets.Classify(tt.sqft)
		require.True(t, ok, "%s: sqft %d not classified", tt.def.ID, tt.sqft)
		assert.Equal(t, tt.want, got.Name, "%s: sqft %d", tt.def.ID, tt.sqft)
	}
}

func TestBucketTable_VerifyDetectsOverlap(t *testing.T) {
	overlapping := BucketTable{
		Under("Under 1,500", 1500),
		Between("1,500-2,000", 1500, true, 2000, true),
		Between("2,000-2,500", 2000, true, 2500, true),
		Over("Over 2,500", 2500),
	}
	assert.Error(t, overlapping.Verify(3000))

	gap := BucketTable{Under("Under 1,000", 1000), Over("Over 1,000", 1000)}
	assert.Error(t, gap.Verify(2000))
}

func TestBucket_Label(t *testing.T) {
	b, ok := DoubleWide.Buckets.Find("Over 2,000")
	require.True(t, ok)
	assert.Equal(t, "Over 2,000 sq ft", b.Label())

	_, ok = DoubleWide.Buckets.Find("Over 2,500")
	assert.False(t, ok)
}
