package catalog

import "fmt"

// Bound is one end of a square-footage range
type Bound struct {
	Value     int
	Inclusive bool
}

// Bucket is a named square-footage range. A nil bound leaves that side open.
type Bucket struct {
	Name  string
	Lower *Bound
	Upper *Bound
}

// Contains reports whether sqft falls inside the bucket
func (b Bucket) Contains(sqft int) bool {
	if b.Lower != nil {
		if b.Lower.Inclusive && sqft < b.Lower.Value {
			return false
		}
		if !b.Lower.Inclusive && sqft <= b.Lower.Value {
			return false
		}
	}
	if b.Upper != nil {
		if b.Upper.Inclusive && sqft > b.Upper.Value {
			return false
		}
		if !b.Upper.Inclusive && sqft >= b.Upper.Value {
			return false
		}
	}
	return true
}

// Label is the human readable form used on pills and drawer options
func (b Bucket) Label() string {
	return b.Name + " sq ft"
}

// Under matches sqft < n
func Under(name string, n int) Bucket {
	return Bucket{Name: name, Upper: &Bound{Value: n}}
}

// Over matches sqft > n
func Over(name string, n int) Bucket {
	return Bucket{Name: name, Lower: &Bound{Value: n}}
}

// Between matches lo..hi with the given inclusivity on each side
func Between(name string, lo int, loInclusive bool, hi int, hiInclusive bool) Bucket {
	return Bucket{
		Name:  name,
		Lower: &Bound{Value: lo, Inclusive: loInclusive},
		Upper: &Bound{Value: hi, Inclusive: hiInclusive},
	}
}

// BucketTable is the ordered list of size buckets for one catalog
type BucketTable []Bucket

// Find returns the bucket with the given name
func (t BucketTable) Find(name string) (Bucket, bool) {
	for _, b := range t {
		if b.Name == name {
			return b, true
		}
	}
	return Bucket{}, false
}

// Names returns the bucket names in table order
func (t BucketTable) Names() []string {
	names := make([]string, 0, len(t))
	for _, b := range t {
		names = append(names, b.Name)
	}
	return names
}

// Classify returns the single bucket holding sqft
func (t BucketTable) Classify(sqft int) (Bucket, bool) {
	for _, b := range t {
		if b.Contains(sqft) {
			return b, true
		}
	}
	return Bucket{}, false
}

// Verify checks that the table partitions every sqft in [1, limit]:
// each value must land in exactly one bucket.
func (t BucketTable) Verify(limit int) error {
	for sqft := 1; sqft <= limit; sqft++ {
		hits := 0
		for _, b := range t {
			if b.Contains(sqft) {
				hits++
			}
		}
		if hits != 1 {
			return fmt.Errorf("sqft %d falls in %d buckets", sqft, hits)
		}
	}
	return nil
}
