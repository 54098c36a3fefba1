package version

import (
	"fmt"
	"sort"
)

// Collection is an ordered sequence of versions implementing sort.Interface
// over the comparison order. It is mutable; sortedness holds only right
// after Sort (or NewCollection) until the caller rearranges it.
type Collection []*Version

// NewCollection parses every string and returns the versions sorted
// ascending. Parsing stops at the first invalid string.
func NewCollection(values []string) (Collection, error) {
	result := make(Collection, len(values))
	for i, value := range values {
		v, err := NewVersion(value)
		if err != nil {
			return nil, fmt.Errorf("unable to parse version %d: %w", i, err)
		}
		result[i] = v
	}
	result.Sort()
	return result, nil
}

// Sort orders the collection ascending in place. Ordering of versions that
// compare equal is unspecified.
func (c Collection) Sort() {
	sort.Sort(c)
}

// IsSorted reports whether the collection is currently in ascending order.
func (c Collection) IsSorted() bool {
	return sort.IsSorted(c)
}

func (c Collection) Len() int {
	return len(c)
}

func (c Collection) Less(i, j int) bool {
	return c[i].LessThan(c[j])
}

func (c Collection) Swap(i, j int) {
	c[i], c[j] = c[j], c[i]
}
