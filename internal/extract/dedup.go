package extract

import (
	"sort"

	"github.com/bits-and-blooms/bloom/v3"
)

// Set is a deduplicating endpoint collection keyed by structural identity.
// A Bloom filter answers the common "never seen" case without touching the
// exact map; the map resolves the filter's false positives and keeps the
// first inserted record per key, so the earliest captured example values
// become the documented ones.
type Set struct {
	filter  *bloom.BloomFilter
	seen    map[string]struct{}
	entries []Endpoint // insertion order
}

// NewSet creates a set sized for the estimated number of distinct endpoints.
func NewSet(estimatedItems int) *Set {
	if estimatedItems < 1000 {
		estimatedItems = 1000
	}

	return &Set{
		filter: bloom.NewWithEstimates(uint(estimatedItems), 0.001),
		seen:   make(map[string]struct{}),
	}
}

// Add inserts an endpoint unless a record with the same structural key is
// already present. It reports whether the endpoint was inserted.
func (s *Set) Add(ep Endpoint) bool {
	key := ep.Key()

	if s.filter.TestString(key) {
		if _, exists := s.seen[key]; exists {
			return false
		}
	}

	s.filter.AddString(key)
	s.seen[key] = struct{}{}
	s.entries = append(s.entries, ep)
	return true
}

// Contains checks whether an endpoint with the same structural key is
// already in the set.
func (s *Set) Contains(ep Endpoint) bool {
	if !s.filter.TestString(ep.Key()) {
		return false
	}
	_, exists := s.seen[ep.Key()]
	return exists
}

// Len returns the number of distinct endpoints.
func (s *Set) Len() int {
	return len(s.entries)
}

// Sorted returns the endpoints ordered by (method, url). The sort is
// stable over insertion order, so distinct endpoints that tie on method
// and url come out in the order they were first captured.
func (s *Set) Sorted() []Endpoint {
	out := make([]Endpoint, len(s.entries))
	copy(out, s.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}
