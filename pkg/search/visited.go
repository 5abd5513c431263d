package search

import "github.com/aretw0/switchback/pkg/domain"

// visitedSet stores states bucketed by Hash and resolved with Equal, so
// fingerprint collisions never merge distinct configurations.
type visitedSet[S domain.State[S, A], A any] struct {
	buckets map[uint64][]S
	size    int
}

func newVisitedSet[S domain.State[S, A], A any]() *visitedSet[S, A] {
	return &visitedSet[S, A]{buckets: make(map[uint64][]S)}
}

func (v *visitedSet[S, A]) contains(s S) bool {
	for _, other := range v.buckets[s.Hash()] {
		if s.Equal(other) {
			return true
		}
	}
	return false
}

// add inserts s and reports whether it was absent.
func (v *visitedSet[S, A]) add(s S) bool {
	h := s.Hash()
	for _, other := range v.buckets[h] {
		if s.Equal(other) {
			return false
		}
	}
	v.buckets[h] = append(v.buckets[h], s)
	v.size++
	return true
}

func (v *visitedSet[S, A]) len() int {
	return v.size
}
