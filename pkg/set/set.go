package set

import (
	"cmp"
	"slices"
)

type Set[K comparable] map[K]struct{}

func New[K comparable](vals ...K) Set[K] {
	s := make(Set[K], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts k and reports whether it was not already present.
func (s Set[K]) Add(k K) bool {
	if _, ok := s[k]; ok {
		return false
	}

	s[k] = struct{}{}
	return true
}

func (s Set[K]) Contains(k K) bool {
	_, ok := s[k]
	return ok
}

func (s Set[K]) Len() int {
	return len(s)
}

// Sorted returns the members of an ordered set in ascending order.
func Sorted[K cmp.Ordered](s Set[K]) []K {
	vals := make([]K, 0, len(s))
	for k := range s {
		vals = append(vals, k)
	}

	slices.Sort(vals)
	return vals
}
