package track

import "slices"

// series maps absolute times to values and keeps a sorted key index so
// both exact and floor lookups are O(log n).
type series[V any] struct {
	keys []int
	vals map[int]V
}

func newSeries[V any]() series[V] {
	return series[V]{vals: make(map[int]V)}
}

// put stores v at t, overwriting any value already recorded there.
func (s *series[V]) put(t int, v V) {
	if _, ok := s.vals[t]; !ok {
		i, _ := slices.BinarySearch(s.keys, t)
		s.keys = slices.Insert(s.keys, i, t)
	}
	s.vals[t] = v
}

func (s *series[V]) at(t int) (V, bool) {
	v, ok := s.vals[t]
	return v, ok
}

// floor returns the value with the greatest key <= t.
func (s *series[V]) floor(t int) (int, V, bool) {
	i, found := slices.BinarySearch(s.keys, t)
	if !found {
		i--
	}
	if i < 0 {
		var zero V
		return 0, zero, false
	}
	k := s.keys[i]
	return k, s.vals[k], true
}

func (s *series[V]) len() int {
	return len(s.keys)
}

func (s *series[V]) times() []int {
	return slices.Clone(s.keys)
}

func (s *series[V]) release() {
	s.keys = nil
	clear(s.vals)
	s.vals = nil
}
