package series

import "sort"

// Table maps an open identifier (vehicle type, fuel type) to a value. The
// set of keys is whatever the project defines; an absent key reads as zero.
type Table[V any] map[string]V

// Keys returns the table keys in sorted order. Stages iterate in this order
// so accumulated floating point sums do not depend on map iteration.
func (t Table[V]) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetOr returns m[key], or zero when the key is absent.
func GetOr[K comparable, V any](m map[K]V, key K, zero V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return zero
}

// At returns xs[i], or 0 when i is out of range.
func At(xs []float64, i int) float64 {
	if i < 0 || i >= len(xs) {
		return 0
	}
	return xs[i]
}

// Nested is a two-level table: vehicle type -> fuel type -> V.
type Nested[V any] map[string]Table[V]

// Keys returns the outer keys in sorted order.
func (n Nested[V]) Keys() []string {
	return Table[Table[V]](n).Keys()
}

// Lookup returns n[outer][inner], or zero when either level is absent.
func (n Nested[V]) Lookup(outer, inner string, zero V) V {
	return GetOr(GetOr(n, outer, nil), inner, zero)
}
