package helpers

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Diff returns the sorted elements of expected absent from found, and of
// found absent from expected.
func Diff[T constraints.Ordered](expected, found []T) (missing, extra []T) {
	exp := Set(expected)
	fnd := Set(found)

	for v := range exp {
		if _, ok := fnd[v]; !ok {
			missing = append(missing, v)
		}
	}
	for v := range fnd {
		if _, ok := exp[v]; !ok {
			extra = append(extra, v)
		}
	}

	slices.Sort(missing)
	slices.Sort(extra)
	return missing, extra
}

func Set[T comparable](items []T) map[T]struct{} {
	s := make(map[T]struct{}, len(items))
	for _, v := range items {
		s[v] = struct{}{}
	}
	return s
}

// Duplicates returns the sorted values occurring more than once in items.
func Duplicates[T constraints.Ordered](items []T) []T {
	seen := make(map[T]int, len(items))
	for _, v := range items {
		seen[v]++
	}

	var dups []T
	for v, n := range seen {
		if n > 1 {
			dups = append(dups, v)
		}
	}
	slices.Sort(dups)
	return dups
}
