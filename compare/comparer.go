package compare

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Comparer is a three-way comparison usable with slices.SortFunc.
type Comparer[T any] func(a, b T) int

// By orders values by the key extracted with key.
func By[T any, K constraints.Ordered](key func(T) K) Comparer[T] {
	return func(a, b T) int {
		return Compare(key(a), key(b))
	}
}

// Reverse inverts c.
func (c Comparer[T]) Reverse() Comparer[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Then breaks ties of c with next.
func (c Comparer[T]) Then(next Comparer[T]) Comparer[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}

		return next(a, b)
	}
}

// Sort sorts s in place, keeping the order of equal elements.
func (c Comparer[T]) Sort(s []T) {
	slices.SortStableFunc(s, c)
}

// IsSorted reports whether s is sorted according to c.
func (c Comparer[T]) IsSorted(s []T) bool {
	return slices.IsSortedFunc(s, c)
}
