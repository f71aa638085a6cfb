package arr

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// First returns the first element satisfying pred, or the first element
// when pred is nil. ok is false when nothing matches.
func First[T any](s []T, pred func(T) bool) (v T, ok bool) {
	for _, x := range s {
		if pred == nil || pred(x) {
			return x, true
		}
	}

	return v, false
}

// Last is First scanning from the end.
func Last[T any](s []T, pred func(T) bool) (v T, ok bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if pred == nil || pred(s[i]) {
			return s[i], true
		}
	}

	return v, false
}

// Flatten inlines nested []any up to depth levels. depth <= 0 flattens
// completely. Maps are leaves.
func Flatten(s []any, depth int) []any {
	out := make([]any, 0, len(s))

	return flattenInto(out, s, depth)
}

func flattenInto(out, s []any, depth int) []any {
	for _, x := range s {
		inner, ok := x.([]any)
		switch {
		case !ok:
			out = append(out, x)
		case depth == 1:
			out = append(out, inner...)
		default:
			out = flattenInto(out, inner, depth-1)
		}
	}

	return out
}

// Collapse joins the []any elements of s into a single list, dropping
// elements that are not lists.
func Collapse(s []any) []any {
	out := make([]any, 0, len(s))
	for _, x := range s {
		if inner, ok := x.([]any); ok {
			out = append(out, inner...)
		}
	}

	return out
}

// Keys returns the keys of m in ascending order.
func Keys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// Divide splits m into its sorted keys and the matching values.
func Divide(m Map) ([]string, []any) {
	keys := Keys(m)
	values := make([]any, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}

	return keys, values
}

// Unique drops repeated elements, keeping the first occurrence.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, x := range s {
		if _, dup := seen[x]; dup {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}

	return out
}

// Chunk splits s into consecutive groups of size elements; the last group
// may be shorter. The groups share s's backing array.
func Chunk[T any](s []T, size int) ([][]T, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}

	return slices.Collect(slices.Chunk(s, size)), nil
}

// Where returns the entries of m for which pred holds.
func Where(m Map, pred func(key string, v any) bool) Map {
	out := Map{}
	for k, v := range m {
		if pred(k, v) {
			out[k] = v
		}
	}

	return out
}
