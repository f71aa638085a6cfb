package dotarr

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Convert expands a flat Map whose keys may contain dots into the fully
// nested equivalent. Values that are themselves Maps are converted
// recursively. flat is not modified.
//
// Keys are applied deepest first (see package doc), so when one key is a
// strict prefix of another the shorter key is applied last and replaces the
// whole subtree:
//
//	Convert(Map{"a.b": 1, "a.c": 2})   // {"a": {"b": 1, "c": 2}}
//	Convert(Map{"a.b.c": 1, "a.b": 2}) // {"a": {"b": 2}}
//
// The empty key is kept verbatim.
// Complexity: O(n log n + total key length).
func Convert(flat Map) Map {
	out := make(Map, len(flat))
	for _, pair := range orderedPairs(flat) {
		convertPair(out, pair.Key.(string), pair.Value)
	}

	return out
}

// ConvertOrdered is Convert with a caller-defined order: pairs are applied
// left to right and the later pair wins on conflict, including replacing a
// whole subtree created by an earlier, longer key.
// Errors: ErrInvalidKeyType when a pair key is not a scalar.
func ConvertOrdered(pairs ...Pair) (Map, error) {
	out := make(Map, len(pairs))
	for _, pair := range pairs {
		label, ok := scalarLabel(pair.Key)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrInvalidKeyType, pair.Key)
		}
		convertPair(out, label, pair.Value)
	}

	return out, nil
}

// Flatten is the inverse of Convert: it walks root and emits one entry per
// leaf, keyed by the joined path. Lists are walked by index. Empty
// containers are emitted as leaves unless WithoutEmpty is given.
// Complexity: O(size of tree).
func Flatten(root Map, opts ...FlattenOption) Map {
	o := DefaultFlattenOptions()
	for _, opt := range opts {
		opt(&o)
	}
	out := make(Map, len(root))
	flattenInto(out, root, o.Prefix, &o)

	return out
}

// convertPair writes one flat entry into out.
func convertPair(out Map, key string, v any) {
	if m, ok := v.(Map); ok {
		v = Convert(m)
	}
	p := splitLabel(key)
	if len(p) == 0 {
		out[key] = v

		return
	}
	SetPath(out, p, v)
}

// flattenInto appends the leaves of node to out under prefix.
func flattenInto(out Map, node any, prefix string, o *FlattenOptions) {
	switch n := node.(type) {
	case Map:
		for k, v := range n {
			emit(out, v, prefix+k, o)
		}
	case []any:
		for i, v := range n {
			emit(out, v, prefix+strconv.Itoa(i), o)
		}
	}
}

// emit writes v under key, descending into non-empty containers.
func emit(out Map, v any, key string, o *FlattenOptions) {
	if isContainer(v) && size(v) > 0 {
		flattenInto(out, v, key+o.Separator, o)

		return
	}
	if isContainer(v) && !o.KeepEmpty {
		return
	}
	out[key] = v
}

// size returns the number of entries of a container.
func size(v any) int {
	switch n := v.(type) {
	case Map:
		return len(n)
	case []any:
		return len(n)
	}

	return 0
}

// orderedPairs lists the entries of m deepest key first, ties broken
// lexically, which is the deterministic stand-in for insertion order.
func orderedPairs(m Map) []Pair {
	keys := slices.Collect(maps.Keys(m))
	depth := make(map[string]int, len(keys))
	for _, k := range keys {
		depth[k] = len(splitLabel(k))
	}
	slices.SortFunc(keys, func(a, b string) int {
		if depth[a] != depth[b] {
			return depth[b] - depth[a]
		}

		return strings.Compare(a, b)
	})

	pairs := make([]Pair, len(keys))
	for i, k := range keys {
		pairs[i] = Pair{Key: k, Value: m[k]}
	}

	return pairs
}
