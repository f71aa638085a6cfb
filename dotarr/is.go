package dotarr

import "strings"

// Is reports whether v is a container whose keys, at every depth, are free
// of Separator, i.e. whether every value inside v is addressable by a dot
// path. Leaves are not containers, so Is(42) is false.
// Complexity: O(size of tree).
func Is(v any) bool {
	if !isContainer(v) {
		return false
	}

	return dotCompatible(v)
}

// Clone returns a deep copy of root. Maps and lists are copied, leaves are
// shared. A nil root yields an empty Map.
func Clone(root Map) Map {
	if root == nil {
		return Map{}
	}

	return cloneAny(root).(Map)
}

// dotCompatible checks one node; leaves are always compatible.
func dotCompatible(node any) bool {
	switch n := node.(type) {
	case Map:
		for k, v := range n {
			if strings.Contains(k, Separator) || !dotCompatible(v) {
				return false
			}
		}
	case []any:
		for _, v := range n {
			if !dotCompatible(v) {
				return false
			}
		}
	}

	return true
}

func cloneAny(v any) any {
	switch n := v.(type) {
	case Map:
		out := make(Map, len(n))
		for k, x := range n {
			out[k] = cloneAny(x)
		}

		return out
	case []any:
		out := make([]any, len(n))
		for i, x := range n {
			out[i] = cloneAny(x)
		}

		return out
	}

	return v
}
